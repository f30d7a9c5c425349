package pathscan

import "io/fs"

// Kind classifies a directory entry against a keyword.
type Kind int

const (
	NoMatch Kind = iota
	Exact
	Related
)

// MatchResult holds the full paths found for one keyword.
//
// Exact and Related never share an entry. Err aggregates the per-directory
// listing failures that were skipped during the scan; it is informational only.
type MatchResult struct {
	Exact   []string
	Related []string
	Err     error
}

// DirReader lists the immediate entries of a directory. Entries may be
// returned together with an error; they are still classified.
type DirReader interface {
	ReadDir(path string) ([]fs.DirEntry, error)
}
