// Package pathscan finds the entries of search-path directories whose name
// equals or contains a keyword.
package pathscan

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
)

// Options configures a Scanner. The zero value matches the classic behaviour:
// last directory first, directories included, listing order preserved.
type Options struct {
	Order Order
	// FilesOnly drops entries that are themselves directories.
	FilesOnly bool
	// Sort orders Exact and Related lexicographically after the scan.
	Sort bool
}

// Scanner lists directories through a DirReader and classifies their entries.
// It keeps no state between scans.
type Scanner struct {
	fs   DirReader
	opts Options
}

// New returns a Scanner reading from fs.
func New(fs DirReader, opts Options) *Scanner {
	return &Scanner{fs: fs, opts: opts}
}

// Scan classifies keyword against every entry of dirs on the OS filesystem
// using literal matching and default options.
func Scan(keyword string, dirs []string) MatchResult {
	return New(OS, Options{}).Scan(&literalMatcher{keyword: keyword}, dirs)
}

// Scan visits dirs in the configured order. dirs is never modified.
// Directories that cannot be listed contribute only the entries read before
// the failure, usually none; their errors are collected in MatchResult.Err.
func (s *Scanner) Scan(m Matcher, dirs []string) MatchResult {
	var res MatchResult
	for i := range dirs {
		d := dirs[i]
		if s.opts.Order == Reverse {
			d = dirs[len(dirs)-1-i]
		}
		prefix := withSeparator(d)

		entries, err := s.fs.ReadDir(prefix)
		if err != nil {
			res.Err = multierr.Append(res.Err, fmt.Errorf("cannot list %s: %w", d, err))
		}
		for _, e := range entries {
			if s.opts.FilesOnly && e.IsDir() {
				continue
			}
			switch m.Match(e.Name()) {
			case Exact:
				res.Exact = append(res.Exact, prefix+e.Name())
			case Related:
				res.Related = append(res.Related, prefix+e.Name())
			}
		}
	}
	if s.opts.Sort {
		res.Sort()
	}
	return res
}

// Skipped returns the individual directory errors recorded in Err.
func (r MatchResult) Skipped() []error {
	return multierr.Errors(r.Err)
}

// withSeparator appends the path separator unless dir already ends with one.
func withSeparator(dir string) string {
	sep := string(os.PathSeparator)
	if strings.HasSuffix(dir, sep) || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + sep
}
