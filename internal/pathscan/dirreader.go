package pathscan

import (
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
)

// OS lists directories with os.ReadDir. Names and directory bits come from
// the directory itself, so entries that cannot be stat'ed are still listed.
var OS DirReader = osDir{}

type osDir struct{}

func (osDir) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Billy adapts a go-billy filesystem such as memfs.
func Billy(d billy.Dir) DirReader {
	return billyDir{d: d}
}

type billyDir struct{ d billy.Dir }

func (b billyDir) ReadDir(path string) ([]fs.DirEntry, error) {
	infos, err := b.d.ReadDir(path)
	out := make([]fs.DirEntry, 0, len(infos))
	for _, fi := range infos {
		out = append(out, fs.FileInfoToDirEntry(fi))
	}
	return out, err
}
