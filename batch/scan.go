package batch

import (
	"io/fs"
	"os"
	"path/filepath"

	cimg "github.com/eugenmik/bulk-image-resizer/image"
)

// ListImages returns the .jpg, .jpeg and .png files directly inside dir,
// sorted by name. Symlinks to regular files count, sub directories are not
// entered.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !cimg.IsSupportedExt(e.Name()) {
			continue
		}
		fn := filepath.Join(dir, e.Name())
		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			fi, err := os.Stat(fn)
			if err != nil {
				continue // dangling
			}
			mode = fi.Mode()
		}
		if !mode.IsRegular() {
			continue
		}
		files = append(files, fn)
	}
	return files, nil
}
