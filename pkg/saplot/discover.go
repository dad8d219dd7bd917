package saplot

import (
	"fmt"
	"os"

	"github.com/ukaji3/saplot-go/pkg/saplot/parser"
)

// Discover lists the results files in dir, in directory listing order.
// Sub-directories are skipped even when their name matches.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryNotFound, dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsResultFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
