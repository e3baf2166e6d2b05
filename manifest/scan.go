package manifest

import (
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/carbocation/pfx"
)

// Scan lists the regular files directly in dir whose name matches pattern.
// Paths are absolute and sorted. A missing or unreadable dir is not an
// error: it is logged and nothing is returned, so every expected sample
// ends up in the missing report.
func Scan(dir, pattern string) (files []string, err error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, pfx.Err(doublestar.ErrBadPattern)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		log.Printf("can not read %s: %v", absDir, err)
		return nil, nil
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, pfx.Err(err)
		}
		if !ok {
			continue
		}
		var path = filepath.Join(absDir, entry.Name())
		// follow symlinks
		if info, err := os.Stat(path); err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}
