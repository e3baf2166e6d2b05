package manifest

import (
	"path/filepath"
	"strings"
)

// PathConverter rewrites Windows paths for a WSL shell.
type PathConverter struct {
	SourceRoot string
	TargetRoot string
}

// DefaultPaths maps the C: drive onto its WSL mount point.
var DefaultPaths = PathConverter{
	SourceRoot: `C:\`,
	TargetRoot: "/mnt/c/",
}

// Convert makes path absolute, switches separators to '/' and swaps
// SourceRoot for TargetRoot. Paths on any other root keep it, so a D:
// path comes out as "D:/...".
func (c PathConverter) Convert(path string) string {
	if !isAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	path = toSlash(path)
	var root = toSlash(c.SourceRoot)
	if root != "" && strings.HasPrefix(path, root) {
		path = c.TargetRoot + strings.TrimPrefix(path, root)
	}
	return path
}

func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// isAbs accepts drive-letter paths on any host.
func isAbs(path string) bool {
	if filepath.IsAbs(path) || strings.HasPrefix(path, `\`) {
		return true
	}
	return len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') && isLetter(path[0])
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
