package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// findNearest walks upward from startDir looking for the first regular file
// matching one of names. Within one directory the name order decides; across
// directories the nearest one wins, so a subdirectory config shadows a root
// config for files beneath it. The walk stops as soon as the current
// directory is no longer inside rootBoundary.
func findNearest(startDir, rootBoundary string, names []string) (string, bool) {
	dir := filepath.Clean(startDir)
	root := filepath.Clean(rootBoundary)

	for isWithin(dir, root) {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// isWithin reports whether path equals base or lives beneath it. Both
// arguments must already be clean absolute paths.
func isWithin(path, base string) bool {
	if path == base {
		return true
	}
	return strings.HasPrefix(path, base+string(filepath.Separator))
}
