package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// probeExtensions is the fixed probe order. It is behaviorally significant:
// when foo.ts and foo.js both exist, foo.ts wins.
var probeExtensions = []string{".ts", ".js", ".tsx", ".jsx", ".py", ".css", ".scss", ".less", ".json"}

// sensitiveSegments are path segments a resolved path may never traverse.
var sensitiveSegments = map[string]bool{
	".git":        true,
	".svn":        true,
	".hg":         true,
	".env":        true,
	".bin":        true,
	"coverage":    true,
	".nyc_output": true,
}

// blockedExtensions are executable or script extensions that are never
// returned as resolution targets.
var blockedExtensions = map[string]bool{
	".exe":  true,
	".bat":  true,
	".cmd":  true,
	".com":  true,
	".ps1":  true,
	".sh":   true,
	".bash": true,
	".dll":  true,
	".scr":  true,
	".msi":  true,
}

// finalize turns a candidate absolute path into a terminal Result by
// probing extensions and directory index files, then applying the security
// gate. The gate runs on the candidate before any probing, so a sensitive
// path is rejected even when the file exists.
func finalize(candidate, root, depMarker string) Result {
	candidate = filepath.Clean(candidate)

	if reason, ok := checkSecurity(candidate, root, depMarker); !ok {
		return rejected(reason)
	}

	var probed []string

	// A candidate that already names a file, or that carries an extension,
	// skips extension probing.
	if filepath.Ext(candidate) != "" {
		probed = append(probed, candidate)
		if isFile(candidate) {
			return found(candidate)
		}
		return notFound(probed)
	}

	if isFile(candidate) {
		return found(candidate)
	}

	for _, ext := range probeExtensions {
		withExt := candidate + ext
		probed = append(probed, withExt)
		if isFile(withExt) {
			return found(withExt)
		}
	}

	if isDir(candidate) {
		for _, ext := range probeExtensions {
			index := filepath.Join(candidate, "index"+ext)
			probed = append(probed, index)
			if isFile(index) {
				return found(index)
			}
		}
	}

	return notFound(probed)
}

// checkSecurity enforces the workspace boundary and the forbidden
// directory/extension policy on a clean absolute candidate.
func checkSecurity(candidate, root, depMarker string) (reason string, ok bool) {
	inDependencies := hasSegment(candidate, depMarker)

	if !isWithin(candidate, filepath.Clean(root)) && !inDependencies {
		return "outside-workspace", false
	}

	for _, seg := range strings.Split(candidate, string(filepath.Separator)) {
		if sensitiveSegments[seg] || strings.HasPrefix(seg, ".env.") {
			return "sensitive-directory", false
		}
	}

	if blockedExtensions[strings.ToLower(filepath.Ext(candidate))] {
		return "blocked-extension", false
	}

	return "", true
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
