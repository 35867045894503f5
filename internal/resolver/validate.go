package resolver

import (
	"strings"
)

const (
	maxSpecifierLength = 500
	maxTraversalDepth  = 10
)

// osSensitivePrefixes are absolute prefixes a specifier may never start
// with, compared case-insensitively.
var osSensitivePrefixes = []string{
	"/etc/",
	"/usr/",
	"/bin/",
	"/sbin/",
	"/proc/",
	"/sys/",
	"/var/",
	"/root/",
	"/boot/",
	"c:\\windows",
	"c:/windows",
	"c:\\program files",
	"c:/program files",
}

const illegalCharacters = `<>"|?*`

// Validate applies every syntactic and security rule to a raw specifier
// before any filesystem work happens. It returns the name of the first
// violated rule, or ok=true when the specifier is safe to resolve.
func Validate(specifier string, depMarker string) (reason string, ok bool) {
	if strings.TrimSpace(specifier) == "" {
		return "empty", false
	}
	if len(specifier) > maxSpecifierLength {
		return "too-long", false
	}
	if strings.ContainsRune(specifier, 0) {
		return "null-byte", false
	}
	if strings.Count(specifier, "..") >= maxTraversalDepth {
		return "traversal-depth", false
	}
	if strings.ContainsAny(specifier, illegalCharacters) {
		return "illegal-characters", false
	}

	lower := strings.ToLower(specifier)
	for _, prefix := range osSensitivePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return "os-sensitive-path", false
		}
	}

	// Drive-letter absolutes point outside any workspace; they are only
	// acceptable when they reference the dependency install directory.
	if isDriveAbsolute(specifier) && !hasSegment(specifier, depMarker) {
		return "absolute-outside-dependencies", false
	}

	return "", true
}

// isDriveAbsolute reports whether the specifier is a Windows-style
// drive-letter absolute path. A bare leading "/" is not absolute in this
// sense: it is interpreted as workspace-root-relative downstream.
func isDriveAbsolute(specifier string) bool {
	if len(specifier) < 3 {
		return false
	}
	c := specifier[0]
	isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	return isLetter && specifier[1] == ':' && (specifier[2] == '/' || specifier[2] == '\\')
}

// hasSegment reports whether name occurs as a whole path segment.
func hasSegment(path, name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if seg == name {
			return true
		}
	}
	return false
}
