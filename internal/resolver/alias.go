package resolver

import (
	"path/filepath"
	"strings"
)

// AliasEntry maps one specifier prefix onto a target directory. TargetDir is
// always absolute and anchored to the directory of the config file that
// declared it, so a subdirectory config overrides a root config for files
// beneath it.
type AliasEntry struct {
	Pattern          string `json:"pattern"`
	TargetDir        string `json:"targetDir"`
	SourceConfigPath string `json:"sourceConfigPath"`
}

// appendAlias adds entry unless the pattern was already discovered; the
// first occurrence always wins.
func appendAlias(entries []AliasEntry, entry AliasEntry) []AliasEntry {
	for _, existing := range entries {
		if existing.Pattern == entry.Pattern {
			return entries
		}
	}
	return append(entries, entry)
}

// normalizeAliasKey gives every alias pattern a trailing slash so that
// prefix matching cannot confuse "@app" with "@apple".
func normalizeAliasKey(key string) string {
	key = strings.TrimSuffix(key, "/")
	return key + "/"
}

// tier is one configuration dialect searched during alias discovery.
type tier struct {
	name    string
	names   []string
	extract func(configPath string) []AliasEntry
}

// aliasTiers is the fixed search order: TS-style config first, then
// build-tool config, then bundler config. Each tier walks up from the
// importing file independently, and the first tier producing a matching
// alias ends the search.
var aliasTiers = []tier{
	{name: "typescript", names: tsConfigNames, extract: extractTSConfig},
	{name: "vite", names: viteConfigNames, extract: extractViteConfig},
	{name: "webpack", names: webpackConfigNames, extract: extractWebpackConfig},
}

// aliasLike reports whether the specifier can be the subject of alias
// resolution at all.
func aliasLike(specifier string) bool {
	return strings.HasPrefix(specifier, "@") ||
		strings.HasPrefix(specifier, "~") ||
		strings.HasPrefix(specifier, "src/")
}

// configCache keeps config lookups and parses for the duration of a single
// resolution. It never outlives the Resolve call that created it.
type configCache struct {
	located map[string]string       // startDir+"\x00"+names[0] -> config path ("" = none)
	tables  map[string][]AliasEntry // config path -> extracted table
}

func newConfigCache() *configCache {
	return &configCache{
		located: make(map[string]string),
		tables:  make(map[string][]AliasEntry),
	}
}

func (c *configCache) nearest(startDir, root string, t tier) (string, bool) {
	key := startDir + "\x00" + t.names[0]
	if path, ok := c.located[key]; ok {
		return path, path != ""
	}
	path, ok := findNearest(startDir, root, t.names)
	c.located[key] = path
	return path, ok
}

func (c *configCache) table(configPath string, t tier) []AliasEntry {
	if table, ok := c.tables[configPath]; ok {
		return table
	}
	table := t.extract(configPath)
	c.tables[configPath] = table
	return table
}

// resolveAlias turns an alias-like specifier into an absolute candidate
// path, or reports ok=false meaning "treat as a plain join". Config-driven
// aliases are consulted first in tier order; when none match, the
// conventional fallbacks apply. Fallback candidates are soft: their
// existence is decided later by finalization.
func resolveAlias(specifier, currentFileDir, root string, cache *configCache) (string, bool) {
	for _, t := range aliasTiers {
		configPath, ok := cache.nearest(currentFileDir, root, t)
		if !ok {
			continue
		}
		for _, entry := range cache.table(configPath, t) {
			if rest, ok := strings.CutPrefix(specifier, entry.Pattern); ok {
				return filepath.Join(entry.TargetDir, rest), true
			}
		}
	}

	switch {
	case strings.HasPrefix(specifier, "@/"):
		return filepath.Join(root, "src", specifier[len("@/"):]), true
	case strings.HasPrefix(specifier, "~/"):
		return filepath.Join(root, specifier[len("~/"):]), true
	case strings.HasPrefix(specifier, "src/"):
		return filepath.Join(root, specifier), true
	}

	return "", false
}
