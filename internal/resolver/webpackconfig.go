package resolver

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

var webpackConfigNames = []string{"webpack.config.js", "webpack.config.ts", "webpack.config.cjs"}

// extractWebpackConfig scans a webpack-style config for resolve.alias (or a
// bare alias block) and extracts plain quoted key/path pairs. Targets
// resolve against the config file's directory.
func extractWebpackConfig(configPath string) []AliasEntry {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("importlens: unreadable config %s: %v", configPath, err)
		return nil
	}

	source := string(raw)

	// Prefer the alias block nested under resolve; fall back to any bare
	// alias block.
	block, ok := "", false
	if resolveBlock, found := braceBlockAfter(source, "resolve"); found {
		block, ok = braceBlockAfter(resolveBlock, "alias")
	}
	if !ok {
		block, ok = braceBlockAfter(source, "alias")
	}
	if !ok {
		return nil
	}

	configDir := filepath.Dir(configPath)
	var entries []AliasEntry

	for _, m := range plainAliasPattern.FindAllStringSubmatch(block, -1) {
		target := m[2]
		if strings.HasPrefix(target, "/") {
			// Absolute targets (often built with path.resolve) are kept
			// as-is.
			target = filepath.Clean(target)
		} else {
			target = filepath.Clean(filepath.Join(configDir, target))
		}
		entries = appendAlias(entries, AliasEntry{
			Pattern:          normalizeAliasKey(m[1]),
			TargetDir:        target,
			SourceConfigPath: configPath,
		})
	}

	return entries
}
