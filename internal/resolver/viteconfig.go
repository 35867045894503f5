package resolver

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var viteConfigNames = []string{"vite.config.js", "vite.config.ts", "vite.config.mjs", "vite.config.mts"}

// fileURLAliasPattern matches the idiom Vite configs use for aliases:
//
//	'@': fileURLToPath(new URL('./src', import.meta.url))
var fileURLAliasPattern = regexp.MustCompile(
	`['"]?([@~\w./-]+)['"]?\s*:\s*fileURLToPath\(\s*new\s+URL\(\s*['"]([^'"]+)['"]\s*,\s*import\.meta\.url\s*\)\s*\)`)

// plainAliasPattern matches simple quoted pairs inside an alias block:
//
//	'@': './src'
var plainAliasPattern = regexp.MustCompile(
	`['"]?([@~\w./-]+)['"]?\s*:\s*['"]([^'"]+)['"]`)

// extractViteConfig scans a Vite-style config for its alias block without
// evaluating any of the config's code. URL-construction matches take
// priority; plain string pairs only fill in keys the URL idiom did not
// claim. Targets resolve against the config file's directory.
func extractViteConfig(configPath string) []AliasEntry {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("importlens: unreadable config %s: %v", configPath, err)
		return nil
	}

	block, ok := braceBlockAfter(string(raw), "alias")
	if !ok {
		return nil
	}

	configDir := filepath.Dir(configPath)
	var entries []AliasEntry

	for _, m := range fileURLAliasPattern.FindAllStringSubmatch(block, -1) {
		entries = appendAlias(entries, AliasEntry{
			Pattern:          normalizeAliasKey(m[1]),
			TargetDir:        filepath.Clean(filepath.Join(configDir, m[2])),
			SourceConfigPath: configPath,
		})
	}

	for _, m := range plainAliasPattern.FindAllStringSubmatch(block, -1) {
		if strings.Contains(m[0], "fileURLToPath") {
			continue
		}
		entries = appendAlias(entries, AliasEntry{
			Pattern:          normalizeAliasKey(m[1]),
			TargetDir:        filepath.Clean(filepath.Join(configDir, m[2])),
			SourceConfigPath: configPath,
		})
	}

	return entries
}

// braceBlockAfter returns the contents of the first balanced {...} block
// following the given keyword used as an object key.
func braceBlockAfter(source, keyword string) (string, bool) {
	idx := strings.Index(source, keyword)
	for idx >= 0 {
		rest := source[idx+len(keyword):]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if strings.HasPrefix(trimmed, ":") {
			open := strings.Index(trimmed, "{")
			if open >= 0 {
				if block, ok := balancedBraces(trimmed[open:]); ok {
					return block, true
				}
			}
		}
		next := strings.Index(source[idx+len(keyword):], keyword)
		if next < 0 {
			break
		}
		idx += len(keyword) + next
	}
	return "", false
}

// balancedBraces returns the interior of the brace block starting at
// source[0] == '{'.
func balancedBraces(source string) (string, bool) {
	depth := 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return source[1:i], true
			}
		}
	}
	return "", false
}
