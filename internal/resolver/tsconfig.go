package resolver

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// tsConfigNames are checked in order at every directory level.
var tsConfigNames = []string{"tsconfig.json", "jsconfig.json"}

// extractTSConfig pulls the compilerOptions.paths mapping out of a
// tsconfig-style file. The file may carry // and /* */ comments; they are
// stripped before parsing. Each pattern keeps only the portion before its
// "*" wildcard, each target keeps the first array element with the same
// treatment, and targets resolve against the config's own directory joined
// with baseUrl (default "."). A malformed file yields an empty table.
func extractTSConfig(configPath string) []AliasEntry {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("importlens: unreadable config %s: %v", configPath, err)
		return nil
	}

	doc := stripJSONComments(string(raw))
	if !gjson.Valid(doc) {
		log.Printf("importlens: malformed json in %s, ignoring", configPath)
		return nil
	}

	configDir := filepath.Dir(configPath)
	baseURL := gjson.Get(doc, "compilerOptions.baseUrl").String()
	if baseURL == "" {
		baseURL = "."
	}
	baseDir := filepath.Join(configDir, baseURL)

	paths := gjson.Get(doc, "compilerOptions.paths")
	if !paths.IsObject() {
		return nil
	}

	var entries []AliasEntry
	paths.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		targets := value.Array()
		if len(targets) == 0 {
			return true
		}

		pattern := normalizeAliasKey(strings.TrimSuffix(key.String(), "*"))
		target, _, _ := strings.Cut(targets[0].String(), "*")

		entries = appendAlias(entries, AliasEntry{
			Pattern:          pattern,
			TargetDir:        filepath.Clean(filepath.Join(baseDir, target)),
			SourceConfigPath: configPath,
		})
		return true
	})

	return entries
}

// stripJSONComments removes // and /* */ comments while leaving string
// literals untouched, so URLs inside values survive.
func stripJSONComments(doc string) string {
	var out strings.Builder
	out.Grow(len(doc))

	inString := false
	inLine := false
	inBlock := false

	for i := 0; i < len(doc); i++ {
		c := doc[i]

		switch {
		case inLine:
			if c == '\n' {
				inLine = false
				out.WriteByte(c)
			}
		case inBlock:
			if c == '*' && i+1 < len(doc) && doc[i+1] == '/' {
				inBlock = false
				i++
			}
		case inString:
			out.WriteByte(c)
			if c == '\\' && i+1 < len(doc) {
				i++
				out.WriteByte(doc[i])
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
			out.WriteByte(c)
		case c == '/' && i+1 < len(doc) && doc[i+1] == '/':
			inLine = true
			i++
		case c == '/' && i+1 < len(doc) && doc[i+1] == '*':
			inBlock = true
			i++
		default:
			out.WriteByte(c)
		}
	}

	return out.String()
}
