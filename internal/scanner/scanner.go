// Package scanner finds module-import specifiers in source documents,
// together with the document range each specifier occupies. JavaScript and
// TypeScript files are parsed with tree-sitter; other text files fall back
// to a line-based pattern scan.
package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
	"github.com/importlens/importlens-lsp/internal/treesitter"
)

// Import is one discovered import specifier and its zero-based range in the
// document, excluding quotes.
type Import struct {
	Specifier string
	Range     protocol.Range
}

// Scanner extracts imports from documents. A Scanner is safe for concurrent
// use; parsing is serialized internally because tree-sitter parsers are not.
type Scanner struct {
	mu      sync.Mutex
	parsers map[string]*tree_sitter.Parser
}

// New creates a Scanner with parsers for all supported file types.
func New() *Scanner {
	return &Scanner{parsers: treesitter.CreateParsers()}
}

// Close frees the underlying parsers.
func (s *Scanner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	treesitter.CloseParsers(s.parsers)
	s.parsers = nil
}

// Scan returns every import specifier in the document, in document order.
// The path only selects the scanning strategy by extension; the file is not
// read from disk.
func (s *Scanner) Scan(path string, content []byte) []Import {
	ext := strings.ToLower(filepath.Ext(path))

	s.mu.Lock()
	parser, ok := s.parsers[ext]
	if !ok || s.parsers == nil {
		s.mu.Unlock()
		return scanLines(content)
	}

	tree := parser.Parse(content, nil)
	s.mu.Unlock()
	if tree == nil {
		return scanLines(content)
	}
	defer tree.Close()

	return scanTree(tree.RootNode(), content)
}

// scanTree collects import sources from a parsed JavaScript tree.
func scanTree(root *tree_sitter.Node, content []byte) []Import {
	pattern := treesitter.And(
		treesitter.NodeKind("string"),
		treesitter.JSImportSourcePattern,
	)

	var imports []Import
	for _, node := range treesitter.FindAll(root, pattern, content) {
		inner := treesitter.ImportSourceNode(node)
		specifier := treesitter.GetNodeText(inner, content)
		if specifier == "" {
			continue
		}
		imports = append(imports, Import{
			Specifier: specifier,
			Range:     nodeRange(inner),
		})
	}
	return imports
}

func nodeRange(node *tree_sitter.Node) protocol.Range {
	r := node.Range()
	return protocol.Range{
		Start: protocol.Position{Line: int(r.StartPoint.Row), Character: int(r.StartPoint.Column)},
		End:   protocol.Position{Line: int(r.EndPoint.Row), Character: int(r.EndPoint.Column)},
	}
}

// linePatterns cover non-JavaScript files: Python imports and CSS-style
// @import statements. Each pattern's first capture group is the specifier.
var linePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*from\s+([\w./]+)\s+import\b`),
	regexp.MustCompile(`^\s*import\s+([\w./]+)\s*$`),
	regexp.MustCompile(`@import\s+(?:url\()?['"]([^'"]+)['"]`),
}

// scanLines is the regex fallback for file types without a grammar.
func scanLines(content []byte) []Import {
	var imports []Import

	for lineNo, line := range strings.Split(string(content), "\n") {
		for _, pattern := range linePatterns {
			m := pattern.FindStringSubmatchIndex(line)
			if m == nil {
				continue
			}
			start, end := m[2], m[3]
			imports = append(imports, Import{
				Specifier: line[start:end],
				Range: protocol.Range{
					Start: protocol.Position{Line: lineNo, Character: start},
					End:   protocol.Position{Line: lineNo, Character: end},
				},
			})
			break
		}
	}

	return imports
}
