package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// jsExtensions are the file extensions parsed with the JavaScript grammar.
// TypeScript sources parse well enough with it for import extraction, which
// is all this server reads out of the tree.
var jsExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"}

// CreateParsers builds one parser per supported file extension.
func CreateParsers() map[string]*tree_sitter.Parser {
	parsers := make(map[string]*tree_sitter.Parser)

	language := tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	for _, ext := range jsExtensions {
		parser := tree_sitter.NewParser()
		_ = parser.SetLanguage(language)
		parsers[ext] = parser
	}

	return parsers
}

// CloseParsers frees every parser in the map.
func CloseParsers(parsers map[string]*tree_sitter.Parser) {
	for _, parser := range parsers {
		parser.Close()
	}
}
