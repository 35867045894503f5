package treesitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// jsImportCallPattern matches require('x') and dynamic import('x') call
// expressions.
var jsImportCallPattern = And(
	NodeKind("call_expression"),
	HasChild(Or(
		And(NodeKind("identifier"), NodeText("require")),
		NodeKind("import"),
	)),
)

// jsImportStatementPattern matches static import and re-export statements
// that carry a module source string.
var jsImportStatementPattern = AnyNodeKind("import_statement", "export_statement")

// JSImportSourcePattern matches a string (or string_fragment) node that is
// the module source of an import statement, a re-export, a require() call
// or a dynamic import() call.
//
//	import { ref } from '@/composables/counter'
//	                     ^^^^^^^^^^^^^^^^^^^^^ matches
var JSImportSourcePattern = And(
	AnyNodeKind("string", "string_fragment"),
	Or(
		Ancestor(jsImportStatementPattern, 2),
		Ancestor(jsImportCallPattern, 3),
	),
)

// ImportSourceNode normalizes a matched import-source node to the inner
// string_fragment when one exists, so ranges and text exclude the quotes.
func ImportSourceNode(node *tree_sitter.Node) *tree_sitter.Node {
	if node == nil {
		return nil
	}
	if node.Kind() == "string" {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(uint(i))
			if child.Kind() == "string_fragment" {
				return child
			}
		}
	}
	return node
}
