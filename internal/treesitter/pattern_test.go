package treesitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

func parseJS(t *testing.T, content []byte) *tree_sitter.Tree {
	t.Helper()
	parser := tree_sitter.NewParser()
	require.NoError(t, parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_javascript.Language())))
	t.Cleanup(parser.Close)

	tree := parser.Parse(content, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)
	return tree
}

func TestJSImportSourcePattern(t *testing.T) {
	content := []byte(`import a from './a'
const b = require('b')
const c = 'not an import'
`)
	tree := parseJS(t, content)

	matches := FindAll(tree.RootNode(), And(NodeKind("string"), JSImportSourcePattern), content)
	require.Len(t, matches, 2)

	assert.Equal(t, "./a", GetNodeText(ImportSourceNode(matches[0]), content))
	assert.Equal(t, "b", GetNodeText(ImportSourceNode(matches[1]), content))
}

func TestJSImportSourcePattern_MatchesFragmentUnderCursor(t *testing.T) {
	content := []byte(`import a from './a'`)
	tree := parseJS(t, content)

	// Simulates the cursor resting inside the specifier string.
	pos := tree_sitter.Point{Row: 0, Column: 16}
	node := tree.RootNode().NamedDescendantForPointRange(pos, pos)
	require.NotNil(t, node)

	assert.True(t, JSImportSourcePattern.Matches(node, content))
}

func TestPatternCombinators(t *testing.T) {
	content := []byte(`const x = 1`)
	tree := parseJS(t, content)
	root := tree.RootNode()

	assert.True(t, NodeKind("program").Matches(root, content))
	assert.False(t, NodeKind("import_statement").Matches(root, content))
	assert.True(t, Or(NodeKind("nope"), NodeKind("program")).Matches(root, content))
	assert.False(t, And(NodeKind("program"), NodeKind("nope")).Matches(root, content))
	assert.True(t, HasChild(NodeKind("lexical_declaration")).Matches(root, content))
}
