package definition

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/importlens/importlens-lsp/internal/lsp"
	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
	"github.com/importlens/importlens-lsp/internal/resolver"
)

func parseJS(t *testing.T, code []byte) *tree_sitter.Tree {
	t.Helper()
	parser := tree_sitter.NewParser()
	require.NoError(t, parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_javascript.Language())))
	t.Cleanup(parser.Close)

	tree := parser.Parse(code, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)
	return tree
}

func definitionParams(t *testing.T, uri string, code []byte, line, col int) *protocol.DefinitionParams {
	t.Helper()
	tree := parseJS(t, code)

	pos := tree_sitter.Point{Row: uint(line), Column: uint(col)}
	node := tree.RootNode().NamedDescendantForPointRange(pos, pos)
	require.NotNil(t, node)

	params := &protocol.DefinitionParams{
		DocumentContent: code,
		Node:            node,
	}
	params.TextDocument.URI = uri
	params.Position.Line = line
	params.Position.Character = col
	return params
}

func TestGetDefinition_ResolvesImportUnderCursor(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "src", "utils", "helpers.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	server := lsp.NewServer(resolver.New(resolver.Options{}))
	server.SetRootPath(root)
	provider := NewImportDefinitionProvider(server)

	code := []byte(`import helpers from './utils/helpers'`)
	uri := "file://" + filepath.Join(root, "src", "app.js")

	locations := provider.GetDefinition(context.Background(), definitionParams(t, uri, code, 0, 25))
	require.Len(t, locations, 1)
	assert.Equal(t, "file://"+target, locations[0].URI)
}

func TestGetDefinition_IgnoresNonImportStrings(t *testing.T) {
	root := t.TempDir()
	server := lsp.NewServer(resolver.New(resolver.Options{}))
	server.SetRootPath(root)
	provider := NewImportDefinitionProvider(server)

	code := []byte(`const msg = './utils/helpers'`)
	uri := "file://" + filepath.Join(root, "src", "app.js")

	assert.Empty(t, provider.GetDefinition(context.Background(), definitionParams(t, uri, code, 0, 18)))
}

func TestGetDefinition_NilNode(t *testing.T) {
	server := lsp.NewServer(resolver.New(resolver.Options{}))
	provider := NewImportDefinitionProvider(server)

	params := &protocol.DefinitionParams{}
	assert.Empty(t, provider.GetDefinition(context.Background(), params))
}
