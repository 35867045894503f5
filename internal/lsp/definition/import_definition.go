package definition

import (
	"context"
	"strings"

	"github.com/importlens/importlens-lsp/internal/lsp"
	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
	"github.com/importlens/importlens-lsp/internal/resolver"
	"github.com/importlens/importlens-lsp/internal/treesitter"
)

// ImportDefinitionProvider resolves the import specifier under the cursor
// to the file it names.
type ImportDefinitionProvider struct {
	server *lsp.Server
}

func NewImportDefinitionProvider(lspServer *lsp.Server) *ImportDefinitionProvider {
	return &ImportDefinitionProvider{server: lspServer}
}

func (p *ImportDefinitionProvider) GetDefinition(ctx context.Context, params *protocol.DefinitionParams) []protocol.Location {
	if params.Node == nil {
		return []protocol.Location{}
	}

	if !treesitter.JSImportSourcePattern.Matches(params.Node, params.DocumentContent) {
		return []protocol.Location{}
	}

	specifier := treesitter.GetNodeText(treesitter.ImportSourceNode(params.Node), params.DocumentContent)
	filePath := strings.TrimPrefix(params.TextDocument.URI, "file://")

	result := p.server.Resolver().Resolve(ctx, resolver.Request{
		Specifier: specifier,
		FromFile:  filePath,
		Root:      p.server.RootPath(),
	})
	if result.Status != resolver.StatusFound {
		return []protocol.Location{}
	}

	return []protocol.Location{{
		URI: "file://" + result.Path,
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
	}}
}
