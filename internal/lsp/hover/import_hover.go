package hover

import (
	"context"
	"fmt"
	"strings"

	"github.com/importlens/importlens-lsp/internal/lsp"
	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
	"github.com/importlens/importlens-lsp/internal/resolver"
	"github.com/importlens/importlens-lsp/internal/treesitter"
)

// ImportHoverProvider shows where an import specifier resolves to, or why
// it does not.
type ImportHoverProvider struct {
	server *lsp.Server
}

func NewImportHoverProvider(lspServer *lsp.Server) *ImportHoverProvider {
	return &ImportHoverProvider{server: lspServer}
}

func (p *ImportHoverProvider) GetHover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	if params.Node == nil {
		return nil, nil
	}

	if !treesitter.JSImportSourcePattern.Matches(params.Node, params.DocumentContent) {
		return nil, nil
	}

	inner := treesitter.ImportSourceNode(params.Node)
	specifier := treesitter.GetNodeText(inner, params.DocumentContent)
	filePath := strings.TrimPrefix(params.TextDocument.URI, "file://")

	result := p.server.Resolver().Resolve(ctx, resolver.Request{
		Specifier: specifier,
		FromFile:  filePath,
		Root:      p.server.RootPath(),
	})

	nodeRange := inner.Range()
	hoverRange := &protocol.Range{
		Start: protocol.Position{Line: int(nodeRange.StartPoint.Row), Character: int(nodeRange.StartPoint.Column)},
		End:   protocol.Position{Line: int(nodeRange.EndPoint.Row), Character: int(nodeRange.EndPoint.Column)},
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: formatResult(specifier, result),
		},
		Range: hoverRange,
	}, nil
}

func formatResult(specifier string, result resolver.Result) string {
	switch result.Status {
	case resolver.StatusFound:
		return fmt.Sprintf("**%s**\n\nResolves to `%s`", specifier, result.Path)

	case resolver.StatusNotFound:
		var sb strings.Builder
		fmt.Fprintf(&sb, "**%s**\n\nNo file found. Probed:\n", specifier)
		for _, candidate := range result.Candidates {
			fmt.Fprintf(&sb, "- `%s`\n", candidate)
		}
		return sb.String()

	default:
		return fmt.Sprintf("**%s**\n\nNot resolvable: %s", specifier, result.Reason)
	}
}
