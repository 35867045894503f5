package lsp

import (
	"context"

	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
)

// hover handles textDocument/hover requests
func (s *Server) hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	node, doc, ok := s.documentManager.GetNodeAtPosition(params.TextDocument.URI, params.Position.Line, params.Position.Character)
	if ok {
		params.Node = node
		params.DocumentContent = doc.Text
	}

	// Try each hover provider until one returns a result
	for _, provider := range s.hoverProviders {
		hover, err := provider.GetHover(ctx, params)
		if err != nil {
			continue
		}
		if hover != nil {
			return hover, nil
		}
	}

	// No hover information available
	return nil, nil
}
