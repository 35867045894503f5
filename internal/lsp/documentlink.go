package lsp

import (
	"context"

	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
)

// documentLink handles textDocument/documentLink requests
func (s *Server) documentLink(ctx context.Context, params *protocol.DocumentLinkParams) []protocol.DocumentLink {
	doc, ok := s.documentManager.GetDocument(params.TextDocument.URI)
	if !ok {
		return []protocol.DocumentLink{}
	}

	var links []protocol.DocumentLink
	for _, provider := range s.documentLinkProviders {
		links = append(links, provider.GetDocumentLinks(ctx, params, doc)...)
	}

	return links
}
