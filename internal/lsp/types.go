package lsp

import (
	"context"

	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
)

// GotoDefinitionProvider is an interface for providing definition locations
type GotoDefinitionProvider interface {
	// GetDefinition returns location(s) for the definition of the symbol at the given position
	GetDefinition(ctx context.Context, params *protocol.DefinitionParams) []protocol.Location
}

// HoverProvider is an interface for providing hover information
type HoverProvider interface {
	// GetHover returns hover content for the symbol at the given position,
	// or nil when the provider has nothing to say
	GetHover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error)
}

// DocumentLinkProvider is an interface for providing document links
type DocumentLinkProvider interface {
	// GetDocumentLinks returns all links for the given document
	GetDocumentLinks(ctx context.Context, params *protocol.DocumentLinkParams, doc *TextDocument) []protocol.DocumentLink
}
