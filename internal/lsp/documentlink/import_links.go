package documentlink

import (
	"context"
	"strings"

	"github.com/importlens/importlens-lsp/internal/lsp"
	"github.com/importlens/importlens-lsp/internal/lsp/protocol"
	"github.com/importlens/importlens-lsp/internal/resolver"
	"github.com/importlens/importlens-lsp/internal/scanner"
)

// Budgets bounding how much work one document may cause. These are host
// policy, not resolver rules: oversized documents yield no links at all,
// and link emission stops at the cap.
const (
	maxDocumentSize = 1 << 20 // 1 MiB
	maxLinksPerDoc  = 200
)

// ImportLinkProvider turns every resolvable import specifier in a document
// into a clickable link.
type ImportLinkProvider struct {
	server  *lsp.Server
	scanner *scanner.Scanner
}

func NewImportLinkProvider(lspServer *lsp.Server, sc *scanner.Scanner) *ImportLinkProvider {
	return &ImportLinkProvider{server: lspServer, scanner: sc}
}

func (p *ImportLinkProvider) GetDocumentLinks(ctx context.Context, params *protocol.DocumentLinkParams, doc *lsp.TextDocument) []protocol.DocumentLink {
	if len(doc.Text) > maxDocumentSize {
		return []protocol.DocumentLink{}
	}

	filePath := strings.TrimPrefix(params.TextDocument.URI, "file://")

	var links []protocol.DocumentLink
	for _, imp := range p.scanner.Scan(filePath, doc.Text) {
		if len(links) >= maxLinksPerDoc {
			break
		}

		result := p.server.Resolver().Resolve(ctx, resolver.Request{
			Specifier: imp.Specifier,
			FromFile:  filePath,
			Root:      p.server.RootPath(),
		})
		if result.Status != resolver.StatusFound {
			continue
		}

		links = append(links, protocol.DocumentLink{
			Range:   imp.Range,
			Target:  "file://" + result.Path,
			Tooltip: result.Path,
		})
	}

	return links
}
