package main

import (
	"log"
	"os"

	"github.com/importlens/importlens-lsp/internal/lsp"
	"github.com/importlens/importlens-lsp/internal/lsp/definition"
	"github.com/importlens/importlens-lsp/internal/lsp/documentlink"
	"github.com/importlens/importlens-lsp/internal/lsp/hover"
	"github.com/importlens/importlens-lsp/internal/resolver"
	"github.com/importlens/importlens-lsp/internal/scanner"
)

func main() {
	log.SetFlags(0)

	res := resolver.New(resolver.Options{})
	server := lsp.NewServer(res)

	sc := scanner.New()
	defer sc.Close()

	server.RegisterDefinitionProvider(definition.NewImportDefinitionProvider(server))
	server.RegisterHoverProvider(hover.NewImportHoverProvider(server))
	server.RegisterDocumentLinkProvider(documentlink.NewImportLinkProvider(server, sc))

	if err := server.Start(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("LSP server error: %v", err)
	}
}
