package lsp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/tidwall/pretty"
)

// AliasDumpParams asks for the alias tables applicable to one file.
type AliasDumpParams struct {
	FileURI string `json:"fileUri"`
}

// AliasDumpResult carries the discovered tables as pretty-printed JSON so
// clients can show them verbatim in an output channel.
type AliasDumpResult struct {
	Aliases json.RawMessage `json:"aliases"`
}

// aliasDump handles the custom importlens/aliasDump request. It reports,
// per configuration tier, the nearest config file and the alias table it
// contributes for the given file.
func (s *Server) aliasDump(ctx context.Context, params *AliasDumpParams) (*AliasDumpResult, error) {
	filePath := strings.TrimPrefix(params.FileURI, "file://")

	tables := s.resolver.DiscoverAliases(filepath.Dir(filePath), s.rootPath)

	raw, err := json.Marshal(tables)
	if err != nil {
		return nil, err
	}

	return &AliasDumpResult{Aliases: pretty.Pretty(raw)}, nil
}
