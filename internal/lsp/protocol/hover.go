package protocol

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// HoverParams represents the parameters for a hover request
type HoverParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position Position `json:"position"`

	// Custom fields used to hand the parsed document to providers,
	// not part of the LSP spec.
	DocumentContent []byte            `json:"-"`
	Node            *tree_sitter.Node `json:"-"`
}

// Hover represents the result of a hover request
type Hover struct {
	Contents MarkupContent `json:"contents"`

	// An optional range the hover applies to, e.g. for highlighting
	Range *Range `json:"range,omitempty"`
}

// MarkupContent represents a string value whose content is interpreted
// based on its kind flag
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// MarkupKind describes the content type a client supports in result
// literals like Hover
type MarkupKind string

const (
	// PlainText plain text is supported as a content format
	PlainText MarkupKind = "plaintext"

	// Markdown markdown is supported as a content format
	Markdown MarkupKind = "markdown"
)
