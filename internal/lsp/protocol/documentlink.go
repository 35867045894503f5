package protocol

// DocumentLinkParams represents the parameters for a documentLink request
type DocumentLinkParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

// DocumentLink represents a range in a document that links to a resource
type DocumentLink struct {
	Range Range `json:"range"`
	// Target is the URI the link points to
	Target string `json:"target,omitempty"`
	// Tooltip is shown alongside the client's default instruction text
	Tooltip string `json:"tooltip,omitempty"`
}
