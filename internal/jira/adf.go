package jira

// Jira Cloud long-text fields use the Atlassian Document Format. The shape
// produced here is a fixed, versioned wire format and must match the remote
// system bit-for-bit. Decoding documents back to plain text is not
// implemented; descriptions are surfaced as raw JSON.

// DocNode is a single node of an Atlassian document.
type DocNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []DocNode `json:"content,omitempty"`
}

// Document is the top-level Atlassian document.
type Document struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []DocNode `json:"content"`
}

// TextDocument wraps plain text into a single-paragraph document.
func TextDocument(text string) Document {
	return Document{
		Type:    "doc",
		Version: 1,
		Content: []DocNode{
			{
				Type: "paragraph",
				Content: []DocNode{
					{Type: "text", Text: text},
				},
			},
		},
	}
}
