package domain

import (
	"fmt"
	"strings"
)

// DocumentType identifies the format of a document.
type DocumentType string

const (
	// DocumentTypeText is unformatted plain text.
	DocumentTypeText DocumentType = "text"
	// DocumentTypeMarkdown is Markdown source.
	DocumentTypeMarkdown DocumentType = "markdown"
	// DocumentTypeHTML is an HTML page.
	DocumentTypeHTML DocumentType = "html"
	// DocumentTypePDF is a PDF document.
	DocumentTypePDF DocumentType = "pdf"
	// DocumentTypeWord is a Word document.
	DocumentTypeWord DocumentType = "word"
)

// AllDocumentTypes returns every supported document type in declaration order.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeText,
		DocumentTypeMarkdown,
		DocumentTypeHTML,
		DocumentTypePDF,
		DocumentTypeWord,
	}
}

// IsValid returns true if t is one of the supported document types.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeText, DocumentTypeMarkdown, DocumentTypeHTML, DocumentTypePDF, DocumentTypeWord:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// ParseDocumentType converts a name such as "Markdown" or "html" into a DocumentType.
// Matching ignores case and surrounding whitespace.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: document type %q", ErrUnsupportedType, s)
	}
	return t, nil
}
