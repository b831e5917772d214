package domain

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultLanguage is the language assigned to every new document.
const DefaultLanguage = "en"

// SummaryLength is the maximum number of characters returned by Summary.
const SummaryLength = 100

// Document represents a catalogued document with metadata.
type Document struct {
	// ID is the identifier for the document.
	// Uniqueness is the caller's responsibility.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the full text content.
	Content string

	// Type is the document format.
	Type DocumentType

	// CreatedAt is when the document was constructed.
	CreatedAt time.Time

	// Metadata is owned exclusively by the document.
	Metadata Metadata
}

// Metadata describes a document.
type Metadata struct {
	// Author is the document author.
	Author string

	// WordCount is the number of whitespace-separated tokens in Content.
	// It is only refreshed at construction and by UpdateWordCount.
	WordCount int

	// Language is a free-form language code, "en" unless changed.
	Language string

	// Tags are unique labels in insertion order.
	Tags []string
}

// NewDocument creates a document and derives its metadata from content.
// All inputs are accepted as-is, including empty strings.
func NewDocument(id, title, content string, docType DocumentType, author string) Document {
	return Document{
		ID:        id,
		Title:     title,
		Content:   content,
		Type:      docType,
		CreatedAt: time.Now(),
		Metadata: Metadata{
			Author:    author,
			WordCount: countWords(content),
			Language:  DefaultLanguage,
			Tags:      []string{},
		},
	}
}

// AddTag appends tag unless the document already carries it.
func (d *Document) AddTag(tag string) {
	if d.HasTag(tag) {
		return
	}
	d.Metadata.Tags = append(d.Metadata.Tags, tag)
}

// RemoveTag removes the first occurrence of tag.
// Returns true if a tag was removed.
func (d *Document) RemoveTag(tag string) bool {
	idx := slices.Index(d.Metadata.Tags, tag)
	if idx < 0 {
		return false
	}
	d.Metadata.Tags = slices.Delete(d.Metadata.Tags, idx, idx+1)
	return true
}

// HasTag reports whether the document carries tag. Comparison is case-sensitive.
func (d Document) HasTag(tag string) bool {
	return slices.Contains(d.Metadata.Tags, tag)
}

// Summary returns the first SummaryLength characters of the content.
// Content that fits is returned unchanged. Truncation never splits a character.
func (d Document) Summary() string {
	if utf8.RuneCountInString(d.Content) <= SummaryLength {
		return d.Content
	}

	n := 0
	for i := range d.Content {
		if n == SummaryLength {
			return d.Content[:i]
		}
		n++
	}
	return d.Content
}

// UpdateWordCount recomputes the word count from the current content.
func (d *Document) UpdateWordCount() {
	d.Metadata.WordCount = countWords(d.Content)
}

// Contains reports whether term occurs in the title or the content, ignoring case.
func (d Document) Contains(term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(d.Title), needle) ||
		strings.Contains(strings.ToLower(d.Content), needle)
}

// Clone returns a deep copy that shares no mutable state with d.
func (d Document) Clone() Document {
	clone := d
	clone.Metadata.Tags = slices.Clone(d.Metadata.Tags)
	return clone
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
