package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doccat/internal/core/domain"
)

func TestParse_InlineContent(t *testing.T) {
	data := []byte(`
[[documents]]
id = "doc-1"
title = "Readme"
type = "markdown"
author = "Alice"
language = "de"
tags = ["guide", "intro"]
content = "# Hello world"
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	doc := docs[0]
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, "Readme", doc.Title)
	assert.Equal(t, domain.DocumentTypeMarkdown, doc.Type)
	assert.Equal(t, "Alice", doc.Metadata.Author)
	assert.Equal(t, "de", doc.Metadata.Language)
	assert.Equal(t, []string{"guide", "intro"}, doc.Metadata.Tags)
	assert.Equal(t, "# Hello world", doc.Content)
	assert.Equal(t, 3, doc.Metadata.WordCount)
}

func TestParse_Defaults(t *testing.T) {
	data := []byte(`
[[documents]]
title = "Untyped"
content = "plain"
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, domain.DocumentTypeText, docs[0].Type)
	assert.Equal(t, domain.DefaultLanguage, docs[0].Metadata.Language)
	assert.NotNil(t, docs[0].Metadata.Tags)
	assert.Empty(t, docs[0].Metadata.Tags)

	_, err = uuid.Parse(docs[0].ID)
	assert.NoError(t, err, "generated ID should be a UUID")
}

func TestParse_GeneratedIDsAreUnique(t *testing.T) {
	data := []byte(`
[[documents]]
content = "one"

[[documents]]
content = "two"
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
}

func TestParse_PreservesOrder(t *testing.T) {
	data := []byte(`
[[documents]]
id = "b"
content = "x"

[[documents]]
id = "a"
content = "y"

[[documents]]
id = "c"
content = "z"
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestParse_DuplicateTagsCollapsed(t *testing.T) {
	data := []byte(`
[[documents]]
content = "x"
tags = ["a", "b", "a", "B"]
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "B"}, docs[0].Metadata.Tags)
}

func TestParse_TypeIsCaseInsensitive(t *testing.T) {
	data := []byte(`
[[documents]]
type = "HTML"
content = "<html></html>"
`)

	docs, err := Parse(data, "")

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeHTML, docs[0].Type)
}

func TestParse_UnknownType(t *testing.T) {
	data := []byte(`
[[documents]]
type = "spreadsheet"
content = "x"
`)

	_, err := Parse(data, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
	assert.Contains(t, err.Error(), "document 1")
}

func TestParse_ContentAndPathRejected(t *testing.T) {
	data := []byte(`
[[documents]]
content = "x"
path = "x.txt"
`)

	_, err := Parse(data, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse([]byte("[[documents]\ncontent = "), "")

	assert.Error(t, err)
}

func TestParse_EmptyCatalog(t *testing.T) {
	docs, err := Parse([]byte(""), "")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestParse_PathContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "page.htm"), []byte("<!DOCTYPE html><p>hi</p>"), 0600))

	data := []byte(`
[[documents]]
path = "docs/page.htm"
`)

	docs, err := Parse(data, dir)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "<!DOCTYPE html><p>hi</p>", docs[0].Content)
	assert.Equal(t, domain.DocumentTypeHTML, docs[0].Type)
	assert.Equal(t, "page.htm", docs[0].Title)
}

func TestParse_InferredTypes(t *testing.T) {
	tests := []struct {
		path string
		want domain.DocumentType
	}{
		{"a.txt", domain.DocumentTypeText},
		{"a.md", domain.DocumentTypeMarkdown},
		{"a.HTML", domain.DocumentTypeHTML},
		{"a.pdf", domain.DocumentTypePDF},
		{"a.docx", domain.DocumentTypeWord},
		{"a.doc", domain.DocumentTypeWord},
		{"a.csv", domain.DocumentTypeText},
		{"noext", domain.DocumentTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := entry{Path: tt.path}
			got, err := e.documentType()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_ExplicitTypeOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("# title"), 0600))

	data := []byte(`
[[documents]]
title = "Notes"
type = "markdown"
path = "notes.txt"
`)

	docs, err := Parse(data, dir)

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeMarkdown, docs[0].Type)
	assert.Equal(t, "Notes", docs[0].Title)
}

func TestParse_MissingPath(t *testing.T) {
	data := []byte(`
[[documents]]
path = "missing.txt"
`)

	_, err := Parse(data, t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "body.txt"), []byte("from disk"), 0600))
	catalogPath := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
[[documents]]
id = "inline"
content = "inline body"

[[documents]]
id = "file"
path = "body.txt"
`), 0600))

	source := NewFileSource(catalogPath)
	docs, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "inline body", docs[0].Content)
	assert.Equal(t, "from disk", docs[1].Content)
	assert.Equal(t, catalogPath, source.Path())
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.toml"))

	_, err := source.Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileSource_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("unused.toml").Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
