package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/doccat/internal/core/domain"
	"github.com/custodia-labs/doccat/internal/core/ports/driven"
	"github.com/custodia-labs/doccat/internal/logger"
)

// Ensure FileSource implements the interface.
var _ driven.DocumentSource = (*FileSource)(nil)

// extensionTypes maps file extensions to document types.
var extensionTypes = map[string]domain.DocumentType{
	".txt":      domain.DocumentTypeText,
	".text":     domain.DocumentTypeText,
	".md":       domain.DocumentTypeMarkdown,
	".markdown": domain.DocumentTypeMarkdown,
	".html":     domain.DocumentTypeHTML,
	".htm":      domain.DocumentTypeHTML,
	".pdf":      domain.DocumentTypePDF,
	".doc":      domain.DocumentTypeWord,
	".docx":     domain.DocumentTypeWord,
}

type catalogFile struct {
	Documents []entry `toml:"documents"`
}

type entry struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Type     string   `toml:"type"`
	Author   string   `toml:"author"`
	Language string   `toml:"language"`
	Tags     []string `toml:"tags"`
	Content  string   `toml:"content"`
	Path     string   `toml:"path"`
}

// FileSource reads documents from a catalog file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the catalog at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the catalog file path.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and parses the catalog. Relative document paths resolve
// against the catalog's directory.
func (s *FileSource) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	docs, err := Parse(data, filepath.Dir(s.path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.path, err)
	}

	logger.Debug("Loaded %d documents from %s", len(docs), s.path)
	return docs, nil
}

// Parse decodes catalog data into documents in file order.
func Parse(data []byte, baseDir string) ([]domain.Document, error) {
	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	docs := make([]domain.Document, 0, len(cf.Documents))
	for i, e := range cf.Documents {
		doc, err := e.toDocument(baseDir)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (e entry) toDocument(baseDir string) (domain.Document, error) {
	if e.Content != "" && e.Path != "" {
		return domain.Document{}, fmt.Errorf("%w: content and path are mutually exclusive", domain.ErrInvalidInput)
	}

	docType, err := e.documentType()
	if err != nil {
		return domain.Document{}, err
	}

	content := e.Content
	if e.Path != "" {
		p := e.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return domain.Document{}, fmt.Errorf("read content: %w", err)
		}
		content = string(raw)
	}

	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}

	title := e.Title
	if title == "" && e.Path != "" {
		title = filepath.Base(e.Path)
	}

	doc := domain.NewDocument(id, title, content, docType, e.Author)
	if e.Language != "" {
		doc.Metadata.Language = e.Language
	}
	for _, tag := range e.Tags {
		doc.AddTag(tag)
	}
	return doc, nil
}

func (e entry) documentType() (domain.DocumentType, error) {
	if e.Type != "" {
		return domain.ParseDocumentType(e.Type)
	}
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(e.Path))]; ok {
		return t, nil
	}
	return domain.DocumentTypeText, nil
}
