package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/doccat/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/doccat/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Query catalogued documents",
	Long:  `List, show, or find documents in the loaded catalog.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show document details",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find documents by author, type, tag, or text",
	Long: `Find documents matching exactly one criterion.

  --author  case-insensitive exact match on the author
  --type    one of text, markdown, html, pdf, word
  --tag     case-sensitive tag membership
  --term    case-insensitive substring of title or content`,
	Args: cobra.NoArgs,
	RunE: runDocumentFind,
}

// Flags for the document commands.
var (
	documentJSON bool
	findAuthor   string
	findType     string
	findTag      string
	findTerm     string
)

func init() {
	documentListCmd.Flags().BoolVar(&documentJSON, "json", false, "output documents as JSON")
	documentFindCmd.Flags().BoolVar(&documentJSON, "json", false, "output documents as JSON")

	documentFindCmd.Flags().StringVar(&findAuthor, "author", "", "match author (case-insensitive)")
	documentFindCmd.Flags().StringVar(&findType, "type", "", "match document type")
	documentFindCmd.Flags().StringVar(&findTag, "tag", "", "match tag (case-sensitive)")
	documentFindCmd.Flags().StringVar(&findTerm, "term", "", "match text in title or content")
	documentFindCmd.MarkFlagsOneRequired("author", "type", "tag", "term")
	documentFindCmd.MarkFlagsMutuallyExclusive("author", "type", "tag", "term")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentFindCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if err := ensureCatalog(cmd.Context()); err != nil {
		return err
	}

	docs := catalogService.Documents()
	if documentJSON {
		return printDocumentsJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in catalog.")
		return nil
	}

	st := styles.ForWriter(cmd.OutOrStderr())
	cmd.Println(st.Title.Render("Documents:"))
	cmd.Println()
	printDocuments(cmd, st, docs)
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if err := ensureCatalog(cmd.Context()); err != nil {
		return err
	}

	doc, err := catalogService.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	st := styles.ForWriter(cmd.OutOrStderr())
	label := func(s string) string { return st.Label.Render(fmt.Sprintf("%-9s", s+":")) }

	cmd.Printf("%s %s\n\n", st.Title.Render("Document:"), doc.ID)
	cmd.Printf("  %s %s\n", label("Title"), doc.Title)
	cmd.Printf("  %s %s\n", label("Type"), doc.Type)
	cmd.Printf("  %s %s\n", label("Author"), doc.Metadata.Author)
	cmd.Printf("  %s %s\n", label("Language"), doc.Metadata.Language)
	cmd.Printf("  %s %d\n", label("Words"), doc.Metadata.WordCount)
	cmd.Printf("  %s %s\n", label("Created"), doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  %s %s\n", label("Tags"), formatTags(st, doc.Metadata.Tags))
	cmd.Printf("\n  %s\n  %s\n", label("Summary"), doc.Summary())
	return nil
}

func runDocumentFind(cmd *cobra.Command, _ []string) error {
	if err := ensureCatalog(cmd.Context()); err != nil {
		return err
	}

	var (
		docs      []domain.Document
		criterion string
	)
	switch {
	case cmd.Flags().Changed("author"):
		docs = catalogService.FindByAuthor(findAuthor)
		criterion = "author " + findAuthor
	case cmd.Flags().Changed("type"):
		docType, err := domain.ParseDocumentType(findType)
		if err != nil {
			return fmt.Errorf("invalid --type: %w", err)
		}
		docs = catalogService.FindByType(docType)
		criterion = "type " + docType.String()
	case cmd.Flags().Changed("tag"):
		docs = catalogService.FindByTag(findTag)
		criterion = "tag " + findTag
	default:
		docs = catalogService.Search(findTerm)
		criterion = "term " + findTerm
	}

	if documentJSON {
		return printDocumentsJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents match %s\n", criterion)
		return nil
	}

	st := styles.ForWriter(cmd.OutOrStderr())
	cmd.Printf("%s %s\n\n", st.Title.Render("Documents matching"), criterion)
	printDocuments(cmd, st, docs)
	cmd.Printf("Found: %d documents\n", len(docs))
	return nil
}

func printDocuments(cmd *cobra.Command, st *styles.Styles, docs []domain.Document) {
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title:  %s\n", docs[i].Title)
		cmd.Printf("    Type:   %s\n", docs[i].Type)
		if docs[i].Metadata.Author != "" {
			cmd.Printf("    Author: %s\n", docs[i].Metadata.Author)
		}
		if len(docs[i].Metadata.Tags) > 0 {
			cmd.Printf("    Tags:   %s\n", formatTags(st, docs[i].Metadata.Tags))
		}
		cmd.Println()
	}
}

func formatTags(st *styles.Styles, tags []string) string {
	if len(tags) == 0 {
		return st.Muted.Render("(none)")
	}
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		rendered[i] = st.Tag.Render(tag)
	}
	return strings.Join(rendered, ", ")
}

// documentJSONView is the JSON shape of a document.
type documentJSONView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	Author    string   `json:"author"`
	Language  string   `json:"language"`
	WordCount int      `json:"word_count"`
	Tags      []string `json:"tags"`
	Summary   string   `json:"summary"`
	CreatedAt string   `json:"created_at"`
}

func printDocumentsJSON(cmd *cobra.Command, docs []domain.Document) error {
	views := make([]documentJSONView, len(docs))
	for i := range docs {
		views[i] = documentJSONView{
			ID:        docs[i].ID,
			Title:     docs[i].Title,
			Type:      docs[i].Type.String(),
			Author:    docs[i].Metadata.Author,
			Language:  docs[i].Metadata.Language,
			WordCount: docs[i].Metadata.WordCount,
			Tags:      docs[i].Metadata.Tags,
			Summary:   docs[i].Summary(),
			CreatedAt: docs[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
