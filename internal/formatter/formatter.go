// package formatter provides functions to export section data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/shared"
)

// SectionExport bundles a section slug with its parsed group for export.
type SectionExport struct {
	Slug  string
	Group *models.MediaGroup
}

// ExportToCSV converts a SectionExport to CSV format with columns: Tab, ID, Title, Type, YouTubeURL, VideoCount
func ExportToCSV(export *SectionExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Tab", "ID", "Title", "Type", "YouTubeURL", "VideoCount"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, tab := range export.Group.Tabs() {
		for _, item := range export.Group.Items(tab) {
			record := []string{
				tab,
				item.ID,
				item.Title,
				item.ContentType,
				item.YouTubeURL,
				strconv.Itoa(item.VideoCount),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a SectionExport to Markdown format with one heading per tab
func ExportToMarkdown(export *SectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Slug))
	buf.WriteString(fmt.Sprintf("**Tabs**: %d\n\n", export.Group.Len()))

	for _, tab := range export.Group.Tabs() {
		items := export.Group.Items(tab)
		buf.WriteString(fmt.Sprintf("## %s (%d)\n\n", tab, len(items)))

		for i, item := range items {
			videoPart := ""
			if item.HasSubList() {
				videoPart = fmt.Sprintf(" (%d videos)", item.VideoCount)
			}
			buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, item.Title, videoPart))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts a SectionExport to plain text format
func ExportToText(export *SectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Section: %s\n", export.Slug))
	buf.WriteString(fmt.Sprintf("Tabs: %d\n\n", export.Group.Len()))

	for _, tab := range export.Group.Tabs() {
		items := export.Group.Items(tab)
		buf.WriteString(fmt.Sprintf("[%s]\n", tab))
		for i, item := range items {
			buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Title))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON summary of a section (tab names and counts, without items)
func ToMetadataJSON(export *SectionExport) ([]byte, error) {
	type tabMeta struct {
		Tab   string `json:"tab"`
		Items int    `json:"items"`
	}

	meta := struct {
		Slug string    `json:"slug"`
		Tabs []tabMeta `json:"tabs"`
	}{Slug: export.Slug, Tabs: []tabMeta{}}

	for _, tab := range export.Group.Tabs() {
		meta.Tabs = append(meta.Tabs, tabMeta{Tab: tab, Items: len(export.Group.Items(tab))})
	}

	return shared.MarshalJSON(meta, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	ItemsFile    string
	MetadataFile string
}

// WriteCSVExport exports a section to CSV format with an accompanying metadata JSON file.
//
// Defaults to the section slug as the base filename & creates {base}_items.csv and {base}_metadata.json
func WriteCSVExport(export *SectionExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = export.Slug
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	itemsFile := baseFilepath + "_items.csv"
	if err := os.WriteFile(itemsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		ItemsFile:    itemsFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport exports a section to Markdown in a dedicated directory.
//
// Directory name defaults to the section slug. Creates {dir}/README.md.
func WriteMarkdownExport(export *SectionExport, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = export.Slug
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport exports a section to plain text format.
//
// Defaults to {slug}_items.txt as the filename.
func WriteTextExport(export *SectionExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_items.txt", export.Slug)
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
