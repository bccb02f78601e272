package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileExtractorService pulls plain text out of an uploaded resume file.
// PDFs are parsed in memory; anything else is treated as UTF-8 text.
// Nothing is written to disk.
type FileExtractorService interface {
	ExtractUpload(fileHeader *multipart.FileHeader) (string, error)
}

type fileExtractorService struct{}

func NewFileExtractorService() FileExtractorService {
	return &fileExtractorService{}
}

func (s *fileExtractorService) ExtractUpload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	var text string
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) == ".pdf" {
		text, err = extractPDFText(data)
		if err != nil {
			return "", err
		}
	} else {
		text = string(data)
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text content found in uploaded file")
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep going
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// CleanText trims each line and drops empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
