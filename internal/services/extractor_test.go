package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestExtractUploadPlainText(t *testing.T) {
	extractor := NewFileExtractorService()

	text, err := extractor.ExtractUpload(uploadedFile(t, "resume.txt", "  line one \n\n line two  \n"))

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestExtractUploadEmptyFile(t *testing.T) {
	extractor := NewFileExtractorService()

	_, err := extractor.ExtractUpload(uploadedFile(t, "resume.txt", "   \n \n"))

	assert.Error(t, err)
}

func TestExtractUploadInvalidPDF(t *testing.T) {
	extractor := NewFileExtractorService()

	_, err := extractor.ExtractUpload(uploadedFile(t, "resume.pdf", "this is not a pdf"))

	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText(" a \n\n  \n b "))
	assert.Equal(t, "", CleanText("  \n \t "))
}
