package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurai/internal/domain/service"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestExtract_UnsupportedType(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeTempFile(t, "plans.exe", "binary junk")

	_, err := extractor.Extract(context.Background(), path, "plans.exe")
	assert.ErrorIs(t, err, service.ErrUnsupportedFileType)
}

func TestExtract_DispatchesOnOriginalName(t *testing.T) {
	extractor := NewFileExtractor()
	// Temp files often carry upload suffixes; the original name decides.
	path := writeTempFile(t, "upload-12345", "plain contents")

	content, err := extractor.Extract(context.Background(), path, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain contents", content.Text)
}

func TestExtract_PlainText(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeTempFile(t, "doc.txt", "Health plan overview\nMax Coverage: 500,000")

	content, err := extractor.Extract(context.Background(), path, "doc.txt")
	require.NoError(t, err)
	assert.Contains(t, content.Text, "Max Coverage: 500,000")
	assert.Empty(t, content.Tables)
}

func TestExtract_CSV(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeTempFile(t, "pricing.csv", "age_range,premium\n0-17,320\n18-45,450\n")

	content, err := extractor.Extract(context.Background(), path, "pricing.csv")
	require.NoError(t, err)

	assert.Contains(t, content.Text, "age_range | premium")
	assert.Contains(t, content.Text, "0-17 | 320")

	require.Len(t, content.Tables, 1)
	assert.Equal(t, "pricing", content.Tables[0].SheetName)
	assert.Contains(t, content.Tables[0].CSV, "0-17,320")
}

func TestExtract_CSV_RaggedRows(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeTempFile(t, "odd.csv", "a,b,c\nonly-one\nx,y\n")

	content, err := extractor.Extract(context.Background(), path, "odd.csv")
	require.NoError(t, err)
	assert.Contains(t, content.Text, "only-one")
}

func TestExtract_Docx(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeDocx(t, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Gold Family Care</w:t></w:r></w:p>
    <w:p><w:r><w:t>Annual premium: </w:t></w:r><w:r><w:t>5400 AED</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	content, err := extractor.Extract(context.Background(), path, "plan.docx")
	require.NoError(t, err)

	assert.Contains(t, content.Text, "Gold Family Care\n")
	assert.Contains(t, content.Text, "Annual premium: 5400 AED\n")
}

func TestExtract_Docx_MissingDocumentPart(t *testing.T) {
	extractor := NewFileExtractor()

	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = extractor.Extract(context.Background(), path, "broken.docx")
	assert.Error(t, err)
}

func TestExtract_CancelledContext(t *testing.T) {
	extractor := NewFileExtractor()
	path := writeTempFile(t, "doc.txt", "text")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.Extract(ctx, path, "doc.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plan.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	return path
}
