package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3\n• Item 4"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "• Item 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t  multiple    spaces   "
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Equal(t, input, result)
}

func TestNormalizeText(t *testing.T) {
	input := "\uFEFFSummary\r\n  indented   text\r"
	result := NormalizeText(input)

	// only line endings and the BOM change
	assert.Equal(t, "Summary\n  indented   text\n", result)
}

func TestReadText_InvalidUTF8(t *testing.T) {
	_, err := ReadText(strings.NewReader("\xff\xfe\xfd"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestIngestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "alice.txt")
	err := os.WriteFile(testFile, []byte("Experience\r\n- Built things"), 0644)
	require.NoError(t, err)

	doc, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "alice.txt", doc.Name)
	assert.Equal(t, "Experience\n- Built things", doc.Text)
	require.NotNil(t, doc.Metadata)
	assert.Equal(t, testFile, doc.Metadata.Source)
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.Equal(t, 25, doc.Metadata.Chars)
	assert.NotEmpty(t, doc.Metadata.Timestamp)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	doc, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "file not found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIngestFromFile_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.pdf", "resume.DOCX", "cv.doc"} {
		_, err := IngestFromFile(filepath.Join(t.TempDir(), name))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestIngestFromFile_HashUniqueness(t *testing.T) {
	tmpDir := t.TempDir()

	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	doc1, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	doc1Again, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	doc2, err := IngestFromFile(testFile2)
	require.NoError(t, err)

	assert.Equal(t, doc1.Metadata.Hash, doc1Again.Metadata.Hash)
	assert.NotEqual(t, doc1.Metadata.Hash, doc2.Metadata.Hash)
}

func TestIngestFiles(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.txt")
	b := filepath.Join(tmpDir, "b.md")
	require.NoError(t, os.WriteFile(a, []byte("A"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("B"), 0644))

	docs, err := IngestFiles([]string{a, b})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "A", docs[0].Text)
	assert.Equal(t, "b.md", docs[1].Name)

	_, err = IngestFiles([]string{a, filepath.Join(tmpDir, "missing.txt")})
	assert.Error(t, err)
}

func TestNewMetadata(t *testing.T) {
	metadata := NewMetadata("héllo", "x.txt")

	assert.Equal(t, "x.txt", metadata.Source)
	assert.Equal(t, 5, metadata.Chars)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, metadata.Hash, NewMetadata("héllo", "y.txt").Hash)
}
