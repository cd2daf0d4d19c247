// Package ingestion reads already-extracted resume and job description text.
package ingestion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedFormat is returned for binary document formats that must be converted to text first
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrInvalidEncoding is returned when content is not valid UTF-8
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// binaryExtensions are document formats that are never read as text
var binaryExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".odt":  true,
	".rtf":  true,
}

const utf8BOM = "\uFEFF"

var (
	multiSpacePattern  = regexp.MustCompile(`[ \t]+`)
	excessBlankPattern = regexp.MustCompile(`\n\n\n+`)
)

// Document is one ingested text file
type Document struct {
	Name     string
	Text     string
	Metadata *Metadata
}

// NormalizeText converts line endings to LF and strips a leading byte order mark.
// It leaves everything else untouched so that scoring sees the text as extracted.
func NormalizeText(content string) string {
	content = strings.TrimPrefix(content, utf8BOM)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// CleanText normalizes text and collapses whitespace while preserving line structure.
// Used for job descriptions before keyword extraction.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(NormalizeText(content), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := excessBlankPattern.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner runs of spaces; bullet markers are kept
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return multiSpacePattern.ReplaceAllString(trimmed, " ")
}

// ReadText reads UTF-8 text from r and normalizes line endings
func ReadText(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	if !utf8.Valid(content) {
		return "", ErrInvalidEncoding
	}
	return NormalizeText(string(content)), nil
}

// IngestFromFile reads a plain text file and returns its normalized text with metadata.
// A path of "-" reads from stdin.
func IngestFromFile(path string) (*Document, error) {
	if path == "-" {
		return ingestReader("-", "stdin", os.Stdin)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if binaryExtensions[ext] {
		return nil, fmt.Errorf("%w: %s (convert it to plain text first)", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ingestReader(path, filepath.Base(path), f)
}

func ingestReader(source, name string, r io.Reader) (*Document, error) {
	text, err := ReadText(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &Document{
		Name:     name,
		Text:     text,
		Metadata: NewMetadata(text, source),
	}, nil
}

// IngestFiles reads every path in order and stops at the first failure
func IngestFiles(paths []string) ([]*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := IngestFromFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
