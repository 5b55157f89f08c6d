// Package source loads documents to summarize from files or standard input.
//
// Supported formats:
//   - .txt, .text, .md, .markdown: passthrough
//   - .pdf: page content streams parsed with pdfcpu
//   - .html, .htm: visible text via golang.org/x/net/html
package source

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"smartsum/internal/domain"
)

// Format identifies how a file is turned into text.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// StdinPath selects standard input.
const StdinPath = "-"

const defaultMaxBytes = 50 << 20

// Loader reads documents from disk, dispatching on file extension.
type Loader struct {
	maxBytes int64
	stdin    io.Reader
}

// NewLoader creates a loader rejecting files larger than maxBytes.
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return &Loader{maxBytes: maxBytes, stdin: os.Stdin}
}

// Detect returns the document format based on file extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".text", ".md", ".markdown":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", ext)
	}
}

// Load reads the document at path. StdinPath reads plain text from stdin.
func (l *Loader) Load(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	if path == StdinPath {
		return l.LoadReader("stdin", l.stdin)
	}
	format, err := Detect(path)
	if err != nil {
		return domain.Document{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > l.maxBytes {
		return domain.Document{}, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), l.maxBytes)
	}

	var content string
	switch format {
	case FormatText:
		var data []byte
		data, err = os.ReadFile(path)
		content = string(data)
	case FormatPDF:
		content, err = extractPDF(path)
	case FormatHTML:
		content, err = extractHTMLFile(path)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}
	return domain.Document{ID: hashString(path), Path: path, Format: string(format), Content: content}, nil
}

// LoadReader reads plain text from r, up to the loader's size limit.
func (l *Loader) LoadReader(name string, r io.Reader) (domain.Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > l.maxBytes {
		return domain.Document{}, fmt.Errorf("input too large (max %d bytes)", l.maxBytes)
	}
	return domain.Document{ID: hashString(name), Path: name, Format: string(FormatText), Content: string(data)}, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
