package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"smartsum/internal/domain"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

// FormatFromPath picks a format by file extension, falling back to def.
func FormatFromPath(path string, def Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt", ".text":
		return FormatText
	default:
		return def
	}
}

// Write encodes result to w. The text format is the summary alone.
func Write(w io.Writer, format Format, result domain.SummaryResult) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, result.Summary+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format: %q", format)
	}
}

// Save writes result to path, creating parent directories as needed.
func Save(path string, format Format, result domain.SummaryResult) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty output path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, format, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Copy places the summary on the system clipboard.
func Copy(result domain.SummaryResult) error {
	if result.Summary == "" {
		return fmt.Errorf("no summary to copy")
	}
	return clipboard.WriteAll(result.Summary)
}
