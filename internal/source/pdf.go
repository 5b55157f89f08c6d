package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"
)

// extractPDF concatenates the text of every page, one line per page.
func extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil || r == nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		if text := extractTextFromStream(data); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return strings.Join(pages, "\n"), nil
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// pageText collects shown strings. Whitespace runs become a single space,
// unprintable runes are dropped and no space is emitted at either end.
type pageText struct {
	sb  strings.Builder
	gap bool
}

func (p *pageText) breakWord() {
	p.gap = p.sb.Len() > 0
}

func (p *pageText) show(s string) {
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			p.breakWord()
		case unicode.IsPrint(r):
			if p.gap {
				p.sb.WriteByte(' ')
				p.gap = false
			}
			p.sb.WriteRune(r)
		}
	}
}

// extractTextFromStream pulls the shown strings out of a content stream.
func extractTextFromStream(data []byte) string {
	var page pageText
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0:
		// (text) Tj and [(text) -100 (more)] TJ
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				page.show(decodePDFString(m[1]))
			}
		// (text) ' moves to the next line first
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				page.breakWord()
				page.show(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")), bytes.Equal(line, []byte("T*")):
			page.breakWord()
		}
	}
	return page.sb.String()
}

// decodePDFString resolves escape sequences. Strings that are not UTF-8
// are read as Latin-1, which covers the printable range of PDFDocEncoding.
func decodePDFString(raw []byte) string {
	var out []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			out = append(out, raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '\\', '(', ')':
			out = append(out, raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				out = append(out, raw[i])
				continue
			}
			// Octal escape, up to three digits.
			val := int(raw[i] - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			out = append(out, byte(val))
		}
	}
	if utf8.Valid(out) {
		return string(out)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(out)
	if err != nil {
		return string(bytes.ToValidUTF8(out, nil))
	}
	return string(s)
}
