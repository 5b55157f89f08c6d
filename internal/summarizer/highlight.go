package summarizer

import "sort"

// Span is a half-open byte range [Start, End) of a text.
type Span struct {
	Start int
	End   int
}

// Highlight finds every case-insensitive occurrence of each keyword in text,
// including occurrences inside longer words, and returns the matched ranges
// sorted and merged. Keywords are expected to be lowercase ASCII, as
// produced by the tokenizer.
func Highlight(text string, keywords []string) []Span {
	var spans []Span
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		for i := 0; i+len(kw) <= len(text); {
			if equalFoldASCII(text[i:i+len(kw)], kw) {
				spans = append(spans, Span{i, i + len(kw)})
				i += len(kw)
				continue
			}
			i++
		}
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.Start <= last.End {
			if sp.End > last.End {
				last.End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// Segments splits text into alternating plain and highlighted parts
// following spans. fn is called for every part in order.
func Segments(text string, spans []Span, fn func(part string, highlighted bool)) {
	pos := 0
	for _, sp := range spans {
		if sp.Start > pos {
			fn(text[pos:sp.Start], false)
		}
		fn(text[sp.Start:sp.End], true)
		pos = sp.End
	}
	if pos < len(text) {
		fn(text[pos:], false)
	}
}

func equalFoldASCII(s, lower string) bool {
	for i := 0; i < len(lower); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}
