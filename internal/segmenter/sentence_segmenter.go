package segmenter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"smartsum/internal/domain"
)

// DefaultMinSentenceLen is the number of characters a trimmed sentence must
// exceed to be kept.
const DefaultMinSentenceLen = 20

// Segmentation is the output of a segmenter run: the kept sentences in
// document order and the document-wide filtered token stream.
type Segmentation struct {
	Sentences []string
	Tokens    []string
}

// SentenceSegmenter splits text into sentences on runs of terminal punctuation.
type SentenceSegmenter struct {
	minSentenceLen int
	splitter       *regexp.Regexp
}

// NewSentenceSegmenter returns a segmenter keeping sentences longer than
// minSentenceLen runes. Non-positive values select DefaultMinSentenceLen.
func NewSentenceSegmenter(minSentenceLen int) *SentenceSegmenter {
	if minSentenceLen <= 0 {
		minSentenceLen = DefaultMinSentenceLen
	}
	return &SentenceSegmenter{
		minSentenceLen: minSentenceLen,
		splitter:       regexp.MustCompile(`[.!?]+`),
	}
}

// Segment returns the sentences of document longer than the minimum length,
// in their original order, and the stop-word filtered tokens of the whole
// document.
func (s *SentenceSegmenter) Segment(document string) (Segmentation, error) {
	spans := s.splitter.Split(document, -1)
	var sentences []string
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if utf8.RuneCountInString(span) > s.minSentenceLen {
			sentences = append(sentences, span)
		}
	}
	if len(sentences) == 0 {
		return Segmentation{}, fmt.Errorf("no sentence longer than %d characters: %w", s.minSentenceLen, domain.ErrInsufficientContent)
	}
	return Segmentation{Sentences: sentences, Tokens: Tokenize(document)}, nil
}
