package domain

import (
	"context"
	"errors"
)

var (
	// ErrInsufficientContent is returned when a document has no sentence that
	// survives segmentation or none of the surviving sentences can be scored.
	ErrInsufficientContent = errors.New("not enough content to summarize")
	// ErrMalformedInput is returned when the input is not decodable text.
	ErrMalformedInput = errors.New("input is not valid UTF-8 text")
)

// Document represents a single body of text loaded into the system.
type Document struct {
	ID      string
	Path    string
	Format  string
	Content string
}

// KeywordCount is a token together with its document-wide frequency.
type KeywordCount struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// Stats holds the compression statistics of a summary.
type Stats struct {
	OriginalWords int     `json:"original_word_count" yaml:"original_word_count"`
	SummaryWords  int     `json:"summary_word_count" yaml:"summary_word_count"`
	Ratio         float64 `json:"compression_ratio" yaml:"compression_ratio"`
}

// SummaryResult is everything produced by one summarization run.
type SummaryResult struct {
	Summary   string   `json:"summary" yaml:"summary"`
	Sentences []string `json:"sentences" yaml:"sentences"`
	Keywords  []string `json:"keywords" yaml:"keywords"`
	Stats     Stats    `json:"stats" yaml:"stats"`
	// Frequencies carries the counts behind Keywords, in the same order.
	Frequencies []KeywordCount `json:"frequencies" yaml:"frequencies"`
	// ChartKeywords are the most frequent longer tokens, for visualization.
	ChartKeywords []KeywordCount `json:"chart_keywords" yaml:"chart_keywords"`
	// Highlight is the prefix of Keywords used for highlighting the summary.
	Highlight []string `json:"highlight" yaml:"highlight"`
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Summarize(document string) (SummaryResult, error)
}

// Source loads a document from a path.
type Source interface {
	Load(ctx context.Context, path string) (Document, error)
}

// SummaryService defines the operations exposed by the application core.
type SummaryService interface {
	Load(ctx context.Context, path string) (Document, error)
	Summarize(doc Document) (SummaryResult, error)
	Save(path string, result SummaryResult) error
	Copy(result SummaryResult) error
}
