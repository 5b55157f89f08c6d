package summarizer

import "smartsum/internal/segmenter"

// Options tunes the ranking engine. The zero value of any field selects the
// default for that field.
type Options struct {
	// MinSentenceLen is the number of characters a sentence must exceed.
	MinSentenceLen int
	// MinSentences is the lower bound on the number of selected sentences.
	MinSentences int
	// SentenceDivisor scales the selection with document size: n/SentenceDivisor.
	SentenceDivisor int
	MaxKeywords     int
	// HighlightKeywords is how many of the top keywords are highlighted.
	HighlightKeywords int
	// ChartKeywords is how many tokens are returned for visualization.
	ChartKeywords int
	// ChartMinLen is the length a chart token must exceed. Zero selects the
	// default; a negative value charts tokens of any length.
	ChartMinLen int
}

// DefaultOptions returns the options the engine uses when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinSentenceLen:    segmenter.DefaultMinSentenceLen,
		MinSentences:      3,
		SentenceDivisor:   5,
		MaxKeywords:       10,
		HighlightKeywords: 5,
		ChartKeywords:     8,
		ChartMinLen:       3,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinSentenceLen <= 0 {
		o.MinSentenceLen = d.MinSentenceLen
	}
	if o.MinSentences <= 0 {
		o.MinSentences = d.MinSentences
	}
	if o.SentenceDivisor <= 0 {
		o.SentenceDivisor = d.SentenceDivisor
	}
	if o.MaxKeywords <= 0 {
		o.MaxKeywords = d.MaxKeywords
	}
	if o.HighlightKeywords <= 0 {
		o.HighlightKeywords = d.HighlightKeywords
	}
	if o.ChartKeywords <= 0 {
		o.ChartKeywords = d.ChartKeywords
	}
	if o.ChartMinLen == 0 {
		o.ChartMinLen = d.ChartMinLen
	}
	return o
}
