package summarizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"smartsum/internal/domain"
	"smartsum/internal/segmenter"
)

// Ranking is the outcome of ranking a segmented document.
type Ranking struct {
	Summary string
	// Selected holds the chosen sentences in document order.
	Selected []string
	Keywords []domain.KeywordCount
	Table    *FrequencyTable
}

// Rank scores sentences by the mean document frequency of their tokens,
// keeps the best max(MinSentences, len(sentences)/SentenceDivisor) of them
// and joins them back in document order.
func Rank(sentences, tokens []string, opts Options) (Ranking, error) {
	opts = opts.withDefaults()
	table := NewFrequencyTable(tokens)

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, 0, len(sentences))
	for i, sent := range sentences {
		toks := segmenter.Tokenize(sent)
		if len(toks) == 0 {
			continue
		}
		sum := 0
		for _, tok := range toks {
			sum += table.Count(tok)
		}
		scores = append(scores, scored{i, float64(sum) / float64(len(toks))})
	}
	if len(scores) == 0 {
		return Ranking{}, fmt.Errorf("no sentence has scorable terms: %w", domain.ErrInsufficientContent)
	}

	keep := max(opts.MinSentences, len(sentences)/opts.SentenceDivisor)
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if keep > len(scores) {
		keep = len(scores)
	}
	// Keep original order among selected
	selected := make([]int, keep)
	for i := 0; i < keep; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)
	out := make([]string, 0, keep)
	for _, idx := range selected {
		out = append(out, sentences[idx])
	}

	return Ranking{
		Summary:  strings.Join(out, ". ") + ".",
		Selected: out,
		Keywords: table.MostCommon(opts.MaxKeywords, nil),
		Table:    table,
	}, nil
}

// FrequencySummarizer ranks sentences by word frequency (stopwords filtered).
// It keeps no state between calls and is safe for concurrent use.
type FrequencySummarizer struct {
	opts      Options
	segmenter *segmenter.SentenceSegmenter
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(opts Options) *FrequencySummarizer {
	opts = opts.withDefaults()
	return &FrequencySummarizer{
		opts:      opts,
		segmenter: segmenter.NewSentenceSegmenter(opts.MinSentenceLen),
	}
}

// Options returns the effective options.
func (s *FrequencySummarizer) Options() Options { return s.opts }

// Summarize segments and ranks document and returns the summary with its
// keywords and compression statistics.
func (s *FrequencySummarizer) Summarize(document string) (domain.SummaryResult, error) {
	if !utf8.ValidString(document) {
		return domain.SummaryResult{}, domain.ErrMalformedInput
	}
	seg, err := s.segmenter.Segment(document)
	if err != nil {
		return domain.SummaryResult{}, err
	}
	ranking, err := Rank(seg.Sentences, seg.Tokens, s.opts)
	if err != nil {
		return domain.SummaryResult{}, err
	}

	keywords := make([]string, len(ranking.Keywords))
	for i, kw := range ranking.Keywords {
		keywords[i] = kw.Token
	}
	highlight := keywords
	if len(highlight) > s.opts.HighlightKeywords {
		highlight = highlight[:s.opts.HighlightKeywords]
	}
	return domain.SummaryResult{
		Summary:       ranking.Summary,
		Sentences:     ranking.Selected,
		Keywords:      keywords,
		Stats:         ComputeStats(document, ranking.Summary),
		Frequencies:   ranking.Keywords,
		ChartKeywords: ChartKeywords(ranking.Table, s.opts.ChartKeywords, s.opts.ChartMinLen),
		Highlight:     append([]string(nil), highlight...),
	}, nil
}

// ChartKeywords returns the n most frequent tokens longer than minLen.
func ChartKeywords(table *FrequencyTable, n, minLen int) []domain.KeywordCount {
	return table.MostCommon(n, func(tok string) bool { return len(tok) > minLen })
}
