package summarizer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsum/internal/domain"
	"smartsum/internal/segmenter"
)

var sixSentences = []string{
	"Alpha appears in this opening sentence",
	"Beta shows up within the second line",
	"Alpha beta gamma alpha beta gamma together",
	"Gamma closes out the fourth remark",
	"Unrelated filler words make this longer",
	"Another plain statement without keywords",
}

func sixSentenceDoc() string {
	return strings.Join(sixSentences, ". ") + "."
}

func TestSummarizeSelectsDenseSentenceInDocumentOrder(t *testing.T) {
	res, err := NewFrequencySummarizer(Options{}).Summarize(sixSentenceDoc())
	require.NoError(t, err)

	assert.Equal(t, []string{sixSentences[0], sixSentences[2], sixSentences[3]}, res.Sentences)
	assert.Equal(t, "Alpha appears in this opening sentence. Alpha beta gamma alpha beta gamma together. Gamma closes out the fourth remark.", res.Summary)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "this", "appears", "opening", "sentence", "shows", "up", "within"}, res.Keywords)
	assert.Equal(t, []string{"alpha", "beta", "gamma", "this", "appears"}, res.Highlight)
	assert.Equal(t, domain.KeywordCount{Token: "alpha", Count: 3}, res.Frequencies[0])
	assert.Equal(t, domain.KeywordCount{Token: "this", Count: 2}, res.Frequencies[3])
}

func TestSummarizeStats(t *testing.T) {
	res, err := NewFrequencySummarizer(Options{}).Summarize(sixSentenceDoc())
	require.NoError(t, err)
	assert.Equal(t, 37, res.Stats.OriginalWords)
	assert.Equal(t, 19, res.Stats.SummaryWords)
	assert.InDelta(t, 19.0/37.0*100, res.Stats.Ratio, 1e-9)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	s := NewFrequencySummarizer(Options{})
	first, err := s.Summarize(sixSentenceDoc())
	require.NoError(t, err)
	second, err := s.Summarize(sixSentenceDoc())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func generatedDoc(n int) (string, []string) {
	topics := []string{"storage", "network", "compiler", "scheduler", "parser"}
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = fmt.Sprintf("Paragraph %s discusses the %s subsystem in depth", strings.Repeat("x", i+1), topics[i%len(topics)])
	}
	return strings.Join(sentences, ". ") + ".", sentences
}

func TestSummarizeSelectionSize(t *testing.T) {
	tests := []struct {
		sentences int
		want      int
	}{
		{3, 3},
		{6, 3},
		{15, 3},
		{16, 3},
		{20, 4},
		{33, 6},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.sentences), func(t *testing.T) {
			doc, _ := generatedDoc(tt.sentences)
			res, err := NewFrequencySummarizer(Options{}).Summarize(doc)
			require.NoError(t, err)
			assert.Len(t, res.Sentences, tt.want)
		})
	}
}

func TestSummarizePreservesDocumentOrder(t *testing.T) {
	doc, sentences := generatedDoc(40)
	res, err := NewFrequencySummarizer(Options{}).Summarize(doc)
	require.NoError(t, err)

	last := -1
	for _, sel := range res.Sentences {
		idx := -1
		for i, s := range sentences {
			if s == sel {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0, sel)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestSummarizeTiesKeepFirstSentences(t *testing.T) {
	doc := "Apples grow quickly during summer. Bridges span rivers across valleys. Clocks measure passing hours precisely. Dolphins swim through warm oceans."
	res, err := NewFrequencySummarizer(Options{}).Summarize(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Apples grow quickly during summer",
		"Bridges span rivers across valleys",
		"Clocks measure passing hours precisely",
	}, res.Sentences)
}

func TestSummarizeDuplicateSentencesAreDistinct(t *testing.T) {
	doc := "The same sentence appears twice here. The same sentence appears twice here. A different closing sentence follows."
	res, err := NewFrequencySummarizer(Options{}).Summarize(doc)
	require.NoError(t, err)
	assert.Equal(t, "The same sentence appears twice here. The same sentence appears twice here. A different closing sentence follows.", res.Summary)
}

func TestSummarizeStopWordsNeverKeywords(t *testing.T) {
	doc := strings.Repeat("The cat and the dog sat on the mat with a hat. ", 5)
	res, err := NewFrequencySummarizer(Options{}).Summarize(doc)
	require.NoError(t, err)
	for _, kw := range res.Keywords {
		assert.False(t, segmenter.IsStopWord(kw), kw)
	}
	assert.LessOrEqual(t, len(res.Keywords), 10)
}

func TestSummarizeErrors(t *testing.T) {
	s := NewFrequencySummarizer(Options{})

	_, err := s.Summarize("Too short.")
	assert.ErrorIs(t, err, domain.ErrInsufficientContent)

	_, err = s.Summarize("12345 67890 12345 67890. The and of the and of the and.")
	assert.ErrorIs(t, err, domain.ErrInsufficientContent)

	_, err = s.Summarize("Valid start \xff\xfe then invalid bytes in here.")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestRankStopWordsContributeNothing(t *testing.T) {
	sentences := []string{"gopher gopher the the the the", "gopher gopher"}
	tokens := segmenter.Tokenize(strings.Join(sentences, " "))
	r, err := Rank(sentences, tokens, Options{MinSentences: 2})
	require.NoError(t, err)
	// Both sentences score 4 because stop words are not counted.
	assert.Equal(t, []string{"gopher gopher the the the the", "gopher gopher"}, r.Selected)
	assert.Equal(t, []domain.KeywordCount{{Token: "gopher", Count: 4}}, r.Keywords)
}

func TestRankSkipsUnscorableSentences(t *testing.T) {
	sentences := []string{"1234567890 1234567890 12", "real words live here"}
	r, err := Rank(sentences, segmenter.Tokenize(sentences[1]), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"real words live here"}, r.Selected)
	assert.Equal(t, "real words live here.", r.Summary)
}

func TestChartKeywords(t *testing.T) {
	table := NewFrequencyTable([]string{"go", "gopher", "go", "chan", "gopher", "select", "go", "gopher", "map"})
	got := ChartKeywords(table, 8, 3)
	assert.Equal(t, []domain.KeywordCount{
		{Token: "gopher", Count: 3},
		{Token: "chan", Count: 1},
		{Token: "select", Count: 1},
	}, got)
}

func TestSummarizeNegativeChartMinLenChartsShortTokens(t *testing.T) {
	res, err := NewFrequencySummarizer(Options{ChartKeywords: 10, ChartMinLen: -1}).Summarize(sixSentenceDoc())
	require.NoError(t, err)
	var chart []string
	for _, kc := range res.ChartKeywords {
		chart = append(chart, kc.Token)
	}
	assert.Equal(t, res.Keywords, chart)
	assert.Contains(t, chart, "up")

	res, err = NewFrequencySummarizer(Options{ChartKeywords: 10}).Summarize(sixSentenceDoc())
	require.NoError(t, err)
	for _, kc := range res.ChartKeywords {
		assert.Greater(t, len(kc.Token), 3)
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, domain.Stats{}, ComputeStats("", ""))
	assert.Equal(t, domain.Stats{SummaryWords: 2}, ComputeStats(" \n\t ", "words here"))

	st := ComputeStats("one two three four", "one two")
	assert.Equal(t, 4, st.OriginalWords)
	assert.Equal(t, 2, st.SummaryWords)
	assert.InDelta(t, 50.0, st.Ratio, 1e-9)
}
