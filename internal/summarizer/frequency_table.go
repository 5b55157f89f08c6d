package summarizer

import (
	"sort"

	"smartsum/internal/domain"
)

// FrequencyTable counts token occurrences and remembers the order in which
// each token was first seen, which breaks ties in MostCommon.
type FrequencyTable struct {
	counts map[string]int
	order  []string
}

// NewFrequencyTable counts tokens.
func NewFrequencyTable(tokens []string) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int)}
	for _, tok := range tokens {
		if _, seen := ft.counts[tok]; !seen {
			ft.order = append(ft.order, tok)
		}
		ft.counts[tok]++
	}
	return ft
}

// Count returns the number of occurrences of token.
func (ft *FrequencyTable) Count(token string) int { return ft.counts[token] }

// Len returns the number of distinct tokens.
func (ft *FrequencyTable) Len() int { return len(ft.order) }

// MostCommon returns up to n entries by descending count; equal counts keep
// first-encountered order. n <= 0 returns every entry. A nil keep accepts
// all tokens.
func (ft *FrequencyTable) MostCommon(n int, keep func(token string) bool) []domain.KeywordCount {
	out := make([]domain.KeywordCount, 0, len(ft.order))
	for _, tok := range ft.order {
		if keep != nil && !keep(tok) {
			continue
		}
		out = append(out, domain.KeywordCount{Token: tok, Count: ft.counts[tok]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
