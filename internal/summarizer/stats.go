package summarizer

import (
	"strings"

	"smartsum/internal/domain"
)

// ComputeStats counts whitespace-separated words in the document and the
// summary. Ratio is the summary size as a percentage of the document, or 0
// for a document without words.
func ComputeStats(document, summary string) domain.Stats {
	orig := len(strings.Fields(document))
	sum := len(strings.Fields(summary))
	ratio := 0.0
	if orig > 0 {
		ratio = float64(sum) / float64(orig) * 100
	}
	return domain.Stats{OriginalWords: orig, SummaryWords: sum, Ratio: ratio}
}
