package tui

import (
	"fmt"
	"strings"

	"smartsum/internal/domain"
)

// renderChart draws one horizontal bar per keyword, scaled to the largest
// count, with the count printed after the bar.
func renderChart(items []domain.KeywordCount, width int, th theme) string {
	if len(items) == 0 {
		return "Not enough keywords to visualize!"
	}
	labelWidth, maxCount := 0, 0
	for _, it := range items {
		labelWidth = max(labelWidth, len(it.Token))
		maxCount = max(maxCount, it.Count)
	}
	countWidth := len(fmt.Sprint(maxCount))
	barWidth := max(1, width-labelWidth-countWidth-2)

	var b strings.Builder
	b.WriteString("Top Keywords in Your Document\n\n")
	for i, it := range items {
		n := max(1, it.Count*barWidth/maxCount)
		fmt.Fprintf(&b, "%-*s %s %d", labelWidth, it.Token, th.bar.Render(strings.Repeat("█", n)), it.Count)
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
