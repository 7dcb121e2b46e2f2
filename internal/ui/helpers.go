package ui

import (
	"fmt"
	"math"
	"strings"
)

// formatAmount renders a nutrient value without trailing decimal
// noise: whole numbers stay whole, everything else keeps one decimal.
func formatAmount(v float64) string {
	rounded := math.Round(v*10) / 10
	if rounded == math.Trunc(rounded) {
		return fmt.Sprintf("%.0f", rounded)
	}
	return fmt.Sprintf("%.1f", rounded)
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// visibleRange returns the [start, end) window of size limit that
// keeps selected in view.
func visibleRange(total, selected, limit int) (int, int) {
	if total <= limit {
		return 0, total
	}
	start := selected - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > total {
		start = total - limit
	}
	return start, start + limit
}

// wrap performs simple word wrapping at the given width.
func wrap(s string, width int) string {
	if width < 16 {
		width = 16
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	line := 0
	for i, word := range words {
		n := len([]rune(word))
		if i > 0 {
			if line+1+n > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(word)
		line += n
	}
	return b.String()
}
