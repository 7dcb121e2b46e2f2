package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snapcal/internal/nutrition"
)

const maxVisibleEntries = 8

// renderDashboard draws the resting view: totals against goals, the
// meal list newest first, and any pending error banner or delete
// confirmation.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("SnapCal"))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render("AI nutrition tracker · today"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTotals())
	b.WriteString("\n")

	if m.sess.ErrMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render(m.sess.ErrMsg))
		b.WriteString("\n")
		b.WriteString(m.styles.FaintText.Render("backspace to dismiss"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderEntries())
	b.WriteString("\n")

	if m.deleteArmed != "" {
		b.WriteString(m.styles.Overlay.Render(
			m.styles.Warning.Render("Delete this entry? This cannot be undone.") +
				"\n" + m.styles.MutedText.Render("y to delete · n to keep")))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("c snap meal · j/k select · d delete · T theme · ? help · q quit"))
	return b.String()
}

func (m Model) renderTotals() string {
	totals := m.store.Totals()

	lines := []string{
		m.nutrientLine("Calories", totals.Calories, m.goals.Calories, "kcal", m.theme.Calories),
		m.nutrientLine("Protein", totals.Protein, m.goals.Protein, "g", m.theme.Protein),
		m.nutrientLine("Carbs", totals.Carbs, m.goals.Carbs, "g", m.theme.Carbs),
		m.nutrientLine("Fat", totals.Fat, m.goals.Fat, "g", m.theme.Fat),
	}
	return strings.Join(lines, "\n") + "\n"
}

// nutrientLine renders one consumed-vs-goal row. The bar clamps at
// 100% but the numbers keep counting past the goal; going over is a
// valid, displayable state.
func (m Model) nutrientLine(label string, current, target float64, unit, color string) string {
	bar := m.bar
	bar.FullColor = color

	ratio := 0.0
	if target > 0 {
		ratio = current / target
	}
	if ratio > 1 {
		ratio = 1
	}

	remaining := nutrition.Remaining(current, target)
	var status string
	if remaining == 0 && target > 0 && current >= target {
		status = m.styles.Warning.Render("goal reached")
	} else {
		status = m.styles.MutedText.Render(fmt.Sprintf("%s %s left", formatAmount(remaining), unit))
	}

	return fmt.Sprintf("%-8s %s %s  %s",
		m.styles.Text.Render(label),
		bar.ViewAs(ratio),
		m.styles.Kcal.Render(fmt.Sprintf("%s/%s", formatAmount(current), formatAmount(target))),
		status)
}

func (m Model) renderEntries() string {
	entries := m.store.Entries()

	count := "no entries"
	if n := len(entries); n == 1 {
		count = "1 entry"
	} else if n > 1 {
		count = fmt.Sprintf("%d entries", n)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		m.styles.Text.Render("Recent Meals"),
		m.styles.FaintText.Render("  "+count))

	if len(entries) == 0 {
		return header + "\n\n" +
			m.styles.MutedText.Render("  No meals tracked yet.") + "\n" +
			m.styles.FaintText.Render("  Snap a photo of your food to get started!") + "\n"
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	start, end := visibleRange(len(entries), m.selected, maxVisibleEntries)
	for i := start; i < end; i++ {
		b.WriteString(m.renderEntryRow(entries[i], i == m.selected))
		b.WriteString("\n")
	}
	if end < len(entries) {
		b.WriteString(m.styles.FaintText.Render(fmt.Sprintf("  … %d more", len(entries)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEntryRow(entry nutrition.LogEntry, selected bool) string {
	cursor := "  "
	name := m.styles.Text.Render(truncate(entry.FoodName, 28))
	if selected {
		cursor = m.styles.Selected.Render("> ")
		name = m.styles.Selected.Render(truncate(entry.FoodName, 28))
	}

	photo := " "
	if entry.ImageData != "" {
		photo = m.styles.FaintText.Render("◉")
	}

	chips := fmt.Sprintf("%s %s %s",
		m.styles.ChipProtein.Render(fmt.Sprintf("%sp", formatAmount(entry.Protein))),
		m.styles.ChipCarbs.Render(fmt.Sprintf("%sc", formatAmount(entry.Carbs))),
		m.styles.ChipFat.Render(fmt.Sprintf("%sf", formatAmount(entry.Fat))))

	return fmt.Sprintf("%s%s %-34s %s  %s %s  %s",
		cursor,
		photo,
		name,
		m.styles.MutedText.Render(truncate(entry.PortionEstimate, 18)),
		m.styles.Kcal.Render(formatAmount(entry.Calories)),
		m.styles.FaintText.Render("kcal"),
		chips)
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"c / s", "Snap a meal (pick a photo)"},
		{"j / k", "Select entry"},
		{"d / x", "Delete selected entry"},
		{"backspace", "Dismiss error banner"},
		{"o", "Type a photo path (acquire view)"},
		{"enter", "Add reviewed meal to log"},
		{"esc", "Cancel / back to dashboard"},
		{"T", "Cycle theme"},
		{"q / Ctrl+C", "Quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("SnapCal keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.AccentText.Render(fmt.Sprintf("%-12s", row.key)),
			m.styles.MutedText.Render(row.desc)))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("press any key to close"))
	return m.styles.Overlay.Render(b.String())
}
