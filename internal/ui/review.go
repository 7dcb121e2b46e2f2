package ui

import (
	"fmt"
	"strings"
)

// renderReview draws the returned estimate and asks the user to
// confirm it into the log or discard it. A zeroed estimate (non-food
// photo) renders the same way; the description explains what the
// model saw and the user decides.
func (m Model) renderReview() string {
	candidate := m.sess.Candidate
	if candidate == nil {
		// Guarded by the state machine; kept for robustness.
		return m.renderDashboard()
	}

	var b strings.Builder

	b.WriteString(m.styles.AccentText.Render("ANALYSIS COMPLETE"))
	b.WriteString("\n\n")

	name := candidate.FoodName
	if name == "" {
		name = "Unrecognized item"
	}
	b.WriteString(m.styles.Title.Render(name))
	if candidate.PortionEstimate != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(candidate.PortionEstimate))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s    %s    %s    %s\n",
		m.styles.Kcal.Render(formatAmount(candidate.Calories)),
		m.styles.FaintText.Render("kcal"),
		m.styles.ChipProtein.Render(fmt.Sprintf("%sg protein", formatAmount(candidate.Protein))),
		m.styles.ChipCarbs.Render(fmt.Sprintf("%sg carbs", formatAmount(candidate.Carbs))),
		m.styles.ChipFat.Render(fmt.Sprintf("%sg fat", formatAmount(candidate.Fat)))))
	b.WriteString("\n")

	if candidate.Description != "" {
		b.WriteString(m.styles.MutedText.Render(wrap(candidate.Description, m.width-4)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Success.Render("enter") + m.styles.MutedText.Render(" add to log    "))
	b.WriteString(m.styles.Danger.Render("d") + m.styles.MutedText.Render(" discard"))
	return b.String()
}
