package ui

import (
	"strings"
)

// renderAcquire draws the photo picker, the terminal stand-in for the
// camera view: browse an images directory or type a path directly.
func (m Model) renderAcquire() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Snap Food"))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtitle.Render("pick a photo of your meal"))
	b.WriteString("\n\n")

	if m.acquireErr != "" {
		b.WriteString(m.styles.Warning.Render(m.acquireErr))
		b.WriteString("\n\n")
	}

	if m.typingPath {
		b.WriteString(m.styles.Text.Render("Photo path:"))
		b.WriteString("\n")
		b.WriteString(m.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("enter confirm · esc back to browser"))
		return b.String()
	}

	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter select · o type a path · esc cancel"))
	return b.String()
}

// renderAnalyzing draws the in-flight estimation view.
func (m Model) renderAnalyzing() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString("  ")
	b.WriteString(m.spin.View())
	b.WriteString(m.styles.Title.Render(" Analyzing Food..."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render(
		"  Identifying ingredients and calculating nutritional values."))
	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render(
		"  This usually takes a few seconds."))
	return b.String()
}
