package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	// Nutrient colors, matching the dashboard ring palette of the
	// original tracker: green calories, blue protein, amber carbs,
	// red fat.
	Calories string
	Protein  string
	Carbs    string
	Fat      string
}

var themes = []Theme{
	{
		Name:     "Fresh",
		Text:     "#E8E8E8",
		Muted:    "#9A9A9A",
		Faint:    "#5C5C5C",
		Accent:   "#10B981",
		Success:  "#10B981",
		Warning:  "#F59E0B",
		Danger:   "#EF4444",
		Calories: "#10B981",
		Protein:  "#3B82F6",
		Carbs:    "#F59E0B",
		Fat:      "#EF4444",
	},
	{
		Name:     "Midnight",
		Text:     "#CDD6F4",
		Muted:    "#7F849C",
		Faint:    "#45475A",
		Accent:   "#89B4FA",
		Success:  "#A6E3A1",
		Warning:  "#F9E2AF",
		Danger:   "#F38BA8",
		Calories: "#A6E3A1",
		Protein:  "#89B4FA",
		Carbs:    "#F9E2AF",
		Fat:      "#F38BA8",
	},
}

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style

	ErrorBanner lipgloss.Style
	Selected    lipgloss.Style
	Kcal        lipgloss.Style
	ChipProtein lipgloss.Style
	ChipCarbs   lipgloss.Style
	ChipFat     lipgloss.Style

	Overlay lipgloss.Style
	Help    lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Kcal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		ChipProtein: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Protein)),

		ChipCarbs: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Carbs)),

		ChipFat: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fat)),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}
