package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarn    lipgloss.Color = "#f9e2af"
	colorMantle  lipgloss.Color = "#181825"
)

// Styles groups the lipgloss styles used to render fields and the form.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Box          lipgloss.Style
	BoxFocused   lipgloss.Style
	Pending      lipgloss.Style
	Hint         lipgloss.Style
	Status       lipgloss.Style
	StatusWarn   lipgloss.Style
	Key          lipgloss.Style
	KeyDesc      lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(colorMuted),
		LabelFocused: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		BoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		Pending:    lipgloss.NewStyle().Foreground(colorText).Italic(true),
		Hint:       lipgloss.NewStyle().Foreground(colorMuted),
		Status:     lipgloss.NewStyle().Foreground(colorSuccess),
		StatusWarn: lipgloss.NewStyle().Foreground(colorWarn),
		Key:        lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle),
		KeyDesc:    lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle),
		Footer:     lipgloss.NewStyle().Background(colorMantle),
	}
}
