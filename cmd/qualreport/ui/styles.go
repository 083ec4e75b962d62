// Package ui provides the visual styling for the qualreport interactive CLI.
// Colors mirror the report palette (Wong colorblind-friendly set) so the
// terminal and the generated document feel like one tool.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#0077BB")
	PrimaryDark = lipgloss.Color("#004488")
	Success     = lipgloss.Color("#009988")
	Warning     = lipgloss.Color("#EE7733")
	Error       = lipgloss.Color("#CC3311")
	Neutral     = lipgloss.Color("#718096")
)

// Styles holds the lipgloss styles used by the interactive form and the
// command output.
type Styles struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Blurred   lipgloss.Style
	Toggle    lipgloss.Style
	ToggleOn  lipgloss.Style
	Button    lipgloss.Style
	ButtonHot lipgloss.Style
	Status    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Primary).
			Bold(true).
			Padding(0, 2),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2),
		Label:     lipgloss.NewStyle().Foreground(PrimaryDark).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(Primary),
		Blurred:   lipgloss.NewStyle().Foreground(Neutral),
		Toggle:    lipgloss.NewStyle().Foreground(Neutral),
		ToggleOn:  lipgloss.NewStyle().Foreground(Warning).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(Neutral).Padding(0, 3),
		ButtonHot: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(Success).Bold(true).Padding(0, 3),
		Status:    lipgloss.NewStyle().Foreground(Neutral).Italic(true),
		Success:   lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(Error).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(Neutral),
	}
}
