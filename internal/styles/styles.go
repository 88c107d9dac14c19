package styles

import "github.com/charmbracelet/lipgloss"

// Gruvbox-ish palette
const (
	Red    = "#FB4934" // errors
	Orange = "#FE8019" // warnings
	Yellow = "#FABD2F" // highlights
	Green  = "#B8BB26" // success
	Aqua   = "#8EC07C" // info
	Gray   = "#928374" // dim text, help
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Gray))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Aqua))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
)
