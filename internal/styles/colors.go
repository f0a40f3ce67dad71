package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Components
	Yellow  = "#FFD866" // Prop values
	Green   = "#A9DC76" // Text leaves
	Cyan    = "#78DCE8" // Prop names
	Blue    = "#AB9DF2" // HTML tags
	Magenta = "#FF6188" // Titles

	// UI colors
	Comment = "#727072" // Tree guides, help
)

// Common styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	ValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))

	// Banner above command output
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Magenta))

	// Render tree styles
	TagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))
	ComponentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Orange))
	PropNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	PropValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
	TextStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
)
