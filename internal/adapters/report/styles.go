package report

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris  = lipgloss.Color("#8B5CF6")
	Slate = lipgloss.Color("#667085")
	White = lipgloss.Color("#FFFFFF")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
)

// Icons.
const (
	Dot    = "●"
	Circle = "○"
	Branch = "├─"
	Last   = "└─"
	Cross  = "✗"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(Iris).
			Foreground(White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(Red).
				Foreground(White)

	solutionStyle = lipgloss.NewStyle().
			Foreground(Iris).
			Bold(true)

	projectStyle = lipgloss.NewStyle().
			Foreground(Green)

	pathStyle = lipgloss.NewStyle().
			Foreground(Slate).
			Faint(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(Red)
)
