package report

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	hit    lipgloss.Style
	missed lipgloss.Style
	reason lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite),
		header: r.NewStyle().
			Bold(true),
		hit: r.NewStyle().
			Foreground(lipgloss.Color("42")), // Green
		missed: r.NewStyle().
			Foreground(lipgloss.Color("196")), // Red
		reason: r.NewStyle().
			Foreground(colorSlate),
	}
}
