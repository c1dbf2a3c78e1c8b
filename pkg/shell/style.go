package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#009b50")
	danger = lipgloss.Color("#e5534b")
)

type styles struct {
	banner lipgloss.Style
	header lipgloss.Style
	error  lipgloss.Style
}

// newStyles picks the color profile of out so redirected output stays plain
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		banner: r.NewStyle().Bold(true).Foreground(accent),
		header: r.NewStyle().Bold(true).Underline(true),
		error:  r.NewStyle().Foreground(danger),
	}
}
