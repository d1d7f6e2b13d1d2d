package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorBlue   = lipgloss.Color("#3B82F6")
	colorGreen  = lipgloss.Color("#22A06B")
	colorYellow = lipgloss.Color("#F59E0B")
	colorSlate  = lipgloss.Color("#667085")
)

type styles struct {
	name    lipgloss.Style
	version lipgloss.Style
	kind    lipgloss.Style
	fetch   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		name:    r.NewStyle().Foreground(colorBlue).Bold(true),
		version: r.NewStyle().Foreground(colorGreen),
		kind:    r.NewStyle().Foreground(colorSlate),
		fetch:   r.NewStyle().Foreground(colorYellow),
	}
}

// newRenderer creates a lipgloss renderer for w.
// NO_COLOR forces plain output; otherwise the terminal's capabilities decide.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
