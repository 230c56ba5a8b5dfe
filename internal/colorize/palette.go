// Package colorize paints parser.BracketRange results by nesting
// depth for terminal output, playing the "decoration layer" spec.md
// keeps external to the core parser.
package colorize

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// paletteColors cycles by depth mod len(paletteColors), the same
// "rainbow bracket" convention most editor bracket-pair plugins use.
var paletteColors = []string{"9", "11", "10", "14", "13", "12"}

// Palette maps a nesting depth to the lipgloss style that paints it.
type Palette struct {
	styles []lipgloss.Style
}

// NewPalette builds a Palette. When enabled is false every depth
// renders in plain, unstyled text.
func NewPalette(enabled bool) *Palette {
	if !enabled {
		return &Palette{styles: []lipgloss.Style{lipgloss.NewStyle()}}
	}
	styles := make([]lipgloss.Style, len(paletteColors))
	for i, c := range paletteColors {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}
	return &Palette{styles: styles}
}

// Style returns the style for the given nesting depth.
func (p *Palette) Style(depth int) lipgloss.Style {
	return p.styles[depth%len(p.styles)]
}

// Paint renders s at the given depth.
func (p *Palette) Paint(depth int, s string) string {
	return p.Style(depth).Render(s)
}

// ColorEnabled decides whether painted output should be attempted,
// mirroring the "auto/always/never" convention: mode "always" forces
// it on, "never" forces it off, anything else defers to whether w is
// an interactive terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
