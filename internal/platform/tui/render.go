package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// ansi is the terminal color for each cell color.
var ansi = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Painter turns a cell grid into styled text for one terminal. SSH
// sessions get their own painter so colors follow the client's profile.
type Painter struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPainter builds styles with r, or with the default renderer when r
// is nil. Titles and focus markers are bold.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		styles: make(map[core.Color]lipgloss.Style, len(ansi)),
		plain:  r.NewStyle(),
	}
	for c, code := range ansi {
		st := r.NewStyle().Foreground(lipgloss.Color(code))
		if c == core.ColorTitle || c == core.ColorFocused {
			st = st.Bold(true)
		}
		p.styles[c] = st
	}
	return p
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// Paint renders s row by row, one style run per stretch of equal color.
func (p *Painter) Paint(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		run.Reset()
		var cur core.Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != cur {
				out.WriteString(p.style(cur).Render(run.String()))
				run.Reset()
			}
			cur = cell.Color
			run.WriteRune(cell.Rune)
		}
		out.WriteString(p.style(cur).Render(run.String()))
	}
	return out.String()
}

// RenderScreen paints s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Paint(s)
}

var defaultPainter = NewPainter(nil)
