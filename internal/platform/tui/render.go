package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chemdash/internal/core"
)

// cellStyles holds one foreground style per core.Color.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.NumColors)
	for i := range styles {
		st := lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[i] = st
	}
	return styles
}()

// hudStyle is applied on top of the cell color in the HUD row.
var hudStyle = lipgloss.NewStyle().Bold(true)

func styleFor(c core.Color, hud bool) lipgloss.Style {
	st := cellStyles[core.ColorDefault]
	if int(c) < len(cellStyles) {
		st = cellStyles[c]
	}
	if hud {
		st = st.Inherit(hudStyle)
	}
	return st
}

// RenderScreen converts the screen into styled lines. Runs of cells that
// share a color are emitted with a single style. Row 0 carries the HUD and
// is drawn bold.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	run := make([]rune, 0, w)

	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(color, y == 0).Render(string(run)))
		}
	}
	return sb.String()
}
