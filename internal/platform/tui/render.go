package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The palette entries are
// 256-color purples and pinks.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorLilac:    lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	core.ColorOrchid:   lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	core.ColorAmethyst: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorPurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	core.ColorGrape:    lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorFuchsia:  lipgloss.NewStyle().Foreground(lipgloss.Color("207")),
	core.ColorViolet:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		runColor := core.ColorDefault
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
