package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// render draws the canvas in colour. Runs of cells sharing a colour go
// through one style. The cell under the cursor, if any, gets a marker.
func (b *brailleBuf) render(bg *colorful.Color, markX, markY int) string {
	base := lipgloss.NewStyle()
	if bg != nil {
		base = base.Background(lipgloss.Color(bg.Hex()))
	}
	var sb strings.Builder
	var run []rune
	runHex := ""
	flush := func() {
		if len(run) == 0 {
			return
		}
		st := base
		if runHex != "" {
			st = st.Foreground(lipgloss.Color(runHex))
		}
		sb.WriteString(st.Render(string(run)))
		run = run[:0]
	}
	for y := 0; y < b.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.w; x++ {
			if x == markX && y == markY {
				flush()
				sb.WriteString(base.Foreground(accentFg).Render("+"))
				continue
			}
			r, hex := ' ', ""
			if mask := b.m[y][x]; mask != 0 {
				r = rune(0x2800 + int(mask))
				hex = b.fg[y][x].Clamped().Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run = append(run, r)
		}
		flush()
		runHex = ""
	}
	return sb.String()
}
