package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" gazepaint ─ grow trees where you look ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showInspect:
		w := min(lo.mapW, 48)
		m.tbl.SetWidth(w - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 20))
		box := boxStyle.Width(w).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.ta.View())
	case m.canvas != nil:
		mx, my := -1, -1
		if m.hovering {
			mx, my = m.hoverCellX, m.hoverCellY
		}
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.canvas.render(m.background, mx, my))
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// pointer position and mode at bottom-right
	coords := m.renderMode()
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.0f y=%.0f", m.hoverMic.X, m.hoverMic.Y)) + coords
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderMode() string {
	mode := "paused"
	switch {
	case m.replayPos < len(m.replay) || m.pending != nil:
		mode = fmt.Sprintf("replay %d/%d", m.replayPos, len(m.replay))
	case m.painting || m.held:
		mode = "painting"
	}
	return dimStyle.Render("  " + mode + "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"space paint",
		"click new tree",
		"t tool",
		"c color",
		"b background",
		"r clear",
		"Tab sidebar",
		"Enter apply",
		"p paste",
		"x stop",
		"a inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
