package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gazepaint/internal/geom"
	"gazepaint/internal/trace"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by Update and View.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	lo.mapW = max(10, lo.contentW-sw)
	lo.mapH = lo.contentH
	lo.mapX = sw
	lo.mapY = headerHeight
	return lo
}

// cellToMicro maps a canvas cell to the micro-pixel at its centre.
func cellToMicro(cx, cy int) geom.Point {
	return geom.Pt(float64(cx*2)+1, float64(cy*4)+2)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.canvas = m.canvas.resized(lo.mapW, lo.mapH)
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		}
	case tickMsg:
		m.step()
		if m.showInspect {
			m.refreshInspector()
		}
		return m, tickCmd(m.tick)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				tr, err := trace.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				m.startReplay(&tr)
				m.status = fmt.Sprintf("replaying pasted trace  samples=%d", len(tr.Samples))
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ":
			m.painting = !m.painting
			if m.painting {
				m.status = "painting"
			} else {
				m.status = "paused"
			}
		case "t":
			m.selectTool((m.toolIdx + 1) % len(m.cfg.Tools))
		case "c":
			m.selectColor((m.colorIdx + 1) % len(m.cfg.Colors))
		case "b":
			m.randomBackground()
		case "r":
			m.reset()
			m.status = "canvas cleared"
		case "x":
			m.stopReplay()
			m.status = "replay stopped"
		case "tab":
			m.showSidebar = !m.showSidebar
			lo := m.layout()
			m.canvas = m.canvas.resized(lo.mapW, lo.mapH)
			if m.showSidebar {
				m.refreshItems()
				m.l.SetSize(sidebarWidth-2, lo.contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "paint mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showInspect = !m.showInspect
			if m.showInspect {
				m.refreshInspector()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(sideItem); ok {
					m.apply(it)
				}
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease {
			m.held = false
		}
		lo := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= lo.mapX && cx < lo.mapX+lo.mapW && cy >= lo.mapY && cy < lo.mapY+lo.mapH && m.canvas != nil {
			m.hovering = true
			m.hoverCellX = cx - lo.mapX
			m.hoverCellY = cy - lo.mapY
			m.hoverMic = cellToMicro(m.hoverCellX, m.hoverCellY)
			m.mouse(msg)
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// mouse turns pointer events over the canvas into gaze samples. Pressing
// the left button forces a new structure and paints until release. Plain
// motion paints while painting is toggled on.
func (m *Model) mouse(msg tea.MouseMsg) {
	if m.pasteMode || m.showInspect {
		return
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.held = true
		m.feed(m.hoverMic, true)
	case msg.Action == tea.MouseActionMotion && (m.painting || m.held):
		m.feed(m.hoverMic, false)
	}
}
