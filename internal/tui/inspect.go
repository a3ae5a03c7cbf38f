package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"gazepaint/internal/geom"
)

// inspectRows describes the engine and the active lineage as key/value rows.
func (m Model) inspectRows() []table.Row {
	t := m.engine.Tool()
	rows := []table.Row{
		{"tool", t.Name},
		{"strategy", t.Variant.String()},
		{"color", m.engine.Color().Name},
		{"speed", fmt.Sprintf("%g", t.GrowthSpeed)},
		{"queued", fmt.Sprintf("%d", m.engine.Queue().Len())},
		{"created", fmt.Sprintf("%d", m.stats.created)},
		{"absorbed", fmt.Sprintf("%d", m.stats.absorbed)},
		{"drawn", fmt.Sprintf("%d", m.stats.drawn)},
	}
	if s := m.engine.Active(); s != nil {
		rows = append(rows,
			table.Row{"root", fmt.Sprintf("%.1f, %.1f", s.Root.X, s.Root.Y)},
			table.Row{"generation", fmt.Sprintf("%d / %d", s.Generation, t.MaxGeneration)},
			table.Row{"leaves", fmt.Sprintf("%d", s.NLeaves)},
			table.Row{"hull area", fmt.Sprintf("%.1f", geom.Area(s.Hull()))},
			table.Row{"shade", fmt.Sprintf("#%02x%02x%02x a=%d", s.Color.R, s.Color.G, s.Color.B, s.Color.A)},
		)
	} else {
		rows = append(rows, table.Row{"active", "none"})
	}
	if len(m.replay) > 0 {
		rows = append(rows, table.Row{"replay", fmt.Sprintf("%d / %d", m.replayPos, len(m.replay))})
	}
	return rows
}

func (m *Model) refreshInspector() {
	m.tbl.SetRows(m.inspectRows())
}
