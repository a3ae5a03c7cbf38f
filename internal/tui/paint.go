package tui

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"gazepaint/internal/config"
	"gazepaint/internal/geom"
	"gazepaint/internal/paint"
	"gazepaint/internal/trace"
)

// replayMargin keeps replayed traces off the canvas border, in micro-pixels.
const replayMargin = 4

// feed passes one gaze sample through the keyhole to the engine. A forced
// sample always reaches the engine.
func (m *Model) feed(p geom.Point, force bool) {
	moved := m.tracker.Track(p)
	if !moved && !force {
		return
	}
	if m.engine.Add(p, force) {
		m.stats.created++
	} else {
		m.stats.absorbed++
	}
}

// step advances the paint clock by one tick: one replay sample, one growth
// step, then everything queued goes onto the canvas.
func (m *Model) step() {
	if m.canvas == nil {
		return
	}
	if m.pending != nil {
		m.fitReplay()
	}
	replaying := m.replayPos < len(m.replay)
	if replaying {
		s := m.replay[m.replayPos]
		m.replayPos++
		m.feed(s.Point, s.Force)
		if m.replayPos == len(m.replay) {
			m.status = fmt.Sprintf("replay done  samples=%d", len(m.replay))
		}
	}
	if m.painting || m.held || replaying {
		m.engine.Grow()
	}
	m.drain()
}

// drain composites every queued snapshot onto the canvas.
func (m *Model) drain() int {
	batch := m.engine.Queue().Drain()
	for _, s := range batch {
		paint.Draw(m.canvas, paint.Render(s))
	}
	m.stats.drawn += len(batch)
	return len(batch)
}

func (m *Model) startReplay(tr *trace.Trace) {
	m.pending = tr
	m.replay, m.replayPos = nil, 0
	m.tracker.Reset()
}

// fitReplay scales the pending trace onto the current canvas.
func (m *Model) fitReplay() {
	w, h := m.canvas.microSize()
	fit := m.pending.Fit(float64(w), float64(h), replayMargin)
	m.replay = make([]trace.Sample, len(m.pending.Samples))
	for i, s := range m.pending.Samples {
		m.replay[i] = trace.Sample{Point: fit(s.Point), Force: s.Force}
	}
	m.pending = nil
	m.replayPos = 0
}

func (m *Model) stopReplay() {
	m.pending = nil
	m.replay, m.replayPos = nil, 0
}

func (m *Model) selectTool(i int) {
	if i < 0 || i >= len(m.cfg.Tools) {
		return
	}
	if err := m.engine.ChangeTool(m.cfg.Tools[i], m.cfg.Colors[m.colorIdx]); err != nil {
		m.status = "tool error: " + err.Error()
		return
	}
	m.toolIdx = i
	m.tracker.Reset()
	m.status = m.toolStatus()
}

func (m *Model) selectColor(i int) {
	if i < 0 || i >= len(m.cfg.Colors) {
		return
	}
	if err := m.engine.ChangeColor(m.cfg.Colors[i]); err != nil {
		m.status = "color error: " + err.Error()
		return
	}
	m.colorIdx = i
	m.status = m.toolStatus()
}

func (m Model) toolStatus() string {
	t := m.engine.Tool()
	return fmt.Sprintf("tool: %s (%s)  color: %s", t.Name, t.Variant, m.engine.Color().Name)
}

// reset wipes the canvas and the engine, and stops any replay.
func (m *Model) reset() {
	m.engine.Reset()
	m.tracker.Reset()
	m.stopReplay()
	m.stats = stats{}
	if m.canvas != nil {
		m.canvas.clear()
	}
}

// randomBackground picks a random shade as background and starts over.
func (m *Model) randomBackground() {
	c := config.AnyColor.Shade(m.engine.Rand(), 255)
	bg, _ := colorful.MakeColor(c)
	m.background = &bg
	m.reset()
	m.status = "background " + bg.Hex()
}
