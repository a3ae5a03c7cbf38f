package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"

	"gazepaint/internal/config"
	"gazepaint/internal/gaze"
	"gazepaint/internal/geom"
	"gazepaint/internal/growth"
	"gazepaint/internal/trace"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	log    *slog.Logger

	// Tools
	cfg      *config.Config
	toolIdx  int
	colorIdx int
	engine   *growth.Engine
	tracker  *gaze.Tracker
	painting bool // toggled from the keyboard
	held     bool // left button down
	tick     time.Duration

	// Canvas, kept across frames
	canvas     *brailleBuf
	background *colorful.Color

	// Sidebar: tools, colours and trace files
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Replay
	pending   *trace.Trace // waiting for a sized canvas
	replay    []trace.Sample
	replayPos int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// lineage inspector
	showInspect bool
	tbl         table.Model
	stats       stats

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMic   geom.Point
}

// stats counts what the engine did since the last reset.
type stats struct {
	created  int
	absorbed int
	drawn    int
}

type Option func(*Model)

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// New builds the paint model around cfg, starting with the first tool
// and colour.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "gazepaint ready",
		log:         slog.New(slog.DiscardHandler),
		cfg:         cfg,
		tracker:     gaze.NewTracker(cfg.Engine.Keyhole),
		tick:        time.Duration(cfg.Engine.TickMillis) * time.Millisecond,
	}
	for _, o := range opts {
		o(&m)
	}
	if len(cfg.Tools) == 0 || len(cfg.Colors) == 0 {
		return Model{}, config.ErrEmpty
	}
	if m.tick <= 0 {
		m.tick = 40 * time.Millisecond
	}
	eng, err := growth.New(cfg.Tools[0], cfg.Colors[0],
		growth.WithSeed(cfg.Engine.Seed), growth.WithLogger(m.log))
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m.engine = eng
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Tools"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a WKT trace here (POINT, MULTIPOINT, LINESTRING). Press Enter to replay; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// inspector setup
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "key", Width: 14}, {Title: "value", Width: 26}}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	m.refreshItems()
	m.status = m.toolStatus()
	return m, nil
}

// NewWithPath queues a trace file for replay at launch.
func NewWithPath(cfg *config.Config, path string, opts ...Option) (Model, error) {
	m, err := New(cfg, opts...)
	if err != nil {
		return m, err
	}
	m.loadPath(path)
	return m, nil
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tickCmd(m.tick) }
