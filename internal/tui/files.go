package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"gazepaint/internal/trace"
)

type itemKind int

const (
	toolItem itemKind = iota
	colorItem
	traceItem
)

// sideItem is one entry of the sidebar: a tool, a colour or a trace file.
type sideItem struct {
	kind        itemKind
	index       int
	title, desc string
	path        string
}

func (s sideItem) Title() string       { return s.title }
func (s sideItem) Description() string { return s.desc }
func (s sideItem) FilterValue() string { return s.title }

func (m *Model) refreshItems() {
	var items []list.Item
	for i, t := range m.cfg.Tools {
		items = append(items, sideItem{kind: toolItem, index: i, title: "tool  " + t.Name, desc: t.Variant.String()})
	}
	for i, c := range m.cfg.Colors {
		items = append(items, sideItem{kind: colorItem, index: i, title: "color " + c.Name,
			desc: fmt.Sprintf("hue %g-%g", c.MinHue, c.MaxHue)})
	}
	items = append(items, m.traceFiles()...)
	m.items = items
	m.l.SetItems(items)
}

func (m *Model) traceFiles() []list.Item {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return nil
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(trace.Extensions, ext) {
			items = append(items, sideItem{kind: traceItem, title: "trace " + name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(sideItem).Title() < items[j].(sideItem).Title() })
	return items
}

func (m *Model) apply(it sideItem) {
	switch it.kind {
	case toolItem:
		m.selectTool(it.index)
	case colorItem:
		m.selectColor(it.index)
	case traceItem:
		m.loadPath(it.path)
	}
}

// loadPath reads a trace file and queues it for replay.
func (m *Model) loadPath(p string) {
	m.selPath = p
	tr, err := trace.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("trace load failed", "path", p, "err", err)
		return
	}
	m.startReplay(&tr)
	m.status = fmt.Sprintf("loaded: %s  samples=%d", filepath.Base(p), len(tr.Samples))
}
