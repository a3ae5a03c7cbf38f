// Package growth grows tree structures from input points and queues one
// immutable snapshot per generation for drawing.
package growth

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"gazepaint/internal/config"
	"gazepaint/internal/geom"
)

// GrowthThreshold is the accumulated growth speed that triggers one
// generation.
const GrowthThreshold = 1.0

// tolerance for accumulated float speeds such as ten steps of 0.1
const thresholdSlack = 1e-9

// Engine owns the single structure currently growing.
//
// Engine is not safe for concurrent use. Snapshots returned by the queue
// are immutable and may be handed to other goroutines.
type Engine struct {
	tool  config.GrowthTool
	color config.ColorTool

	active      *Structure
	accumulator float64
	queue       Queue

	rng *rand.Rand
	log *slog.Logger
}

type Option func(*Engine)

// WithRand sets the random source used for growth and colour sampling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an engine using tool and color. Invalid tools are rejected.
func New(tool config.GrowthTool, color config.ColorTool, opts ...Option) (*Engine, error) {
	e := &Engine{
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if err := e.ChangeTool(tool, color); err != nil {
		return nil, err
	}
	return e, nil
}

// Add handles an input point. Unless forceNew is set, a point inside the
// active structure's hull is absorbed; otherwise a new structure rooted at
// p starts growing. It reports whether a structure was created.
func (e *Engine) Add(p geom.Point, forceNew bool) bool {
	if !forceNew && PointInsideHull(p, e.active, e.tool.HullDilation) {
		e.log.Debug("point absorbed", "x", p.X, "y", p.Y, "generation", e.active.Generation)
		return false
	}
	s := e.seedStructure(p)
	e.queue.Push(s)
	e.active = s
	e.log.Debug("structure created", "x", p.X, "y", p.Y, "leaves", s.NLeaves, "variant", s.Variant)
	return true
}

// seedStructure places the initial leaves evenly on a circle of radius
// BranchLength around root.
func (e *Engine) seedStructure(root geom.Point) *Structure {
	n := e.tool.Leaves
	leaves := make([]geom.Point, n)
	parents := make([]geom.Point, n)
	for i := range leaves {
		v := 2 * math.Pi * float64(i) / float64(n)
		leaves[i] = root.Add(geom.Pt(e.tool.BranchLength*math.Cos(v), e.tool.BranchLength*math.Sin(v)))
		parents[i] = root
	}
	return &Structure{
		Root:        root,
		Leaves:      leaves,
		PreviousGen: parents,
		NLeaves:     n,
		Color:       e.color.Shade(e.rng, uint8(e.tool.Opacity)),
		BranchWidth: e.tool.BranchWidth,
		HullWidth:   e.tool.HullWidth,
		LeafSize:    e.tool.LeafSize,
		Variant:     e.tool.Variant,
		Seed:        e.rng.Uint64(),
	}
}

// Grow advances the growth clock by one tick. Once enough speed has
// accumulated, the active structure grows one generation unless it has
// passed MaxGeneration. It reports whether a snapshot was queued.
func (e *Engine) Grow() bool {
	if e.active == nil {
		return false
	}
	e.accumulator += e.tool.GrowthSpeed
	if e.accumulator+thresholdSlack < GrowthThreshold {
		return false
	}
	e.accumulator = 0
	if e.active.Generation > e.tool.MaxGeneration {
		return false
	}

	cur := e.active
	leaves := make([]geom.Point, len(cur.Leaves))
	for i, l := range cur.Leaves {
		leaves[i] = NextLeaf(e.rng, l, cur.Root, e.tool.BranchLength)
	}
	next := cur.next(leaves)
	e.queue.Push(next)
	e.active = next
	if next.Generation > e.tool.MaxGeneration {
		e.log.Debug("growth finished", "x", next.Root.X, "y", next.Root.Y, "generation", next.Generation)
	}
	return true
}

// ChangeTool switches to a new tool and colour. The active structure is
// dropped; snapshots already queued stay queued and are drawn with the
// variant they were created with.
func (e *Engine) ChangeTool(tool config.GrowthTool, color config.ColorTool) error {
	if err := tool.Validate(); err != nil {
		return err
	}
	if err := color.Validate(); err != nil {
		return err
	}
	e.tool = tool
	e.color = color
	e.active = nil
	e.accumulator = 0
	e.log.Info("tool changed", "tool", tool.Name, "color", color.Name, "variant", tool.Variant)
	return nil
}

// ChangeColor switches the colour tool for structures created from now
// on. The active structure keeps growing in its own colour.
func (e *Engine) ChangeColor(color config.ColorTool) error {
	if err := color.Validate(); err != nil {
		return err
	}
	e.color = color
	e.log.Info("color changed", "color", color.Name)
	return nil
}

// Reset drops the active structure and everything still queued.
func (e *Engine) Reset() {
	e.active = nil
	e.accumulator = 0
	e.queue.Clear()
	e.log.Info("engine reset")
}

// Active returns the structure currently growing, or nil.
func (e *Engine) Active() *Structure { return e.active }

// Queue returns the render queue the engine feeds.
func (e *Engine) Queue() *Queue { return &e.queue }

func (e *Engine) Tool() config.GrowthTool { return e.tool }
func (e *Engine) Color() config.ColorTool { return e.color }
func (e *Engine) Rand() *rand.Rand        { return e.rng }
