package growth

import (
	"image/color"

	"gazepaint/internal/config"
	"gazepaint/internal/geom"
)

// Structure is one generation of a growing tree. It is never modified
// after it has been queued; growing produces a new Structure.
type Structure struct {
	Root       geom.Point
	Generation int
	// Leaves is the current frontier. PreviousGen[i] is the parent of
	// Leaves[i].
	Leaves      []geom.Point
	PreviousGen []geom.Point
	NLeaves     int

	Color       color.NRGBA
	BranchWidth float64
	HullWidth   float64
	LeafSize    float64
	Variant     config.Variant

	// Seed drives any randomness a renderer needs, so rendering the same
	// snapshot twice gives the same primitives.
	Seed uint64
}

// Hull returns the convex hull of the leaves.
func (s *Structure) Hull() []geom.Point {
	return geom.ConvexHull(s.Leaves)
}

// next builds the following generation from new leaves, keeping the
// lineage's root and visuals.
func (s *Structure) next(leaves []geom.Point) *Structure {
	n := *s
	n.Generation = s.Generation + 1
	n.Leaves = leaves
	n.PreviousGen = s.Leaves
	return &n
}
