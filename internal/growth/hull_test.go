package growth

import (
	"testing"

	"gazepaint/internal/geom"
)

func diamond(root geom.Point, r float64) *Structure {
	leaves := []geom.Point{
		root.Add(geom.Pt(r, 0)),
		root.Add(geom.Pt(0, r)),
		root.Add(geom.Pt(-r, 0)),
		root.Add(geom.Pt(0, -r)),
	}
	return &Structure{Root: root, Leaves: leaves, PreviousGen: []geom.Point{root, root, root, root}, NLeaves: 4}
}

func TestPointInsideHull(t *testing.T) {
	root := geom.Pt(500, 300)
	s := diamond(root, 100)
	tests := []struct {
		name     string
		p        geom.Point
		dilation float64
		want     bool
	}{
		{"root", root, 0, true},
		{"near root", root.Add(geom.Pt(40, 40)), 0, true},
		{"beyond edge", root.Add(geom.Pt(60, 60)), 0, false},
		{"far away", geom.Pt(0, 0), 0, false},
		{"dilated hull", root.Add(geom.Pt(60, 60)), 30, true},
		{"through a vertex", root.Add(geom.Pt(150, 0)), 0, false},
		{"shrunk hull", root.Add(geom.Pt(40, 40)), -30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInsideHull(tt.p, s, tt.dilation); got != tt.want {
				t.Errorf("PointInsideHull(%v, dilation %v) = %v, want %v", tt.p, tt.dilation, got, tt.want)
			}
		})
	}
}

func TestPointInsideHullDegenerate(t *testing.T) {
	root := geom.Pt(1, 1)
	if PointInsideHull(root, nil, 0) {
		t.Error("nil structure contains a point")
	}
	two := &Structure{
		Root:        root,
		Leaves:      []geom.Point{geom.Pt(2, 1), geom.Pt(0, 1)},
		PreviousGen: []geom.Point{root, root},
		NLeaves:     2,
	}
	if PointInsideHull(root, two, 0) {
		t.Error("structure with 2 leaves contains its root")
	}
	collinear := &Structure{
		Root:        root,
		Leaves:      []geom.Point{geom.Pt(2, 1), geom.Pt(0, 1), geom.Pt(5, 1)},
		PreviousGen: []geom.Point{root, root, root},
		NLeaves:     3,
	}
	if PointInsideHull(root, collinear, 0) {
		t.Error("flat hull contains a point")
	}
}
