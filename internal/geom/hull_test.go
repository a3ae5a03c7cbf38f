package geom

import (
	"math/rand/v2"
	"testing"
)

func TestConvexHullSquareWithInterior(t *testing.T) {
	pts := []Point{
		Pt(5, 5), Pt(10, 10), Pt(0, 10), Pt(2, 3), Pt(10, 0), Pt(0, 0), Pt(7, 8),
	}
	got := ConvexHull(pts)
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if len(got) != len(want) {
		t.Fatalf("ConvexHull = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ConvexHull = %v, want %v", got, want)
		}
	}
}

func TestArea(t *testing.T) {
	sq := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	if got := Area(sq); got != 16 {
		t.Errorf("Area(ccw square) = %v, want 16", got)
	}
	if got := Area([]Point{Pt(0, 4), Pt(4, 4), Pt(4, 0), Pt(0, 0)}); got != -16 {
		t.Errorf("Area(cw square) = %v, want -16", got)
	}
	if got := Area([]Point{Pt(0, 0), Pt(1, 0), Pt(5, 0)}); got != 0 {
		t.Errorf("Area(collinear) = %v, want 0", got)
	}
}

func TestConvexHullPivotTieBreaksOnX(t *testing.T) {
	got := ConvexHull([]Point{Pt(5, 0), Pt(3, 4), Pt(1, 0)})
	if len(got) != 3 || got[0] != Pt(1, 0) {
		t.Fatalf("ConvexHull = %v, want pivot (1,0) first", got)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{Pt(1, 1)}},
		{"duplicates", []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}},
		{"two", []Point{Pt(0, 0), Pt(3, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvexHull(tt.pts); len(got) >= 3 {
				t.Errorf("ConvexHull(%v) = %v, want fewer than 3 points", tt.pts, got)
			}
		})
	}
}

func TestConvexHullContainsAllPoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for iter := 0; iter < 300; iter++ {
		n := 3 + rng.IntN(40)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Pt(float64(rng.IntN(200)-100), float64(rng.IntN(200)-100))
		}
		hull := ConvexHull(pts)
		if len(hull) < 3 {
			continue
		}
		in := make(map[Point]bool, n)
		for _, p := range pts {
			in[p] = true
		}
		for _, h := range hull {
			if !in[h] {
				t.Fatalf("hull point %v not in input", h)
			}
		}
		for i := range hull {
			a, b := hull[i], hull[(i+1)%len(hull)]
			for _, p := range pts {
				if b.Sub(a).Cross(p.Sub(a)) < -1e-9 {
					t.Fatalf("point %v outside hull edge %v-%v (hull %v)", p, a, b, hull)
				}
			}
		}
		if Area(hull) <= 0 {
			t.Fatalf("hull %v is not counter-clockwise", hull)
		}
	}
}
