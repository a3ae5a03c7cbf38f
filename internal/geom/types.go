package geom

// Point is a position in the plane, or the displacement between two
// positions when produced by Sub.
type Point struct {
	X float64
	Y float64
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// BoundsOf returns the bounding box of pts. ok is false for an empty slice.
func BoundsOf(pts []Point) (bb BBox, ok bool) {
	for i, p := range pts {
		if i == 0 {
			bb = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			continue
		}
		bb = bb.Extend(p)
	}
	return bb, len(pts) > 0
}

// Extend grows the box to contain p.
func (b BBox) Extend(p Point) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }
