// Package paint turns growth snapshots into draw primitives.
package paint

import (
	"image/color"

	"gazepaint/internal/geom"
)

// Primitive is one of Line, Circle, Polygon or Curve.
type Primitive interface {
	primitive()
}

// Line is a stroke between two points.
type Line struct {
	From, To geom.Point
	Width    float64
	Color    color.NRGBA
}

// Circle is a filled disc.
type Circle struct {
	Center geom.Point
	Radius float64
	Color  color.NRGBA
}

// Polygon is a filled polygon.
type Polygon struct {
	Points []geom.Point
	Color  color.NRGBA
}

// Curve is a smooth stroke starting at From, passing through Through and
// ending at To.
type Curve struct {
	From, Through, To geom.Point
	Width             float64
	Color             color.NRGBA
}

func (Line) primitive()    {}
func (Circle) primitive()  {}
func (Polygon) primitive() {}
func (Curve) primitive()   {}

// Canvas is a drawing surface primitives can be replayed onto.
type Canvas interface {
	Line(from, to geom.Point, width float64, c color.NRGBA)
	Circle(center geom.Point, radius float64, c color.NRGBA)
	Polygon(pts []geom.Point, c color.NRGBA)
	Curve(from, through, to geom.Point, width float64, c color.NRGBA)
}

// Draw replays prims onto c in order.
func Draw(c Canvas, prims []Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case Line:
			c.Line(p.From, p.To, p.Width, p.Color)
		case Circle:
			c.Circle(p.Center, p.Radius, p.Color)
		case Polygon:
			c.Polygon(p.Points, p.Color)
		case Curve:
			c.Curve(p.From, p.Through, p.To, p.Width, p.Color)
		}
	}
}
