package geom

import "math"

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q, the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
// Positive when q is counter-clockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the euclidean length of p taken as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// VectorLength returns the length of v.
func VectorLength(v Point) float64 {
	return v.Length()
}

// AngleBetween returns the unsigned angle in radians between v and w,
// in [0, π]. If either vector has zero length the angle is 0.
func AngleBetween(v, w Point) float64 {
	lv, lw := v.Length(), w.Length()
	if lv == 0 || lw == 0 {
		return 0
	}
	cos := v.Dot(w) / (lv * lw)
	// rounding can push |cos| just past 1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Offset moves p along its position vector so that its distance from the
// origin grows by distance. The origin itself is returned unchanged.
func Offset(p Point, distance float64) Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Mul((l + distance) / l)
}

// TranslateToOrigin expresses point in a frame whose origin is origin.
// point == TranslateToOrigin(origin, point).Add(origin).
func TranslateToOrigin(origin, point Point) Point {
	return point.Sub(origin)
}
