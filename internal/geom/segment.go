package geom

// SegmentsIntersect reports whether segment ab crosses segment cd.
//
// Degenerate input never intersects: a zero-length segment, or segments
// sharing an endpoint, return false. The crossing test is half-open on the
// line through ab (one endpoint of cd strictly below it, the other on or
// above it), so a segment passing exactly through a shared vertex of two
// consecutive edges is counted once.
func SegmentsIntersect(a, b, c, d Point) bool {
	if a == b || c == d {
		return false
	}
	if a == c || b == c || a == d || b == d {
		return false
	}

	b = TranslateToOrigin(a, b)
	c = TranslateToOrigin(a, c)
	d = TranslateToOrigin(a, d)

	distAB := b.Length()

	// rotate so that b lies on the positive x axis
	cos := b.X / distAB
	sin := b.Y / distAB
	c = Point{X: c.X*cos + c.Y*sin, Y: c.Y*cos - c.X*sin}
	d = Point{X: d.X*cos + d.Y*sin, Y: d.Y*cos - d.X*sin}

	if c.Y < 0 && d.Y < 0 || c.Y >= 0 && d.Y >= 0 {
		return false
	}

	// position along ab where cd crosses the x axis
	pos := d.X + (c.X-d.X)*d.Y/(d.Y-c.Y)
	return pos >= 0 && pos <= distAB
}
