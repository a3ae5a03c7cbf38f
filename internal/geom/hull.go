package geom

import "sort"

// ConvexHull returns the convex hull of points in counter-clockwise order
// (mathematical orientation, y up), starting at the lowest point.
//
// The result has fewer than three points when the input does not span an
// area; callers that need a polygon must check the length.
func ConvexHull(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	pivot := lowestPoint(points)
	ref := Point{X: 1}

	type graham struct {
		angle float64
		dist  float64
		p     Point
	}
	rest := make([]graham, 0, len(points))
	for _, p := range points {
		if p == pivot {
			continue
		}
		v := p.Sub(pivot)
		rest = append(rest, graham{angle: AngleBetween(ref, v), dist: v.Length(), p: p})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		if rest[i].angle != rest[j].angle {
			return rest[i].angle < rest[j].angle
		}
		return rest[i].dist < rest[j].dist
	})

	hull := make([]Point, 0, len(rest)+1)
	hull = append(hull, pivot)
	for i := 0; i < len(rest) && i < 2; i++ {
		hull = append(hull, rest[i].p)
	}
	for i := 2; i < len(rest); i++ {
		c := rest[i].p
		for len(hull) > 2 {
			mid, top := hull[len(hull)-2], hull[len(hull)-1]
			if top.Sub(mid).Cross(c.Sub(top)) > 0 {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, c)
	}
	return hull
}

// lowestPoint returns the point with the smallest y, ties broken by the
// smallest x.
func lowestPoint(points []Point) Point {
	min := points[0]
	for _, p := range points[1:] {
		if p.Y < min.Y || p.Y == min.Y && p.X < min.X {
			min = p
		}
	}
	return min
}

// Area returns the signed area of a simple polygon, positive when the
// vertices run counter-clockwise.
func Area(poly []Point) float64 {
	var s float64
	for i := range poly {
		s += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return s / 2
}
