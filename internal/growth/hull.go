package growth

import (
	"gazepaint/internal/config"
	"gazepaint/internal/geom"
)

// PointInsideHull reports whether p lies inside the convex hull of s's
// leaves, each pushed dilation further away from the root.
//
// The test counts crossings between the segment root→p and the hull
// edges, and calls p inside when there are none. That is only a valid
// point-in-polygon test because the root is inside its own hull, which
// holds by construction: leaves start on a circle around the root and
// only ever grow outward. Do not reuse it for arbitrary polygons.
func PointInsideHull(p geom.Point, s *Structure, dilation float64) bool {
	if s == nil || s.NLeaves < config.MinLeaves || len(s.Leaves) < config.MinLeaves {
		return false
	}
	pts := make([]geom.Point, len(s.Leaves))
	for i, l := range s.Leaves {
		pts[i] = geom.Offset(geom.TranslateToOrigin(s.Root, l), dilation)
	}
	hull := geom.ConvexHull(pts)
	if len(hull) < 3 || geom.Area(hull) <= 0 {
		return false
	}

	var origin geom.Point
	eval := geom.TranslateToOrigin(s.Root, p)
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		if geom.SegmentsIntersect(origin, eval, a, b) {
			return false
		}
	}
	return true
}
