package growth

import (
	"math"
	"math/rand/v2"

	"gazepaint/internal/geom"
)

var xAxis = geom.Pt(1, 0)

// NextLeaf grows a child of parent that lies branchLength away from it
// and strictly further from root.
//
// The child's direction, seen from root, is drawn uniformly from the cone
// [v1-x, v1+x] around the parent's direction v1, where x = atan(branchLength/r)
// is the widest deviation that still points outward. The distance from root
// follows from the law of sines in the triangle root, parent, child.
//
// parent must not coincide with root; the engine never places a leaf
// there. If it does, the child is put branchLength away in a random
// direction.
func NextLeaf(rng *rand.Rand, parent, root geom.Point, branchLength float64) geom.Point {
	p := geom.TranslateToOrigin(root, parent)
	r := p.Length()
	if r == 0 {
		a := rng.Float64() * 2 * math.Pi
		return root.Add(geom.Pt(branchLength*math.Cos(a), branchLength*math.Sin(a)))
	}

	v1 := geom.AngleBetween(p, xAxis)
	if p.Y < 0 {
		v1 = 2*math.Pi - v1
	}
	x := math.Atan(branchLength / r)
	v2 := v1 - x + rng.Float64()*2*x
	v3 := v2 - v1

	var c float64
	if s := math.Sin(v3); math.Abs(s) < 1e-12 {
		c = r + branchLength
	} else {
		v4 := math.Asin(r * s / branchLength)
		v5 := math.Pi - v4 - v3
		c = branchLength * math.Sin(v5) / s
	}
	return root.Add(geom.Pt(c*math.Cos(v2), c*math.Sin(v2)))
}
