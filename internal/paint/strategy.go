package paint

import (
	"math/rand/v2"

	"gazepaint/internal/config"
	"gazepaint/internal/geom"
	"gazepaint/internal/growth"
)

// Renderer turns a snapshot into primitives. rng is private to the call.
type Renderer func(s *growth.Structure, rng *rand.Rand) []Primitive

var renderers = [config.VariantCount]Renderer{
	config.FilledHull:              filledHull,
	config.BranchesPlusFilledHull:  branchesFilledHull,
	config.BranchesOnly:            branchesOnly,
	config.HullOutlinePlusBranches: hullOutlineBranches,
	config.ScatterBubbles:          scatterBubbles,
	config.RandomSplines:           randomSplines,
	config.LeafDots:                leafDots,
}

// RendererFor returns the renderer of v, or nil for an unknown variant.
func RendererFor(v config.Variant) Renderer {
	if v >= config.VariantCount {
		return nil
	}
	return renderers[v]
}

// Render returns the primitives for s using its variant. The result only
// depends on s.
func Render(s *growth.Structure) []Primitive {
	r := RendererFor(s.Variant)
	if r == nil {
		return nil
	}
	return r(s, rand.New(rand.NewPCG(s.Seed, uint64(s.Generation))))
}

func filledHull(s *growth.Structure, _ *rand.Rand) []Primitive {
	return fillHull(nil, s)
}

func branchesFilledHull(s *growth.Structure, _ *rand.Rand) []Primitive {
	return fillHull(branches(nil, s), s)
}

func branchesOnly(s *growth.Structure, _ *rand.Rand) []Primitive {
	return branches(nil, s)
}

func hullOutlineBranches(s *growth.Structure, _ *rand.Rand) []Primitive {
	return branches(hullOutline(nil, s), s)
}

// bubbleJitter is the jitter window as a fraction of a leaf's offset
// from the root.
const bubbleJitter = 0.10

// scatterBubbles draws the later half of the leaves as discs, jittered
// and with random, mostly small radii.
func scatterBubbles(s *growth.Structure, rng *rand.Rand) []Primitive {
	var out []Primitive
	for i := len(s.Leaves) / 2; i < len(s.Leaves); i++ {
		off := s.Leaves[i].Sub(s.Root)
		jx := (rng.Float64()*2 - 1) * bubbleJitter * off.X
		jy := (rng.Float64()*2 - 1) * bubbleJitter * off.Y
		r := rng.Float64() * s.LeafSize
		r -= rng.Float64() * r
		if r <= 0 {
			continue
		}
		out = append(out, Circle{
			Center: s.Leaves[i].Add(geom.Pt(jx, jy)),
			Radius: r,
			Color:  s.Color,
		})
	}
	return out
}

// randomSplines shuffles the leaves and draws one curve through every
// consecutive triple. Leftover leaves are skipped.
func randomSplines(s *growth.Structure, rng *rand.Rand) []Primitive {
	pts := make([]geom.Point, len(s.Leaves))
	copy(pts, s.Leaves)
	rng.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	out := make([]Primitive, 0, len(pts)/3)
	for k := 0; k+2 < len(pts); k += 3 {
		out = append(out, Curve{
			From:    pts[k],
			Through: pts[k+1],
			To:      pts[k+2],
			Width:   s.HullWidth,
			Color:   s.Color,
		})
	}
	return out
}

func leafDots(s *growth.Structure, _ *rand.Rand) []Primitive {
	out := make([]Primitive, 0, len(s.Leaves))
	for _, l := range s.Leaves {
		out = append(out, Circle{Center: l, Radius: s.LeafSize, Color: s.Color})
	}
	return out
}

func branches(out []Primitive, s *growth.Structure) []Primitive {
	for i, l := range s.Leaves {
		if i >= len(s.PreviousGen) {
			break
		}
		out = append(out, Line{From: s.PreviousGen[i], To: l, Width: s.BranchWidth, Color: s.Color})
	}
	return out
}

func fillHull(out []Primitive, s *growth.Structure) []Primitive {
	hull := s.Hull()
	if len(hull) < 3 || geom.Area(hull) <= 0 {
		return out
	}
	return append(out, Polygon{Points: hull, Color: s.Color})
}

func hullOutline(out []Primitive, s *growth.Structure) []Primitive {
	hull := s.Hull()
	if len(hull) < 2 {
		return out
	}
	for i := range hull {
		out = append(out, Line{From: hull[i], To: hull[(i+1)%len(hull)], Width: s.HullWidth, Color: s.Color})
	}
	return out
}
