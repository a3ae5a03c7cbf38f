package config

import (
	"fmt"
	"strings"
)

// Variant selects how a structure is turned into draw primitives.
type Variant uint8

const (
	FilledHull Variant = iota
	BranchesPlusFilledHull
	BranchesOnly
	HullOutlinePlusBranches
	ScatterBubbles
	RandomSplines
	LeafDots

	VariantCount
)

var variantNames = [VariantCount]string{
	FilledHull:              "filled_hull",
	BranchesPlusFilledHull:  "branches_filled_hull",
	BranchesOnly:            "branches",
	HullOutlinePlusBranches: "hull_outline_branches",
	ScatterBubbles:          "bubbles",
	RandomSplines:           "splines",
	LeafDots:                "leaf_dots",
}

// legacy renderer names from the EyePaint tool tables
var variantAliases = map[string]Variant{
	"polytree":      FilledHull,
	"wooltree":      BranchesPlusFilledHull,
	"cellnettree":   BranchesOnly,
	"modernarttree": HullOutlinePlusBranches,
	"bubbletree":    ScatterBubbles,
	"scribbletree":  RandomSplines,
}

func (v Variant) String() string {
	if v < VariantCount {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant resolves a strategy name. Matching is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for v, s := range variantNames {
		if s == n {
			return Variant(v), nil
		}
	}
	if v, ok := variantAliases[n]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
