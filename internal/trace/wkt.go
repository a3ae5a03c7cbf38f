package trace

import (
	"errors"
	"strconv"
	"strings"

	"gazepaint/internal/geom"
)

// ParseWKT reads a trace from WKT. POINT, MULTIPOINT and LINESTRING are
// supported; the vertices become samples in order. Every point of a
// MULTIPOINT forces a new structure, since those are discrete fixations
// rather than a continuous path.
func ParseWKT(wkt string) (Trace, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Trace{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var force bool
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		force = true
	case strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "LINESTRING"):
	default:
		return Trace{}, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return Trace{}, errors.New("wkt: invalid")
	}
	// MULTIPOINT((1 2), (3 4)) is as valid as MULTIPOINT(1 2, 3 4)
	block := strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])

	var t Trace
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		t.add(Sample{Point: geom.Pt(x, y), Force: force})
	}
	if len(t.Samples) == 0 {
		return Trace{}, ErrNoSamples
	}
	return t, nil
}
