// Package trace loads recorded gaze traces for replay.
package trace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gazepaint/internal/geom"
)

var (
	ErrNoSamples   = errors.New("trace: no samples")
	ErrUnsupported = errors.New("trace: unsupported format")
)

// Sample is one recorded gaze position. Force asks for a new structure
// even when the point falls inside the growing one.
type Sample struct {
	Point geom.Point
	Force bool
}

type Trace struct {
	Samples []Sample
	BBox    geom.BBox
}

func (t *Trace) add(s Sample) {
	if len(t.Samples) == 0 {
		t.BBox = geom.BBox{MinX: s.Point.X, MinY: s.Point.Y, MaxX: s.Point.X, MaxY: s.Point.Y}
	} else {
		t.BBox = t.BBox.Extend(s.Point)
	}
	t.Samples = append(t.Samples, s)
}

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".wkt", ".geojson", ".json", ".kml"}

// Load reads a trace, picking the format from the file extension.
func Load(path string) (Trace, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return Trace{}, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Trace{}, err
		}
		return ParseWKT(string(data))
	case ".geojson", ".json":
		f, err := os.Open(path)
		if err != nil {
			return Trace{}, err
		}
		defer f.Close()
		return ReadGeoJSON(f)
	case ".kml":
		f, err := os.Open(path)
		if err != nil {
			return Trace{}, err
		}
		defer f.Close()
		return ReadKML(f)
	default:
		return Trace{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Fit maps trace coordinates into a w×h area, keeping the aspect ratio
// and leaving margin on every side. A trace of a single point lands in
// the centre.
func (t Trace) Fit(w, h, margin float64) func(geom.Point) geom.Point {
	bw, bh := t.BBox.Width(), t.BBox.Height()
	aw, ah := w-2*margin, h-2*margin
	scale := 1.0
	switch {
	case bw > 0 && bh > 0:
		scale = min(aw/bw, ah/bh)
	case bw > 0:
		scale = aw / bw
	case bh > 0:
		scale = ah / bh
	}
	cx, cy := (t.BBox.MinX+t.BBox.MaxX)/2, (t.BBox.MinY+t.BBox.MaxY)/2
	return func(p geom.Point) geom.Point {
		return geom.Pt(w/2+(p.X-cx)*scale, h/2+(p.Y-cy)*scale)
	}
}
