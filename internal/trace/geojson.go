package trace

import (
	"encoding/json"
	"fmt"
	"io"

	"gazepaint/internal/geom"
)

// ReadGeoJSON reads a trace from a GeoJSON document: a FeatureCollection,
// a Feature or a bare geometry. LineString and MultiLineString vertices
// are a gaze path; Point and MultiPoint vertices are fixations and force a
// new structure. A feature property "force" overrides either.
func ReadGeoJSON(r io.Reader) (Trace, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Trace{}, fmt.Errorf("trace: geojson: %w", err)
	}
	var t Trace
	parsePoint := func(v any) (geom.Point, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return geom.Pt(x, y), true
			}
		}
		return geom.Point{}, false
	}
	addPoints := func(v any, force bool) {
		arr, _ := v.([]any)
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				t.add(Sample{Point: p, Force: force})
			}
		}
	}
	var walkGeom func(g map[string]any, force *bool)
	walkGeom = func(g map[string]any, force *bool) {
		pick := func(def bool) bool {
			if force != nil {
				return *force
			}
			return def
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if p, ok := parsePoint(g["coordinates"]); ok {
				t.add(Sample{Point: p, Force: pick(true)})
			}
		case "MultiPoint":
			addPoints(g["coordinates"], pick(true))
		case "LineString":
			addPoints(g["coordinates"], pick(false))
		case "MultiLineString":
			lines, _ := g["coordinates"].([]any)
			for _, ls := range lines {
				addPoints(ls, pick(false))
			}
		case "GeometryCollection":
			geoms, _ := g["geometries"].([]any)
			for _, el := range geoms {
				if gm, ok := el.(map[string]any); ok {
					walkGeom(gm, force)
				}
			}
		}
	}
	walkFeature := func(f map[string]any) {
		var force *bool
		if props, ok := f["properties"].(map[string]any); ok {
			if v, ok := props["force"].(bool); ok {
				force = &v
			}
		}
		if g, ok := f["geometry"].(map[string]any); ok {
			walkGeom(g, force)
		}
	}
	switch raw["type"] {
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				walkFeature(fm)
			}
		}
	case "Feature":
		walkFeature(raw)
	default:
		walkGeom(raw, nil)
	}
	if len(t.Samples) == 0 {
		return Trace{}, ErrNoSamples
	}
	return t, nil
}
