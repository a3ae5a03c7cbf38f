package trace

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gazepaint/internal/geom"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Point      *kmlCoords `xml:"Point"`
	LineString *kmlCoords `xml:"LineString"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Document   *kmlDoc        `xml:"Document"`
	Folders    []kmlDoc       `xml:"Folder"`
}

// ReadKML reads a trace from the Placemarks of a KML file. Point
// placemarks force a new structure; LineString placemarks are a gaze
// path. KML coordinates are "x,y[,z]" tuples separated by whitespace.
func ReadKML(r io.Reader) (Trace, error) {
	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Trace{}, fmt.Errorf("trace: kml: %w", err)
	}
	var t Trace
	addCoords := func(coords string, force bool) {
		for _, tuple := range strings.Fields(coords) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			t.add(Sample{Point: geom.Pt(x, y), Force: force})
		}
	}
	var walk func(d *kmlDoc)
	walk = func(d *kmlDoc) {
		for _, pm := range d.Placemarks {
			if pm.Point != nil {
				addCoords(pm.Point.Coordinates, true)
			}
			if pm.LineString != nil {
				addCoords(pm.LineString.Coordinates, false)
			}
		}
		if d.Document != nil {
			walk(d.Document)
		}
		for i := range d.Folders {
			walk(&d.Folders[i])
		}
	}
	walk(&doc)
	if len(t.Samples) == 0 {
		return Trace{}, ErrNoSamples
	}
	return t, nil
}
