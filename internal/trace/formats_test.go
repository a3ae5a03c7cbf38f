package trace

import (
	"errors"
	"strings"
	"testing"

	"gazepaint/internal/geom"
)

func TestReadGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Sample
	}{
		{
			name: "bare linestring",
			doc:  `{"type":"LineString","coordinates":[[0,0],[3,4]]}`,
			want: []Sample{{Point: geom.Pt(0, 0)}, {Point: geom.Pt(3, 4)}},
		},
		{
			name: "multipoint forces",
			doc:  `{"type":"MultiPoint","coordinates":[[1,2],[5,6]]}`,
			want: []Sample{{Point: geom.Pt(1, 2), Force: true}, {Point: geom.Pt(5, 6), Force: true}},
		},
		{
			name: "feature collection with force property",
			doc: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{"force":true},"geometry":{"type":"LineString","coordinates":[[1,1],[2,2]]}},
				{"type":"Feature","properties":{"force":false},"geometry":{"type":"Point","coordinates":[9,9]}},
				{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}}
			]}`,
			want: []Sample{
				{Point: geom.Pt(1, 1), Force: true},
				{Point: geom.Pt(2, 2), Force: true},
				{Point: geom.Pt(9, 9)},
			},
		},
		{
			name: "geometry collection",
			doc: `{"type":"Feature","geometry":{"type":"GeometryCollection","geometries":[
				{"type":"Point","coordinates":[1,1]},
				{"type":"MultiLineString","coordinates":[[[2,2],[3,3]],[[4,4]]]}
			]}}`,
			want: []Sample{
				{Point: geom.Pt(1, 1), Force: true},
				{Point: geom.Pt(2, 2)},
				{Point: geom.Pt(3, 3)},
				{Point: geom.Pt(4, 4)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ReadGeoJSON(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("ReadGeoJSON: %v", err)
			}
			if len(tr.Samples) != len(tt.want) {
				t.Fatalf("got %d samples, want %d: %v", len(tr.Samples), len(tt.want), tr.Samples)
			}
			for i, s := range tr.Samples {
				if s != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, s, tt.want[i])
				}
			}
		})
	}
}

func TestReadGeoJSONErrors(t *testing.T) {
	if _, err := ReadGeoJSON(strings.NewReader(`{"type":"Polygon","coordinates":[]}`)); !errors.Is(err, ErrNoSamples) {
		t.Errorf("polygon only: err = %v, want %v", err, ErrNoSamples)
	}
	if _, err := ReadGeoJSON(strings.NewReader(`{`)); err == nil {
		t.Error("truncated json accepted")
	}
}

const kmlDocument = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><Point><coordinates>10,20,0</coordinates></Point></Placemark>
    <Folder>
      <Placemark><LineString><coordinates>1,2 3,4,5
        bad 6,7</coordinates></LineString></Placemark>
    </Folder>
  </Document>
</kml>`

func TestReadKML(t *testing.T) {
	tr, err := ReadKML(strings.NewReader(kmlDocument))
	if err != nil {
		t.Fatalf("ReadKML: %v", err)
	}
	want := []Sample{
		{Point: geom.Pt(10, 20), Force: true},
		{Point: geom.Pt(1, 2)},
		{Point: geom.Pt(3, 4)},
		{Point: geom.Pt(6, 7)},
	}
	if len(tr.Samples) != len(want) {
		t.Fatalf("got %v, want %v", tr.Samples, want)
	}
	for i := range want {
		if tr.Samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, tr.Samples[i], want[i])
		}
	}
	if tr.BBox != (geom.BBox{MinX: 1, MinY: 2, MaxX: 10, MaxY: 20}) {
		t.Errorf("bbox = %+v", tr.BBox)
	}
}

func TestReadKMLEmpty(t *testing.T) {
	if _, err := ReadKML(strings.NewReader(`<kml><Document/></kml>`)); !errors.Is(err, ErrNoSamples) {
		t.Errorf("err = %v, want %v", err, ErrNoSamples)
	}
}
