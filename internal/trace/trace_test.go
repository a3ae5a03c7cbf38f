package trace

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gazepaint/internal/geom"
)

func TestReadCSV(t *testing.T) {
	in := "t,X,y,force\n0,10,20,false\n1,bad,3,true\n2,30,5,true\n3,40\n"
	tr, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := []Sample{
		{Point: geom.Pt(10, 20)},
		{Point: geom.Pt(30, 5), Force: true},
	}
	if len(tr.Samples) != len(want) {
		t.Fatalf("samples = %v, want %v", tr.Samples, want)
	}
	for i := range want {
		if tr.Samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, tr.Samples[i], want[i])
		}
	}
	if bb := (geom.BBox{MinX: 10, MinY: 5, MaxX: 30, MaxY: 20}); tr.BBox != bb {
		t.Errorf("bbox = %+v, want %+v", tr.BBox, bb)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no columns", "a,b\n1,2\n"},
		{"no rows", "x,y\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadCSV succeeded")
			}
		})
	}
}

func TestParseWKT(t *testing.T) {
	tests := []struct {
		name      string
		wkt       string
		n         int
		wantForce bool
	}{
		{"point", "POINT (1 2)", 1, false},
		{"linestring", "LINESTRING(0 0, 10 10, 20 5)", 3, false},
		{"multipoint", "MULTIPOINT (1 1, 2 2)", 2, true},
		{"multipoint nested", "MULTIPOINT ((1 1), (2 2), (3 3))", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := ParseWKT(tt.wkt)
			if err != nil {
				t.Fatalf("ParseWKT: %v", err)
			}
			if len(tr.Samples) != tt.n {
				t.Fatalf("got %d samples, want %d", len(tr.Samples), tt.n)
			}
			for _, s := range tr.Samples {
				if s.Force != tt.wantForce {
					t.Errorf("sample %v force = %v, want %v", s.Point, s.Force, tt.wantForce)
				}
			}
		})
	}
	for _, bad := range []string{"", "POLYGON((0 0, 1 0, 1 1, 0 0))", "POINT", "LINESTRING(a b)"} {
		if _, err := ParseWKT(bad); err == nil {
			t.Errorf("ParseWKT(%q) succeeded", bad)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "gaze.csv")
	wktPath := filepath.Join(dir, "gaze.wkt")
	if err := os.WriteFile(csvPath, []byte("x,y\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(wktPath, []byte("LINESTRING(1 2, 3 4)"), 0o644); err != nil {
		t.Fatal(err)
	}
	if tr, err := Load(csvPath); err != nil || len(tr.Samples) != 1 {
		t.Errorf("Load(csv) = %v, %v", tr, err)
	}
	if tr, err := Load(wktPath); err != nil || len(tr.Samples) != 2 {
		t.Errorf("Load(wkt) = %v, %v", tr, err)
	}
	if _, err := Load(filepath.Join(dir, "gaze.shp")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Load(shp) error = %v, want %v", err, ErrUnsupported)
	}
}

func TestFit(t *testing.T) {
	tr, err := ParseWKT("LINESTRING(0 0, 100 50)")
	if err != nil {
		t.Fatal(err)
	}
	fit := tr.Fit(220, 120, 10)
	// 200x100 available, trace is 100x50: scale 2, centred
	check := func(in, want geom.Point) {
		t.Helper()
		if got := fit(in); math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("fit(%v) = %v, want %v", in, got, want)
		}
	}
	check(geom.Pt(0, 0), geom.Pt(10, 10))
	check(geom.Pt(100, 50), geom.Pt(210, 110))

	single, _ := ParseWKT("POINT(5 5)")
	check2 := single.Fit(100, 40, 0)(geom.Pt(5, 5))
	if check2 != geom.Pt(50, 20) {
		t.Errorf("single point fit = %v, want centre", check2)
	}
}
