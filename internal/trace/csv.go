package trace

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"gazepaint/internal/geom"
)

// ReadCSV reads a trace with x/y columns and an optional force column.
// Column detection (case-insensitive): x|gaze_x|px, y|gaze_y|py and
// force|new|always.
func ReadCSV(r io.Reader) (Trace, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Trace{}, err
	}
	if len(recs) == 0 {
		return Trace{}, errors.New("trace: empty csv")
	}
	idxX, idxY, idxForce := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "gaze_x", "px":
			if idxX == -1 {
				idxX = i
			}
		case "y", "gaze_y", "py":
			if idxY == -1 {
				idxY = i
			}
		case "force", "new", "always":
			if idxForce == -1 {
				idxForce = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Trace{}, errors.New("trace: x/y columns not found")
	}
	var t Trace
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		s := Sample{Point: geom.Pt(x, y)}
		if idxForce >= 0 && idxForce < len(row) {
			s.Force, _ = strconv.ParseBool(strings.TrimSpace(row[idxForce]))
		}
		t.add(s)
	}
	if len(t.Samples) == 0 {
		return Trace{}, ErrNoSamples
	}
	return t, nil
}
