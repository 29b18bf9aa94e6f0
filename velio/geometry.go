package velio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seisgo/velfield/vel/core"
)

// ReadGeometry parses rows of (trace, x, y) into a trace geometry. The
// trace range is the span of the listed indices; unlisted traces inside
// the span keep the zero coordinate. The time range is not part of the
// format, so MaxTime is left for the caller to set from the seismic
// file or configuration.
func ReadGeometry(r io.Reader) (*core.Geometry, error) {
	type row struct {
		trace int
		pt    core.Point
	}

	var rows []row
	line := 0
	headerSkipped := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := splitRow(text)
		parsed, err := parseGeometryRow(fields)
		if err != nil {
			if !headerSkipped && len(rows) == 0 {
				headerSkipped = true
				continue
			}
			return nil, fmt.Errorf("velio: line %d: %w", line, err)
		}
		rows = append(rows, row{trace: parsed.trace, pt: parsed.pt})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("velio: read geometry: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("velio: no geometry rows found")
	}

	minTrace, maxTrace := rows[0].trace, rows[0].trace
	for _, rw := range rows[1:] {
		if rw.trace < minTrace {
			minTrace = rw.trace
		}
		if rw.trace > maxTrace {
			maxTrace = rw.trace
		}
	}

	gm := &core.Geometry{
		TraceStart: minTrace,
		Coords:     make([]core.Point, maxTrace-minTrace+1),
	}
	for _, rw := range rows {
		gm.Coords[rw.trace-minTrace] = rw.pt
	}
	return gm, nil
}

type geometryRow struct {
	trace int
	pt    core.Point
}

func parseGeometryRow(fields []string) (geometryRow, error) {
	if len(fields) != 3 {
		return geometryRow{}, fmt.Errorf("expected 3 columns, got %d", len(fields))
	}

	trace, err := strconv.Atoi(fields[0])
	if err != nil {
		return geometryRow{}, fmt.Errorf("bad trace index %q", fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometryRow{}, fmt.Errorf("bad x coordinate %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geometryRow{}, fmt.Errorf("bad y coordinate %q", fields[2])
	}
	return geometryRow{trace: trace, pt: core.Point{X: x, Y: y}}, nil
}
