package velio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seisgo/velfield/vel/pick"
)

// ReadPicks parses rows of (trace, time, velocity). One leading header
// or comment line is tolerated; any later unparsable row aborts the
// read. The returned picks carry no IDs or origin; pass them to a
// store's Load.
func ReadPicks(r io.Reader) ([]pick.Pick, error) {
	var picks []pick.Pick
	line := 0
	headerSkipped := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		trace, time, vel, err := parsePickRow(text)
		if err != nil {
			if !headerSkipped && len(picks) == 0 {
				headerSkipped = true
				continue
			}
			return nil, fmt.Errorf("velio: line %d: %w", line, err)
		}

		picks = append(picks, pick.Pick{Trace: trace, Time: time, Velocity: vel})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("velio: read picks: %w", err)
	}
	if len(picks) == 0 {
		return nil, fmt.Errorf("velio: no pick rows found")
	}
	return picks, nil
}

// WritePicks writes picks as delimited rows under a header, the format
// ReadPicks accepts. An empty delimiter writes tabs.
func WritePicks(w io.Writer, picks []pick.Pick, delimiter string) error {
	if delimiter == "" {
		delimiter = "\t"
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "trace%stwt%svelocity\n", delimiter, delimiter); err != nil {
		return fmt.Errorf("velio: write header: %w", err)
	}
	for _, p := range picks {
		if _, err := fmt.Fprintf(bw, "%d%s%g%s%g\n", p.Trace, delimiter, p.Time, delimiter, p.Velocity); err != nil {
			return fmt.Errorf("velio: write pick: %w", err)
		}
	}
	return bw.Flush()
}

// parsePickRow splits one row on tabs or arbitrary whitespace.
func parsePickRow(text string) (trace int, time, vel float64, err error) {
	fields := splitRow(text)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 columns, got %d", len(fields))
	}

	trace, err = strconv.Atoi(fields[0])
	if err != nil {
		// Accept a float-formatted trace column; several picking tools
		// export trace indices as floats.
		f, ferr := strconv.ParseFloat(fields[0], 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, 0, 0, fmt.Errorf("bad trace index %q", fields[0])
		}
		trace = int(f)
	}

	time, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad time %q", fields[1])
	}
	vel, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad velocity %q", fields[2])
	}
	return trace, time, vel, nil
}

func splitRow(text string) []string {
	if strings.Contains(text, "\t") {
		parts := strings.Split(text, "\t")
		out := parts[:0]
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return strings.Fields(text)
}
