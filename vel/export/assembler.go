package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/seisgo/velfield/vel/core"
)

// DefaultDelimiter separates text-export columns unless the caller
// configures another one.
const DefaultDelimiter = "\t"

// Assembler binds a velocity grid to trace geometry for export. The
// geometry may be nil when no seismic line is loaded; spatial
// coordinates then export as zero.
type Assembler struct {
	grid *core.Grid
	geom *core.Geometry
}

// NewAssembler creates an assembler for a finished grid.
func NewAssembler(grid *core.Grid, geom *core.Geometry) (*Assembler, error) {
	if grid == nil {
		return nil, fmt.Errorf("export: nil grid")
	}
	return &Assembler{grid: grid, geom: geom}, nil
}

// WriteText writes one delimited row per grid cell: x, y, trace index,
// two-way time and velocity, preceded by a header row. Rows are grouped
// by trace, samples in time order. An empty delimiter selects the
// default tab.
func (a *Assembler) WriteText(w io.Writer, delimiter string) error {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	bw := bufio.NewWriter(w)
	d := delimiter
	if _, err := fmt.Fprintf(bw, "x%sy%strace%stwt%svelocity\n", d, d, d, d); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	ax := a.grid.Axes
	for j := 0; j < ax.NumTraces; j++ {
		trace := ax.Trace(j)
		var pt core.Point
		if a.geom != nil {
			pt = a.geom.Coord(trace)
		}
		for s := 0; s < ax.NumSamples; s++ {
			_, err := fmt.Fprintf(bw, "%.2f%s%.2f%s%d%s%g%s%.2f\n",
				pt.X, d, pt.Y, d, trace, d, ax.Time(s), d, a.grid.At(s, j))
			if err != nil {
				return fmt.Errorf("export: write row: %w", err)
			}
		}
	}
	return bw.Flush()
}

// WriteBinary writes the bare little-endian float32 grid in
// time-sample-major, trace-index-minor order with no header.
func (a *Assembler) WriteBinary(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, a.grid.Data); err != nil {
		return fmt.Errorf("export: write grid: %w", err)
	}
	return nil
}

// ReadBinary reads a bare float32 grid back, given the axis metadata
// that traveled out-of-band. The payload length must match the axes
// exactly.
func ReadBinary(r io.Reader, ax core.Axes) (*core.Grid, error) {
	g, err := core.NewGrid(ax)
	if err != nil {
		return nil, err
	}

	if err := binary.Read(r, binary.LittleEndian, g.Data); err != nil {
		return nil, fmt.Errorf("export: read grid: %w", err)
	}

	// A longer payload means the axes do not describe this file.
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("export: payload exceeds %d cells", ax.Cells())
	}
	return g, nil
}
