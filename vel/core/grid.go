package core

// Axes defines the sampling of a velocity grid: an integer trace range
// and a uniform two-way-time axis in milliseconds.
type Axes struct {
	TraceStart int     // first trace index
	NumTraces  int     // trace count
	TimeStart  float64 // first sample time in ms
	TimeStep   float64 // sample spacing in ms
	NumSamples int     // sample count per trace
}

// Time returns the two-way time of sample s.
func (ax Axes) Time(s int) float64 {
	return ax.TimeStart + float64(s)*ax.TimeStep
}

// TimeEnd returns the time of the last sample.
func (ax Axes) TimeEnd() float64 {
	return ax.Time(ax.NumSamples - 1)
}

// Trace returns the trace index of column j.
func (ax Axes) Trace(j int) int {
	return ax.TraceStart + j
}

// Column returns the column for trace index t, or -1 if t lies outside
// the trace range.
func (ax Axes) Column(t int) int {
	j := t - ax.TraceStart
	if j < 0 || j >= ax.NumTraces {
		return -1
	}
	return j
}

// Cells returns the total cell count of a grid with these axes.
func (ax Axes) Cells() int {
	return ax.NumTraces * ax.NumSamples
}

// Grid is a dense velocity field sampled on Axes. Values are stored
// float32, time-sample-major (all traces of sample 0, then sample 1, ...),
// matching the binary export layout. A Grid is immutable once handed to a
// caller; strategies build a fresh Grid per construction run.
type Grid struct {
	Axes Axes
	Data []float32
}

// NewGrid allocates a zero-filled grid on the given axes.
func NewGrid(ax Axes) (*Grid, error) {
	if err := validateAxes(ax); err != nil {
		return nil, err
	}
	return &Grid{Axes: ax, Data: make([]float32, ax.Cells())}, nil
}

// At returns the velocity at (sample s, column j).
func (g *Grid) At(s, j int) float64 {
	return float64(g.Data[s*g.Axes.NumTraces+j])
}

// Set stores a velocity at (sample s, column j).
func (g *Grid) Set(s, j int, v float64) {
	g.Data[s*g.Axes.NumTraces+j] = float32(v)
}

// SetColumn stores a full time profile into column j.
// profile must have NumSamples values.
func (g *Grid) SetColumn(j int, profile []float64) {
	for s, v := range profile {
		g.Data[s*g.Axes.NumTraces+j] = float32(v)
	}
}

// Column copies the time profile of column j into dst, allocating when
// dst is nil or too short.
func (g *Grid) Column(j int, dst []float64) []float64 {
	n := g.Axes.NumSamples
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for s := range dst {
		dst[s] = float64(g.Data[s*g.Axes.NumTraces+j])
	}
	return dst
}

// CopyColumn copies column src into column dst within the same grid.
func (g *Grid) CopyColumn(dst, src int) {
	for s := 0; s < g.Axes.NumSamples; s++ {
		g.Data[s*g.Axes.NumTraces+dst] = g.Data[s*g.Axes.NumTraces+src]
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float32, len(g.Data))
	copy(data, g.Data)
	return &Grid{Axes: g.Axes, Data: data}
}
