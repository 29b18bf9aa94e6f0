package core

// Point is a spatial coordinate of one trace position.
type Point struct {
	X float64
	Y float64
}

// Geometry maps trace indices to spatial coordinates and carries the
// valid time range of the line. It is supplied by an external seismic
// reader and is read-only to the engine.
type Geometry struct {
	TraceStart int
	Coords     []Point // one entry per trace, starting at TraceStart
	MaxTime    float64 // end of the valid time range in ms
}

// NumTraces returns the trace count of the geometry.
func (gm *Geometry) NumTraces() int {
	return len(gm.Coords)
}

// Coord returns the coordinate of trace index t. Traces outside the
// geometry map to the zero point.
func (gm *Geometry) Coord(t int) Point {
	j := t - gm.TraceStart
	if j < 0 || j >= len(gm.Coords) {
		return Point{}
	}
	return gm.Coords[j]
}

// AxesFor derives grid axes from the geometry using the given time step.
// The time axis spans [0, MaxTime] and is typically finer than the pick
// spacing.
func (gm *Geometry) AxesFor(timeStep float64) Axes {
	n := 1
	if timeStep > 0 {
		n = int(gm.MaxTime/timeStep) + 1
	}
	return Axes{
		TraceStart: gm.TraceStart,
		NumTraces:  len(gm.Coords),
		TimeStart:  0,
		TimeStep:   timeStep,
		NumSamples: n,
	}
}
