// Package export binds a finished velocity grid to trace geometry and
// encodes it for downstream seismic-processing tools.
//
// Two encodings are supported. Text export writes one row per grid
// cell carrying (x, y, trace, time, velocity) with a configurable
// delimiter. Binary export writes the bare float32 grid in
// time-sample-major, trace-index-minor order with no header, so the
// axis metadata has to travel out-of-band (file naming, a companion
// text export, or a sidecar).
package export
