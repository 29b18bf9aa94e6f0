// Package core provides the shared data model for velocity-field
// construction: dense grids, axis definitions, trace geometry, and the
// numeric helpers and error values used across the interpolation
// strategies.
package core
