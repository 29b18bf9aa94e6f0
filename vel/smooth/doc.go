// Package smooth applies a separable 2D Gaussian blur to velocity
// grids. The input grid is never touched; a new grid is returned.
//
// The configuration surface exposes smoothing as an integer level from
// 1 to 100 which maps to sigma = level / 10.0 grid cells, so the
// usable sigma range is 0.1 to 10.0. Boundaries are handled by edge
// replication (clamp-to-edge) rather than zero padding, so velocities
// do not drop off artificially at the line's ends or at time zero.
//
// Smoothing does not special-case pick locations: grid values may move
// away from an exact pick's velocity. That is expected behavior.
package smooth
