// Package rbf implements radial-basis-function interpolation over the
// scattered pick cloud. Building an interpolant solves a dense
// collocation system sized by the pick count (O(N^3)); evaluating it
// costs O(N) per grid cell. The interpolant reproduces each pick's
// velocity at its exact coordinate within floating-point tolerance as
// long as no smoothing term is configured.
//
// Outside the convex hull of the scatter the extrapolated values are
// unconstrained and may be non-physical; callers are advised to add
// boundary picks rather than rely on extrapolation.
package rbf
