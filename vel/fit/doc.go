// Package fit provides the regression-based global velocity models:
// linear (V = V0 + k*t) and logarithmic (V = V0 + k*ln t). Both come in
// a best-fit variant estimated by ordinary least squares over the full
// pick scatter, and a custom variant using caller-supplied coefficients.
//
// The models are deliberately laterally invariant: the trace index is
// ignored during fitting and evaluation, so the resulting field varies
// only with time.
package fit
