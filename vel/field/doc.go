// Package field is the entry point of the velocity-field construction
// engine. It exposes the configuration surface (method selector, model
// coefficients, kernel choice, two-step threshold, smoothing level) and
// dispatches to the interpolation strategies.
//
// Construct is a pure function from (pick snapshot, geometry, config)
// to a freshly allocated grid. It holds no state between runs, so
// concurrent preview and final constructions are safe as long as each
// call gets its own snapshot. Long constructions honor context
// cancellation at trace granularity and never expose a partial grid.
package field
