// Package correlation implements the IVIVC correlation levels.
//
//   - Level A: point-to-point. Every formulation's PK series is deconvolved
//     (Wagner–Nelson), % dissolved is paired with % absorbed on common times,
//     and all pairs are pooled into one OLS line.
//   - Level B: statistical moments. One point per formulation, x = MDT of the
//     dissolution profile, y = MRT of the PK profile.
//   - Level C: single point. Every (in-vitro metric, in-vivo metric) pair is
//     regressed across formulations; the result is a row-major Matrix.
//
// All regressions go through Fit (gonum/stat). A predictor without variance
// makes the line undefined (diag.ErrDomain). With fewer than
// Options.MinFormulations formulations, Level B and C still fit the line and
// attach a diag.InsufficientFormulations warning.
//
// Metric lists, ke policy, alignment and thresholds are explicit Options;
// nothing is read from package state.
package correlation
