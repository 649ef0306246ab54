// Package series provides the immutable TimeSeries value used across ivivc,
// the time grids profiles are sampled on, and the trapezoidal statistical
// moments computed from dissolution and plasma-concentration curves.
//
// ✨ What lives here:
//   - TimeSeries — ordered (time, value) points with strictly increasing,
//     non-negative times and a time Unit (hours for oral, days for depot).
//   - Grid       — Regular(start, stop, step) or Explicit(times...) sampling.
//   - Moments    — AUC, AUMC, MRT (observed and extrapolated to ∞), terminal
//     log-linear slope, MDT, VDT, dissolution efficiency, Cmax/Tmax.
//
// Every constructor copies its input and every accessor returns a copy, so a
// TimeSeries never changes once produced; "modifying" one means building a
// new value (Map, Scale).
//
// Integration is delegated to gonum's integrate.Trapezoidal and regression to
// gonum's stat.LinearRegression.
package series
