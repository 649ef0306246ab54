// Package validation checks an IVIVC model's predictability with the
// prediction error
//
//	%PE = (Predicted − Observed) / Observed · 100
//
// Each entry is one (formulation, metric) prediction, typically Cmax or AUC.
// Thresholds are explicit configuration (DefaultThresholds: mean |%PE| ≤ 10
// per metric, every individual |%PE| ≤ 15). Both criteria are evaluated and
// reported on their own; a result passes only when both hold, and every
// entry above the individual limit is listed as an outlier.
//
// PredictInternal and PredictExternal produce the entries from a Level A
// line: dissolution is mapped through the line to a predicted fraction
// absorbed, which is reconvolved (package deconv) into a concentration
// profile and compared with the observed one.
package validation
