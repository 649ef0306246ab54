// Package similarity compares dissolution profiles.
//
// f1 (difference factor) and f2 (similarity factor) follow the FDA/EMA
// definitions on % released values sampled on an identical time grid:
//
//	f1 = Σ|Rₜ − Tₜ| / ΣRₜ · 100
//	f2 = 50 · log10(100 / √(1 + (1/n)·Σ(Rₜ − Tₜ)²))
//
// Profiles are "similar" when f1 ≤ 15 and f2 ≥ 50.
//
// ShapeDistance complements f1/f2 for profiles that were not sampled on the
// same grid: a windowed dynamic-time-warping distance between the two %
// released sequences.
package similarity
