// Package diag holds the failure and warning vocabulary shared by every
// ivivc engine package.
//
// Fatal conditions are sentinel errors matched with errors.Is:
//
//	ErrDomain           — invalid or degenerate model parameters (flip-flop ka≈ke, k≤0, ...)
//	ErrInsufficientData — too few points for integration or regression
//	ErrExtrapolation    — the terminal log-linear assumption does not hold
//
// Engine functions wrap them in *Error, which records the operation, the
// subject (usually a formulation ID) and the offending parameter so a caller
// can render a precise message without parsing strings:
//
//	var de *diag.Error
//	if errors.As(err, &de) {
//		fmt.Println(de.Subject, de.Param)
//	}
//
// Non-fatal findings are Warning values. They never abort a computation; the
// engine attaches them to the result it returns.
package diag
