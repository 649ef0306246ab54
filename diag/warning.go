// SPDX-License-Identifier: MIT
// Package: ivivc/diag
//
// warning.go — non-fatal findings attached to engine results.

package diag

import "fmt"

// WarningCode classifies a Warning.
type WarningCode string

const (
	// NonMonotonicAbsorption: a deconvolved Fa(t) decreased beyond tolerance,
	// usually because ke is inconsistent with the observed terminal decline.
	NonMonotonicAbsorption WarningCode = "NonMonotonicAbsorption"

	// InsufficientFormulations: a per-formulation regression was fitted on
	// fewer formulations than required for goodness-of-fit information.
	InsufficientFormulations WarningCode = "InsufficientFormulations"
)

// Warning is a non-fatal finding. Subject names the formulation or metric
// pair it concerns; Detail is human readable.
type Warning struct {
	Code    WarningCode `json:"code"`
	Subject string      `json:"subject,omitempty"`
	Detail  string      `json:"detail"`
}

// String renders the warning for logs and CLI output.
func (w Warning) String() string {
	if w.Subject == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Detail)
	}

	return fmt.Sprintf("%s [%s]: %s", w.Code, w.Subject, w.Detail)
}

// Warnf builds a Warning with a formatted detail.
func Warnf(code WarningCode, subject, format string, args ...interface{}) Warning {
	return Warning{Code: code, Subject: subject, Detail: fmt.Sprintf(format, args...)}
}

// Has reports whether ws contains at least one warning with code.
func Has(ws []Warning, code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}

	return false
}
