// SPDX-License-Identifier: MIT
// Package: ivivc
//
// errors.go — facade-level sentinels. Engine failures keep the diag
// taxonomy; these only classify misuse of the facade itself.

package ivivc

import (
	"fmt"

	"github.com/katalvlaran/ivivc/diag"
)

// errLengthMismatch wraps diag.ErrDomain so callers keep branching on the
// shared taxonomy.
var errLengthMismatch = fmt.Errorf("length mismatch: %w", diag.ErrDomain)

// Re-exported sentinels for callers that only import the facade.
var (
	ErrDomain           = diag.ErrDomain
	ErrInsufficientData = diag.ErrInsufficientData
	ErrExtrapolation    = diag.ErrExtrapolation
)
