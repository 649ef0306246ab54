// SPDX-License-Identifier: MIT
// Package: ivivc/diag
//
// errors.go — sentinel errors and the contextual *Error wrapper.
//
// Error policy:
//   • Only the three sentinels below classify failures.
//   • Engine code wraps them with context via Errorf / Wrap; callers branch
//     with errors.Is and never compare strings.
//   • Fatal errors are never replaced by default values.

package diag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDomain indicates invalid or degenerate model parameters, e.g. a
	// non-positive rate constant or the flip-flop singularity ka≈ke.
	ErrDomain = errors.New("ivivc: domain error")

	// ErrInsufficientData indicates too few points for integration or regression.
	ErrInsufficientData = errors.New("ivivc: insufficient data")

	// ErrExtrapolation indicates that the terminal-phase assumption used for
	// AUC(0,∞) is violated (profile not declining at its end).
	ErrExtrapolation = errors.New("ivivc: extrapolation error")
)

// Error decorates a sentinel with the context needed for a precise message.
// Op is the engine operation ("WagnerNelson", "LevelC", ...), Subject names
// the entity (formulation ID, metric pair) and Param the offending parameter.
// Empty fields are omitted from Error().
type Error struct {
	Op      string
	Subject string
	Param   string
	Detail  string
	Err     error
}

// Error renders "<op>: [<subject>] <param>: <detail>: <sentinel>".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Subject != "" {
		b.WriteString(" [")
		b.WriteString(e.Subject)
		b.WriteString("]")
	}
	if e.Param != "" {
		b.WriteString(" ")
		b.WriteString(e.Param)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the wrapped sentinel (or lower-level error) to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error for op around sentinel, with a formatted detail.
func Errorf(op string, sentinel error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Detail: fmt.Sprintf(format, args...), Err: sentinel}
}

// ParamError builds an *Error naming the offending parameter.
func ParamError(op, param string, sentinel error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Param: param, Detail: fmt.Sprintf(format, args...), Err: sentinel}
}

// WithSubject returns err annotated with subject. If err already is an *Error
// without a subject, a copy carrying the subject is returned; otherwise err is
// wrapped in a new *Error for op. A nil err stays nil.
func WithSubject(op, subject string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) && de.Subject == "" {
		cp := *de
		cp.Subject = subject

		return &cp
	}

	return &Error{Op: op, Subject: subject, Err: err}
}
