package diag_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_UnwrapsSentinel(t *testing.T) {
	err := diag.ParamError("NewOralPK", "ka", diag.ErrDomain, "ka=%g equals ke", 0.1)

	assert.ErrorIs(t, err, diag.ErrDomain)
	assert.NotErrorIs(t, err, diag.ErrExtrapolation)
	assert.Equal(t, "NewOralPK ka: ka=0.1 equals ke: ivivc: domain error", err.Error())
}

func TestWithSubject(t *testing.T) {
	base := diag.Errorf("WagnerNelson", diag.ErrInsufficientData, "need 3 points, got %d", 2)

	err := diag.WithSubject("LevelA", "F1", base)
	require.Error(t, err)

	var de *diag.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "F1", de.Subject)
	assert.Equal(t, "WagnerNelson", de.Op)
	assert.Empty(t, base.Subject, "original error must not be mutated")
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	// Already-attributed errors are wrapped, keeping the inner subject.
	outer := diag.WithSubject("LevelB", "F2", err)
	assert.True(t, errors.As(outer, &de))
	assert.ErrorIs(t, outer, diag.ErrInsufficientData)

	assert.NoError(t, diag.WithSubject("LevelA", "F1", nil))
}

func TestWarnings(t *testing.T) {
	ws := []diag.Warning{
		diag.Warnf(diag.NonMonotonicAbsorption, "F3", "Fa drops at t=%g", 4.0),
	}

	assert.True(t, diag.Has(ws, diag.NonMonotonicAbsorption))
	assert.False(t, diag.Has(ws, diag.InsufficientFormulations))
	assert.Equal(t, "NonMonotonicAbsorption [F3]: Fa drops at t=4", ws[0].String())
	assert.Equal(t, "InsufficientFormulations: n=2",
		diag.Warnf(diag.InsufficientFormulations, "", "n=%d", 2).String())
}
