package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionDistance(t *testing.T) {
	require.InDelta(t, 5.0, Position{0, 0, 0}.Distance(Position{3, 4, 0}), 1e-12)
	require.InDelta(t, 3.0, Position{1, 2, 3}.Distance(Position{2, 4, 5}), 1e-12)
	require.Zero(t, Position{7, 7, 7}.Distance(Position{7, 7, 7}))
}

func TestPositionIsFinite(t *testing.T) {
	require.True(t, Position{1, -2, 3}.IsFinite())
	require.False(t, Position{math.NaN(), 0, 0}.IsFinite())
	require.False(t, Position{0, math.Inf(-1), 0}.IsFinite())
}

func TestInputErrorWrapsInvalidInput(t *testing.T) {
	err := error(&InputError{Field: "debris_list[1].position", Reason: "expected 3 components, got 2"})
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.False(t, errors.Is(err, ErrInternalComputation))
	require.Equal(t, "debris_list[1].position: expected 3 components, got 2", err.Error())
}
