package genfs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pi-pi3/genfs/fserr"
)

func TestSeekFromConstructors(t *testing.T) {
	tests := []struct {
		name   string
		pos    SeekFrom
		whence Whence
		offset int64
	}{
		{"Start", Start(42), WhenceStart, 0},
		{"End", End(-7), WhenceEnd, -7},
		{"Current", Current(3), WhenceCurrent, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.whence, tt.pos.Whence())
			require.Equal(t, tt.offset, tt.pos.Offset())
		})
	}

	require.Equal(t, uint64(42), Start(42).StartOffset())
}

func TestSeekFromComparable(t *testing.T) {
	require.Equal(t, Start(5), Start(5))
	require.NotEqual(t, Start(5), Start(6))
	require.NotEqual(t, End(0), Current(0))
}

func TestSeekFromResolve(t *testing.T) {
	tests := []struct {
		name    string
		pos     SeekFrom
		current uint64
		size    uint64
		want    uint64
	}{
		{"StartZero", Start(0), 10, 20, 0},
		{"StartPastEnd", Start(100), 0, 20, 100},
		{"EndNegative", End(-5), 0, 20, 15},
		{"EndZero", End(0), 0, 20, 20},
		{"EndPositive", End(5), 0, 20, 25},
		{"CurrentForward", Current(3), 10, 20, 13},
		{"CurrentBack", Current(-3), 10, 20, 7},
		{"CurrentToZero", Current(-10), 10, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pos.Resolve(tt.current, tt.size)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSeekFromResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		pos     SeekFrom
		current uint64
		size    uint64
	}{
		{"CurrentBeforeStart", Current(-1), 0, 20},
		{"EndBeforeStart", End(-21), 0, 20},
		{"CurrentMinInt64", Current(math.MinInt64), 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pos.Resolve(tt.current, tt.size)
			require.Error(t, err)
			require.True(t, fserr.IsInvalidInput(err), "got %v", err)
		})
	}
}

func TestSeekFromResolveOverflow(t *testing.T) {
	_, err := Current(math.MaxInt64).Resolve(math.MaxUint64, 0)
	require.Error(t, err)
	require.True(t, fserr.IsInvalidInput(err), "got %v", err)
}

func TestSeekFromMinInt64Magnitude(t *testing.T) {
	// The most negative offset must be handled without overflowing during
	// negation.
	const size = uint64(math.MaxInt64) + 10
	got, err := End(math.MinInt64).Resolve(0, size)
	require.NoError(t, err)
	require.Equal(t, size-(uint64(math.MaxInt64)+1), got)
}
