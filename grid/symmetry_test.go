package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeSym(t *testing.T, cells [][]int) Symmetry {
	t.Helper()
	a, err := Analyze(cells)
	require.NoError(t, err)

	return a.Symmetry
}

func TestSymmetry_FullySymmetricPlus(t *testing.T) {
	s := analyzeSym(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	assert.Equal(t, Symmetry{
		Horizontal:   true,
		Vertical:     true,
		Diagonal:     true,
		AntiDiagonal: true,
		Rotation180:  true,
	}, s)
	assert.Equal(t, 1.0, s.Score())
}

func TestSymmetry_HorizontalOnly(t *testing.T) {
	// Each row is its own mirror, but the rows differ top-to-bottom.
	s := analyzeSym(t, [][]int{
		{1, 0, 1},
		{2, 0, 2},
		{3, 0, 3},
	})
	assert.True(t, s.Horizontal)
	assert.False(t, s.Vertical)
	assert.False(t, s.Rotation180)
}

func TestSymmetry_VerticalOnly(t *testing.T) {
	s := analyzeSym(t, [][]int{
		{1, 2, 3},
		{0, 0, 0},
		{1, 2, 3},
	})
	assert.True(t, s.Vertical)
	assert.False(t, s.Horizontal)
	assert.False(t, s.Rotation180)
}

// TestSymmetry_NonSquareRotation exercises the one transform that stays
// computable for any shape: a 2×4 frame equal to its own 180° rotation
// must set Rotation180 while both transpose flags stay false by
// definition.
func TestSymmetry_NonSquareRotation(t *testing.T) {
	s := analyzeSym(t, [][]int{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
	})
	assert.True(t, s.Rotation180)
	assert.False(t, s.Diagonal)
	assert.False(t, s.AntiDiagonal)
	assert.False(t, s.Horizontal)
	assert.False(t, s.Vertical)
	assert.Equal(t, 0.2, s.Score())
}

func TestSymmetry_DiagonalPair(t *testing.T) {
	// Symmetric matrix: equals its transpose, but not its mirrors.
	s := analyzeSym(t, [][]int{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	assert.True(t, s.Diagonal)
	assert.False(t, s.Horizontal)
	assert.False(t, s.Vertical)

	// Anti-diagonal symmetry: (r,c) equals (n-1-c, n-1-r).
	s = analyzeSym(t, [][]int{
		{1, 2, 0},
		{4, 0, 2},
		{0, 4, 1},
	})
	assert.True(t, s.AntiDiagonal)
	assert.False(t, s.Diagonal)
}
