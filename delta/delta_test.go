package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsight/grid"
)

// TestAnalyze_PlusToColumn uses the canonical plus→column fixture:
//
//	0 1 0      0 0 1
//	1 1 1  →   0 1 1
//	0 1 0      0 0 1
//
// Exactly five cells change color.
func TestAnalyze_PlusToColumn(t *testing.T) {
	res, err := Analyze(
		[][]int{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}},
		[][]int{{0, 0, 1}, {0, 1, 1}, {0, 0, 1}},
	)
	require.NoError(t, err)
	assert.Equal(t, 5, res.PixelsChanged)
}

func TestAnalyze_IdenticalFramesYieldNoTransformations(t *testing.T) {
	g := [][]int{{0, 2, 0}, {1, 1, 1}, {0, 2, 0}}

	res, err := Analyze(g, g)
	require.NoError(t, err)
	assert.Zero(t, res.PixelsChanged)
	assert.Empty(t, res.Transformations, "exact survivals must be omitted")
}

func TestAnalyze_Moved(t *testing.T) {
	res, err := Analyze(
		[][]int{{0, 0, 0}, {0, 3, 0}, {0, 0, 0}},
		[][]int{{0, 0, 0}, {0, 0, 3}, {0, 0, 0}},
	)
	require.NoError(t, err)

	// The background ring keeps its color, size, and bounds, so only the
	// 3-cell's translation is reported.
	require.Len(t, res.Transformations, 1)
	tr := res.Transformations[0]
	assert.Equal(t, Moved, tr.Kind)
	assert.Equal(t, 3, tr.Before.Color)
	assert.Equal(t, 0, tr.DeltaRow)
	assert.Equal(t, 1, tr.DeltaCol)
}

func TestAnalyze_Recolored(t *testing.T) {
	res, err := Analyze(
		[][]int{{1, 1}, {0, 0}},
		[][]int{{2, 2}, {0, 0}},
	)
	require.NoError(t, err)

	require.Len(t, res.Transformations, 1)
	tr := res.Transformations[0]
	assert.Equal(t, Recolored, tr.Kind)
	assert.Equal(t, 1, tr.OldColor)
	assert.Equal(t, 2, tr.NewColor)
	assert.Equal(t, tr.Before.Bounds, tr.After.Bounds)
}

func TestAnalyze_Resized(t *testing.T) {
	res, err := Analyze(
		[][]int{{0, 4}, {0, 4}},
		[][]int{{0, 4}, {0, 0}},
	)
	require.NoError(t, err)

	// Both color classes change footprint: the 4-region shrinks 2→1 and
	// the background grows 2→3.
	require.Len(t, res.Transformations, 2)
	byColor := map[int]Transformation{}
	for _, tr := range res.Transformations {
		require.Equal(t, Resized, tr.Kind)
		byColor[tr.Before.Color] = tr
	}
	assert.Equal(t, 2, byColor[0].OldSize)
	assert.Equal(t, 3, byColor[0].NewSize)
	assert.Equal(t, 2, byColor[4].OldSize)
	assert.Equal(t, 1, byColor[4].NewSize)
}

func TestAnalyze_AppearedAndDisappeared(t *testing.T) {
	empty := [][]int{{0, 0}, {0, 0}}
	dotted := [][]int{{0, 0}, {0, 5}}

	res, err := Analyze(empty, dotted)
	require.NoError(t, err)
	require.Len(t, res.Transformations, 2)
	assert.Equal(t, Resized, res.Transformations[0].Kind) // background 4→3
	appeared := res.Transformations[1]
	assert.Equal(t, Appeared, appeared.Kind)
	assert.Nil(t, appeared.Before)
	assert.Equal(t, 5, appeared.After.Color)

	res, err = Analyze(dotted, empty)
	require.NoError(t, err)
	require.Len(t, res.Transformations, 2)
	kinds := []Kind{res.Transformations[0].Kind, res.Transformations[1].Kind}
	assert.Contains(t, kinds, Disappeared)
	for _, tr := range res.Transformations {
		if tr.Kind == Disappeared {
			assert.Equal(t, 5, tr.Before.Color)
			assert.Nil(t, tr.After)
		}
	}
}

func TestAnalyze_DimensionMismatch(t *testing.T) {
	_, err := Analyze([][]int{{0, 1}}, [][]int{{0}, {1}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// Malformed frames surface grid format errors, not the mismatch.
	_, err = Analyze([][]int{{0, 1}, {2}}, [][]int{{0, 1}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestAnalyze_OptionViolations(t *testing.T) {
	g := [][]int{{0}}
	_, err := Analyze(g, g, WithPaletteSize(0))
	assert.ErrorIs(t, err, ErrOptionViolation)
	_, err = Analyze(g, g, WithMatchRadius(-1))
	assert.ErrorIs(t, err, ErrOptionViolation)
}

// TestMatchComponents_ShapeIndependent verifies the exported
// correspondence step works across frames of differing shape, which the
// pixel delta cannot.
func TestMatchComponents_ShapeIndependent(t *testing.T) {
	ab, err := grid.Analyze([][]int{{0, 6, 0}})
	require.NoError(t, err)
	aa, err := grid.Analyze([][]int{{0, 0}, {6, 0}})
	require.NoError(t, err)

	trs, err := MatchComponents(ab.Components, aa.Components)
	require.NoError(t, err)
	var kinds []Kind
	for _, tr := range trs {
		if tr.Before != nil && tr.Before.Color == 6 || tr.After != nil && tr.After.Color == 6 {
			kinds = append(kinds, tr.Kind)
		}
	}
	assert.Equal(t, []Kind{Moved}, kinds, "the 6-cell translates from (0,1) to (1,0)")
}

func TestAnalyze_Deterministic(t *testing.T) {
	before := [][]int{{0, 1, 0, 2}, {1, 1, 0, 2}, {0, 0, 0, 0}}
	after := [][]int{{0, 0, 1, 2}, {0, 1, 1, 2}, {0, 0, 0, 0}}

	r1, err := Analyze(before, after)
	require.NoError(t, err)
	r2, err := Analyze(before, after)
	require.NoError(t, err)

	require.Equal(t, len(r1.Transformations), len(r2.Transformations))
	for i := range r1.Transformations {
		assert.Equal(t, r1.Transformations[i].Kind, r2.Transformations[i].Kind)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "recolored", Recolored.String())
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "resized", Resized.String())
	assert.Equal(t, "disappeared", Disappeared.String())
	assert.Equal(t, "appeared", Appeared.String())
}
