// Package grid defines types, options, and sentinel errors for
// single-frame grid analysis.
package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for grid validation and analysis.
var (
	// ErrEmptyGrid indicates the input frame has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrColorOutOfRange indicates a cell value outside the declared palette.
	ErrColorOutOfRange = errors.New("grid: cell color outside declared palette")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// DefaultPaletteSize bounds cell values to 0..9 unless overridden.
// Callers whose game declares a 16-color palette pass WithPaletteSize(16).
const DefaultPaletteSize = 10

// Options holds tunable parameters for Analyze.
type Options struct {
	// PaletteSize declares the valid color range as 0..PaletteSize-1.
	PaletteSize int

	err error // first option violation, surfaced by Analyze
}

// Option configures analysis via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Analyze is invoked.
type Option func(*Options)

// DefaultOptions returns Options with PaletteSize=DefaultPaletteSize.
func DefaultOptions() Options {
	return Options{PaletteSize: DefaultPaletteSize}
}

// WithPaletteSize declares the caller's valid color range as 0..n-1.
// n must be at least 1.
func WithPaletteSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: palette size %d", ErrOptionViolation, n)
			return
		}
		o.PaletteSize = n
	}
}

// Bounds is the inclusive bounding box of a component.
type Bounds struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Contains reports whether cell (r, c) lies inside the box.
// Complexity: O(1).
func (b Bounds) Contains(r, c int) bool {
	return r >= b.MinRow && r <= b.MaxRow && c >= b.MinCol && c <= b.MaxCol
}

// Translated returns the box shifted by (dr, dc).
// Complexity: O(1).
func (b Bounds) Translated(dr, dc int) Bounds {
	return Bounds{
		MinRow: b.MinRow + dr, MinCol: b.MinCol + dc,
		MaxRow: b.MaxRow + dr, MaxCol: b.MaxCol + dc,
	}
}

// Width returns the number of columns the box spans.
func (b Bounds) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the number of rows the box spans.
func (b Bounds) Height() int { return b.MaxRow - b.MinRow + 1 }

// Component is a maximal 4-connected region of same-colored cells.
type Component struct {
	// Color is the shared cell value of the region.
	Color int

	// Size is the number of member cells.
	Size int

	// Bounds is the inclusive bounding box over member cells.
	Bounds Bounds

	// Centroid is the arithmetic mean position of member cells,
	// with X = mean column and Y = mean row.
	Centroid r2.Vec

	// Cells lists member cells as {row, col} in discovery order.
	Cells [][2]int
}

// Symmetry records five independently evaluated exact-equality checks of
// the frame against a transformed copy of itself.
type Symmetry struct {
	// Horizontal: each row reads the same with its column order reversed.
	Horizontal bool

	// Vertical: the frame reads the same with its row order reversed.
	Vertical bool

	// Diagonal: the frame equals its transpose. False for non-square
	// frames, whose transpose cannot share their shape.
	Diagonal bool

	// AntiDiagonal: the frame equals its anti-diagonal transpose.
	// False for non-square frames.
	AntiDiagonal bool

	// Rotation180: the frame equals itself rotated 180°, computable for
	// any shape.
	Rotation180 bool
}

// Score returns the fraction of the five flags set, in [0,1].
// A convenience for callers ranking frames; not itself a symmetry fact.
func (s Symmetry) Score() float64 {
	n := 0
	for _, f := range [5]bool{s.Horizontal, s.Vertical, s.Diagonal, s.AntiDiagonal, s.Rotation180} {
		if f {
			n++
		}
	}

	return float64(n) / 5
}

// Analysis is the full structural report for one frame.
type Analysis struct {
	// Rows and Cols are the frame dimensions.
	Rows, Cols int

	// ColorCounts is the histogram of cell values present in the frame.
	ColorCounts map[int]int

	// Entropy is the Shannon entropy of the color distribution, in bits.
	Entropy float64

	// Components partition the frame's cells exactly once, in
	// deterministic left-to-right, top-to-bottom discovery order.
	Components []Component

	// Symmetry holds the five symmetry flags.
	Symmetry Symmetry
}
