// Package delta defines types, options, and sentinel errors for
// frame-to-frame change analysis.
package delta

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsight/grid"
)

// Sentinel errors for delta analysis.
var (
	// ErrDimensionMismatch indicates the two frames differ in shape, so a
	// pixel delta is meaningless.
	ErrDimensionMismatch = errors.New("delta: frames must share dimensions")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("delta: invalid option supplied")
)

// Kind enumerates the closed set of component transformations.
type Kind int

const (
	// Recolored: identical bounds and size, different color.
	Recolored Kind = iota
	// Moved: same color and size, bounding box translated by a constant
	// (DeltaRow, DeltaCol).
	Moved
	// Resized: same color, differing size/bounds, nearest centroid within
	// the match radius.
	Resized
	// Disappeared: a before-frame component with no counterpart.
	Disappeared
	// Appeared: an after-frame component with no counterpart.
	Appeared
)

// String returns the lower-case name of the transformation kind.
func (k Kind) String() string {
	switch k {
	case Recolored:
		return "recolored"
	case Moved:
		return "moved"
	case Resized:
		return "resized"
	case Disappeared:
		return "disappeared"
	case Appeared:
		return "appeared"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Transformation names a correspondence between a before-frame component
// and an after-frame component, or an appearance/disappearance.
type Transformation struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind

	// Before is the prior-frame component; nil for Appeared.
	Before *grid.Component

	// After is the current-frame component; nil for Disappeared.
	After *grid.Component

	// DeltaRow and DeltaCol hold the translation for Moved.
	DeltaRow, DeltaCol int

	// OldSize and NewSize hold the cell counts for Resized.
	OldSize, NewSize int

	// OldColor and NewColor hold the colors for Recolored.
	OldColor, NewColor int
}

// Result is the full change report between two frames.
type Result struct {
	// PixelsChanged counts cell positions whose color differs.
	PixelsChanged int

	// Transformations lists component correspondences in deterministic
	// order: before-frame discovery order first, then appearances in
	// after-frame discovery order. Exact survivals are omitted.
	Transformations []Transformation
}

// Options holds tunable parameters for Analyze and MatchComponents.
type Options struct {
	// PaletteSize declares the valid color range for frame validation.
	PaletteSize int

	// MatchRadius is the maximum centroid distance for resize
	// correspondence. Zero selects the default of half the frame
	// diagonal (derived from component bounds in MatchComponents).
	MatchRadius float64

	err error
}

// Option configures delta analysis via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the default palette and an
// auto-derived match radius.
func DefaultOptions() Options {
	return Options{PaletteSize: grid.DefaultPaletteSize}
}

// WithPaletteSize declares the valid color range as 0..n-1 for both
// frames. n must be at least 1.
func WithPaletteSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: palette size %d", ErrOptionViolation, n)
			return
		}
		o.PaletteSize = n
	}
}

// WithMatchRadius sets the centroid distance cutoff for resize
// correspondence. d must be positive.
func WithMatchRadius(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: match radius %v", ErrOptionViolation, d)
			return
		}
		o.MatchRadius = d
	}
}
