// Package verify defines the closed claim model, options, and result
// types for statement verification.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsight/grid"
)

// ErrOptionViolation is surfaced as a Result issue when an invalid
// Option is supplied; Statement itself never returns a Go error.
var ErrOptionViolation = errors.New("verify: invalid option supplied")

// ClaimKind enumerates the closed set of recognizable claim shapes.
// Anything outside the set is ClaimUnresolvable — the verifier refuses
// best-effort guessing on prose it cannot ground.
type ClaimKind int

const (
	// ClaimUnresolvable: no recognizable factual assertion.
	ClaimUnresolvable ClaimKind = iota
	// ClaimPositional: a named color's component is at a coordinate.
	ClaimPositional
	// ClaimCount: there are N cells of a named color.
	ClaimCount
	// ClaimMovement: a component moved from one coordinate to another.
	ClaimMovement
)

// String returns the lower-case name of the claim kind.
func (k ClaimKind) String() string {
	switch k {
	case ClaimPositional:
		return "positional"
	case ClaimCount:
		return "count"
	case ClaimMovement:
		return "movement"
	case ClaimUnresolvable:
		return "unresolvable"
	default:
		return fmt.Sprintf("ClaimKind(%d)", int(k))
	}
}

// Claim is one recognized assertion extracted from a statement.
// Kind selects which fields are meaningful.
type Claim struct {
	Kind ClaimKind

	// Text is the matched span (the whole statement for unresolvable).
	Text string

	// ColorName is the claimed color for positional/count claims, and
	// optionally for movement claims; empty when the statement names no
	// color.
	ColorName string

	// Count is the claimed cell count for count claims.
	Count int

	// Row, Col hold the claimed coordinate for positional claims.
	Row, Col int

	// FromRow, FromCol, ToRow, ToCol hold movement endpoints.
	FromRow, FromCol int
	ToRow, ToCol     int

	// Reason explains why an unresolvable claim cannot be grounded.
	Reason string
}

// Result reports the verdict for one statement.
type Result struct {
	// Verified is true only when every recognized claim checked out.
	Verified bool

	// Issues explains each mismatch, in claim order.
	Issues []string
}

// fail records an issue and forces the verdict false.
func (r *Result) fail(format string, args ...any) {
	r.Verified = false
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// Options holds the externally supplied context for verification.
type Options struct {
	// ColorNames maps lower-case color names to color indices. The map
	// is an argument, never a package-level registry.
	ColorNames map[string]int

	// Prior is the previous frame, required by movement claims.
	Prior [][]int

	// PaletteSize declares the valid color range for prior-frame
	// validation.
	PaletteSize int

	hasPrior bool
	err      error
}

// Option configures verification via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no color names, no prior frame,
// and the default palette.
func DefaultOptions() Options {
	return Options{PaletteSize: grid.DefaultPaletteSize}
}

// WithColorNames supplies the name→index mapping used to resolve color
// words. Keys are matched case-insensitively.
func WithColorNames(names map[string]int) Option {
	return func(o *Options) {
		o.ColorNames = names
	}
}

// WithPriorFrame supplies the previous frame, enabling movement claims.
func WithPriorFrame(cells [][]int) Option {
	return func(o *Options) {
		o.Prior = cells
		o.hasPrior = true
	}
}

// WithPaletteSize declares the valid color range as 0..n-1 for
// prior-frame validation. n must be at least 1.
func WithPaletteSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: palette size %d", ErrOptionViolation, n)
			return
		}
		o.PaletteSize = n
	}
}
