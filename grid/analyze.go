package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Analyze validates cells against the declared palette and computes the
// full structural report: histogram, entropy, components, symmetry.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrColorOutOfRange (each
// wrapped with the row/cell at fault) for malformed input, or
// ErrOptionViolation for a bad option. The input is never mutated and
// never repaired.
//
// Time: O(R×C), Memory: O(R×C).
func Analyze(cells [][]int, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := Validate(cells, o.PaletteSize); err != nil {
		return nil, err
	}

	rows, cols := len(cells), len(cells[0])
	counts := histogram(cells)

	return &Analysis{
		Rows:        rows,
		Cols:        cols,
		ColorCounts: counts,
		Entropy:     entropyBits(counts, rows*cols),
		Components:  components(cells),
		Symmetry:    symmetry(cells),
	}, nil
}

// Validate checks that cells form a non-empty rectangle whose values all
// lie in 0..paletteSize-1. Returns a wrapped sentinel naming the row or
// cell at fault; nil when the frame is well-formed.
// Complexity: O(R×C).
func Validate(cells [][]int, paletteSize int) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 || v >= paletteSize {
				return fmt.Errorf("%w: value %d at cell (%d,%d), palette 0..%d",
					ErrColorOutOfRange, v, r, c, paletteSize-1)
			}
		}
	}

	return nil
}

// histogram counts occurrences of each cell value present in the frame.
func histogram(cells [][]int) map[int]int {
	counts := make(map[int]int)
	for _, row := range cells {
		for _, v := range row {
			counts[v]++
		}
	}

	return counts
}

// entropyBits computes the Shannon entropy of the color histogram in bits.
// Probabilities are accumulated in ascending color order so the floating
// sum is reproducible across calls. A single-color frame yields 0; a
// uniform distribution over k colors yields log2(k).
func entropyBits(counts map[int]int, total int) float64 {
	colors := make([]int, 0, len(counts))
	for v := range counts {
		colors = append(colors, v)
	}
	sort.Ints(colors)

	p := make([]float64, len(colors))
	for i, v := range colors {
		p[i] = float64(counts[v]) / float64(total)
	}

	// stat.Entropy reports nats; convert to bits.
	return stat.Entropy(p) / math.Ln2
}
