package delta

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/gridsight/grid"
)

// Analyze validates both frames, counts changed cells, and derives the
// component transformations between them.
// Returns a grid format error if either frame is malformed, or
// ErrDimensionMismatch (wrapped with both shapes) when the frames differ
// in shape — the two frames may each be individually well-formed, so this
// is a distinct failure mode.
//
// Time: O(R×C + B·A) for B before- and A after-components.
func Analyze(before, after [][]int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ab, err := grid.Analyze(before, grid.WithPaletteSize(o.PaletteSize))
	if err != nil {
		return nil, fmt.Errorf("before frame: %w", err)
	}
	aa, err := grid.Analyze(after, grid.WithPaletteSize(o.PaletteSize))
	if err != nil {
		return nil, fmt.Errorf("after frame: %w", err)
	}
	if ab.Rows != aa.Rows || ab.Cols != aa.Cols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, ab.Rows, ab.Cols, aa.Rows, aa.Cols)
	}

	changed := 0
	for r := 0; r < ab.Rows; r++ {
		for c := 0; c < ab.Cols; c++ {
			if before[r][c] != after[r][c] {
				changed++
			}
		}
	}

	radius := o.MatchRadius
	if radius == 0 {
		radius = math.Hypot(float64(ab.Rows), float64(ab.Cols)) / 2
	}

	return &Result{
		PixelsChanged:   changed,
		Transformations: match(ab.Components, aa.Components, radius),
	}, nil
}

// MatchComponents runs the correspondence step over two component lists,
// independent of frame shape. Callers that already hold per-frame
// analyses (claim verification, history replays) use this to skip the
// pixel delta, which is the only part requiring equal dimensions.
// The default match radius is derived from the union of both lists'
// bounding boxes when WithMatchRadius is not supplied.
func MatchComponents(before, after []grid.Component, opts ...Option) ([]Transformation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	radius := o.MatchRadius
	if radius == 0 {
		maxR, maxC := 0, 0
		for _, list := range [2][]grid.Component{before, after} {
			for _, comp := range list {
				if comp.Bounds.MaxRow+1 > maxR {
					maxR = comp.Bounds.MaxRow + 1
				}
				if comp.Bounds.MaxCol+1 > maxC {
					maxC = comp.Bounds.MaxCol + 1
				}
			}
		}
		radius = math.Hypot(float64(maxR), float64(maxC)) / 2
	}

	return match(before, after, radius), nil
}

// match resolves correspondences in five phases honoring the documented
// precedence: exact survival (omitted), recoloring on an identical
// footprint, translation, resize within radius, then leftovers. Before
// components are processed larger-first with a row-major top-left corner
// tie-break; output order is before-frame discovery order, then
// appearances in after-frame discovery order.
func match(before, after []grid.Component, radius float64) []Transformation {
	matchedB := make([]bool, len(before))
	matchedA := make([]bool, len(after))
	slots := make([]*Transformation, len(before))
	order := processOrder(before)

	// Phase 1: exact survivals — same color, size, and bounds.
	for _, i := range order {
		for j := range after {
			if matchedA[j] {
				continue
			}
			if before[i].Color == after[j].Color &&
				before[i].Size == after[j].Size &&
				before[i].Bounds == after[j].Bounds {
				matchedB[i], matchedA[j] = true, true
				break
			}
		}
	}

	// Phase 2: recoloring — identical footprint, different color.
	for _, i := range order {
		if matchedB[i] {
			continue
		}
		for j := range after {
			if matchedA[j] || after[j].Color == before[i].Color {
				continue
			}
			if before[i].Size == after[j].Size && before[i].Bounds == after[j].Bounds {
				matchedB[i], matchedA[j] = true, true
				slots[i] = &Transformation{
					Kind:     Recolored,
					Before:   &before[i],
					After:    &after[j],
					OldColor: before[i].Color,
					NewColor: after[j].Color,
				}
				break
			}
		}
	}

	// Phase 3: translation — same color, size, and box dimensions.
	for _, i := range order {
		if matchedB[i] {
			continue
		}
		b := &before[i]
		best := nearest(after, matchedA, b, func(a *grid.Component) bool {
			return a.Size == b.Size &&
				a.Bounds.Width() == b.Bounds.Width() &&
				a.Bounds.Height() == b.Bounds.Height()
		}, math.Inf(1))
		if best >= 0 {
			a := &after[best]
			matchedB[i], matchedA[best] = true, true
			slots[i] = &Transformation{
				Kind:     Moved,
				Before:   b,
				After:    a,
				DeltaRow: a.Bounds.MinRow - b.Bounds.MinRow,
				DeltaCol: a.Bounds.MinCol - b.Bounds.MinCol,
			}
		}
	}

	// Phase 4: resize — same color, nearest centroid within radius.
	for _, i := range order {
		if matchedB[i] {
			continue
		}
		b := &before[i]
		best := nearest(after, matchedA, b, func(*grid.Component) bool { return true }, radius)
		if best >= 0 {
			a := &after[best]
			matchedB[i], matchedA[best] = true, true
			slots[i] = &Transformation{
				Kind:    Resized,
				Before:  b,
				After:   a,
				OldSize: b.Size,
				NewSize: a.Size,
			}
		}
	}

	// Phase 5: leftovers on both sides.
	for i := range before {
		if !matchedB[i] {
			slots[i] = &Transformation{Kind: Disappeared, Before: &before[i]}
		}
	}

	var out []Transformation
	for _, tr := range slots {
		if tr != nil {
			out = append(out, *tr)
		}
	}
	for j := range after {
		if !matchedA[j] {
			out = append(out, Transformation{Kind: Appeared, After: &after[j]})
		}
	}

	return out
}

// nearest picks the unmatched same-color candidate passing ok with the
// smallest centroid distance not exceeding maxDist. Equal distances break
// on the lower row-major top-left bounding corner.
func nearest(after []grid.Component, matchedA []bool, b *grid.Component,
	ok func(*grid.Component) bool, maxDist float64) int {
	best, bestD := -1, math.Inf(1)
	for j := range after {
		if matchedA[j] || after[j].Color != b.Color || !ok(&after[j]) {
			continue
		}
		d := r2.Norm(r2.Sub(after[j].Centroid, b.Centroid))
		if d > maxDist {
			continue
		}
		if d < bestD || (d == bestD && best >= 0 && cornerLess(after[j].Bounds, after[best].Bounds)) {
			best, bestD = j, d
		}
	}

	return best
}

// processOrder returns before-component indices sorted larger-first, with
// equal sizes broken by the lower row-major top-left bounding corner.
// Greedy matching consumes candidates in this order so ties resolve the
// same way on every run.
func processOrder(before []grid.Component) []int {
	order := make([]int, len(before))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		bi, bj := before[order[x]], before[order[y]]
		if bi.Size != bj.Size {
			return bi.Size > bj.Size
		}

		return cornerLess(bi.Bounds, bj.Bounds)
	})

	return order
}

// cornerLess orders bounding boxes by top-left corner, row-major.
func cornerLess(a, b grid.Bounds) bool {
	if a.MinRow != b.MinRow {
		return a.MinRow < b.MinRow
	}

	return a.MinCol < b.MinCol
}
