// Package grid computes structural facts about a single color-grid frame:
// color histogram and Shannon entropy, 4-connected components, and
// symmetry flags.
//
// What:
//
//   - Analyze validates a rectangular [][]int frame against a declared
//     palette and returns an Analysis.
//   - Components are maximal 4-connected (von Neumann) regions of one color;
//     every cell belongs to exactly one component, background and single
//     cells included, reported in deterministic left-to-right,
//     top-to-bottom discovery order.
//   - Entropy is the Shannon information of the empirical color
//     distribution, in bits.
//   - Symmetry evaluates five independent flags: horizontal mirror,
//     vertical mirror, main-diagonal transpose, anti-diagonal transpose,
//     and 180° rotation. The two transpose flags are false by definition
//     for non-square frames.
//
// Why:
//
//   - Agent loops: ground an automated player's beliefs in computed facts.
//   - Frame diffing: delta analysis consumes per-frame component lists.
//   - Claim checking: verify resolves color claims against components.
//
// Complexity:
//
//   - Analyze: O(R×C) time, O(R×C) memory.
//
// Options:
//
//   - WithPaletteSize(n): declare valid cell values as 0..n-1 (default 10).
//
// Errors:
//
//   - ErrEmptyGrid: frame has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrColorOutOfRange: a cell value lies outside the declared palette.
//   - ErrOptionViolation: an invalid option value was supplied.
//
// Every call is a fresh computation over its arguments; results are never
// cached or shared, so concurrent callers need no coordination.
package grid
