// Package delta compares two temporally adjacent frames and reports
// pixel-level and component-level change.
//
// What:
//
//   - Analyze counts changed cells and derives component transformations
//     between a before-frame and an after-frame.
//   - MatchComponents exposes the correspondence step on its own, for
//     callers that already hold per-frame component lists.
//   - Transformations form a closed set: Recolored, Moved, Resized,
//     Disappeared, Appeared. Exact survivals (same color, size, and
//     bounding box) are omitted from the output.
//
// Why:
//
//   - Agent loops: confirm that an action changed the world the way the
//     agent believes it did.
//   - Claim checking: movement claims verify against Moved records.
//
// Matching:
//
// Correspondence is resolved per color class (recoloring is its own kind,
// detected on identical bounds before the move/resize fallthrough). Within
// a color class the assignment is greedy nearest-centroid, processing
// larger components first; ties break on the lower row-major top-left
// bounding corner. This is a deterministic heuristic, not an optimal
// bipartite matching — a minimum-cost assignment could replace it, but the
// greedy order keeps results stable and explainable.
//
// Complexity:
//
//   - Analyze: O(R×C + B·A) time for B before- and A after-components.
//
// Options:
//
//   - WithPaletteSize(n): forwarded to frame validation.
//   - WithMatchRadius(d): centroid distance cutoff for resize
//     correspondence (default: half the frame diagonal).
//
// Errors:
//
//   - ErrDimensionMismatch: pixel delta requested on frames of differing
//     shape. Distinct from the grid package's format errors — both frames
//     may individually be well-formed.
//   - ErrOptionViolation: an invalid option value was supplied.
package delta
