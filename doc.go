// Package gridsight turns raw color-grid game frames into structured,
// checkable facts — and checks free-text claims against them.
//
// 🚀 What is gridsight?
//
//	A deterministic, side-effect-free analysis library that brings together:
//		• grid/   — per-frame structure: color histogram & entropy, 4-connected
//		            components (color, size, bounds, centroid), symmetry flags
//		• delta/  — frame-to-frame change: pixel delta plus component
//		            correspondence (moved / resized / recolored / appeared /
//		            disappeared)
//		• coords/ — coordinate mentions extracted from free prose
//		• verify/ — natural-language claims grounded against computed facts
//
// ✨ Why choose gridsight?
//
//   - Deterministic – identical inputs always yield identical outputs,
//     down to component ordering and transformation ordering
//   - Pure – no I/O, no globals, no hidden caches; every call owns its
//     working memory, so concurrent callers need no coordination
//   - Honest – claims that cannot be grounded verify as false with an
//     explicit issue, never as "could not disprove"
//
// Data flows one way: raw grid(s) → grid.Analyze → (delta / verify consume
// its output); free text → coords.Extract independently. The surrounding
// agent loop, API clients, and any rendering or streaming live outside this
// module.
//
// Quick ASCII example:
//
//	    0 1 0          one 5-cell plus-shaped component of color 1,
//	    1 1 1    →     four 1-cell components of color 0,
//	    0 1 0          all five symmetry flags true.
//
// Dive into each package's doc.go for options, error sets, and complexity
// notes.
//
//	go get github.com/katalvlaran/gridsight
package gridsight
