// Package verify grounds free-text claims about grid state against
// computed component facts and reports pass/fail with reasons.
//
// What:
//
//   - Statement decomposes a claim into a closed set of recognizable
//     shapes — positional ("the red component is at (2,3)"), count
//     ("there are 4 blue pixels"), movement ("I moved the component from
//     (0,1) to (2,1)") — and checks each against the supplied components.
//   - ParseClaims exposes the decomposition step so the recognized shapes
//     stay enumerable and testable.
//   - Verification is a conjunction over every recognized claim; there is
//     no partial credit.
//
// Why:
//
//   - Agent loops: catch hallucinated beliefs before acting on them.
//     A claim that cannot be grounded verifies as false with an explicit
//     issue — "could not disprove" is never reported as "true".
//
// Policies (held fixed for testability):
//
//   - Positional and movement endpoints check containment in a matching
//     component's bounding box, not top-left equality.
//   - Count claims count cells of the resolved color, not components.
//   - Color names resolve through the caller-supplied WithColorNames map;
//     there is no process-wide palette registry, so concurrent callers
//     with different palettes cannot interfere.
//
// Errors:
//
// Statement never returns a Go error: unresolvable references (unknown
// color name, missing prior frame) are soft failures surfaced as Result
// issues, so a caller's decision loop degrades instead of aborting.
//
// Complexity:
//
//   - Statement: O(len(text) + K·N) for K claims over N components, plus
//     one delta correspondence when a movement claim has a prior frame.
package verify
