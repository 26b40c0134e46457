// Package coords scans free text for coordinate mentions and returns
// validated integer pairs.
//
// What:
//
//   - Extract recognizes integer pairs in parenthesized form "(3, 4)" or
//     bare comma form "2,5", embedded anywhere in surrounding prose.
//   - Each match yields one Candidate carrying the pair exactly as
//     written plus its byte span, in order of first appearance. Repeated
//     mentions yield repeated candidates — repetition may carry emphasis
//     the caller wants to observe.
//
// Why:
//
//   - Agent loops: recover click targets from an LLM's narration.
//   - Claim checking: locate coordinate references inside statements.
//
// Behavior:
//
//   - Extract never fails: malformed or non-numeric content is simply not
//     matched, and a text with no pairs returns an empty slice.
//   - No deduplication and no bounds filtering — valid coordinate ranges
//     are game-specific and belong to the caller.
//
// Complexity:
//
//   - Extract: O(len(text)).
package coords
