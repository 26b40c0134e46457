package verify

import (
	"strings"

	"github.com/katalvlaran/gridsight/delta"
	"github.com/katalvlaran/gridsight/grid"
)

// Statement grounds every recognized claim in text against components and
// returns the conjunction verdict. It never returns a Go error: unknown
// color names, a missing prior frame, and unparseable prose all degrade
// to Verified=false with an explanatory issue, so the caller's decision
// loop keeps running on a false belief flagged as false.
//
// Time: O(len(text) + K·N) for K claims over N components.
func Statement(text string, components []grid.Component, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Verified: true}
	if o.err != nil {
		res.fail("%v", o.err)

		return res
	}

	for _, claim := range ParseClaims(text) {
		switch claim.Kind {
		case ClaimCount:
			checkCount(res, claim, components, o)
		case ClaimPositional:
			checkPositional(res, claim, components, o)
		case ClaimMovement:
			checkMovement(res, claim, components, o)
		default:
			res.fail("unverifiable claim: %s", claim.Reason)
		}
	}

	return res
}

// resolveColor maps a claimed color name to its index, case-insensitively.
func resolveColor(name string, o Options) (int, bool) {
	for n, idx := range o.ColorNames {
		if strings.EqualFold(n, name) {
			return idx, true
		}
	}

	return 0, false
}

// checkCount compares the claimed number against the total cell count of
// the resolved color (sum of component sizes, not component count).
func checkCount(res *Result, claim Claim, components []grid.Component, o Options) {
	color, ok := resolveColor(claim.ColorName, o)
	if !ok {
		res.fail("unknown color name: %s", claim.ColorName)

		return
	}

	actual := 0
	for _, c := range components {
		if c.Color == color {
			actual += c.Size
		}
	}
	if actual != claim.Count {
		res.fail("claimed %d %s cells, found %d", claim.Count, claim.ColorName, actual)
	}
}

// checkPositional verifies that some component of the resolved color
// contains the claimed coordinate in its bounding box.
func checkPositional(res *Result, claim Claim, components []grid.Component, o Options) {
	color, ok := resolveColor(claim.ColorName, o)
	if !ok {
		res.fail("unknown color name: %s", claim.ColorName)

		return
	}

	for _, c := range components {
		if c.Color == color && c.Bounds.Contains(claim.Row, claim.Col) {
			return
		}
	}
	res.fail("no %s component at (%d,%d)", claim.ColorName, claim.Row, claim.Col)
}

// checkMovement verifies a relocation claim against the component
// correspondence between the prior frame and the current components.
// Verified only when a moved record's source bounds contain the claimed
// origin and its destination bounds contain the claimed target; two
// coexisting stationary occupants of both endpoints are reported as an
// inconsistency, not a relocation.
func checkMovement(res *Result, claim Claim, components []grid.Component, o Options) {
	if !o.hasPrior {
		res.fail("no prior frame supplied; cannot verify movement")

		return
	}

	prior, err := grid.Analyze(o.Prior, grid.WithPaletteSize(o.PaletteSize))
	if err != nil {
		res.fail("prior frame invalid: %v", err)

		return
	}

	color, colorKnown := -1, false
	if claim.ColorName != "" {
		if color, colorKnown = resolveColor(claim.ColorName, o); !colorKnown {
			res.fail("unknown color name: %s", claim.ColorName)

			return
		}
	}

	trs, err := delta.MatchComponents(prior.Components, components)
	if err != nil {
		res.fail("%v", err)

		return
	}
	for _, tr := range trs {
		if tr.Kind != delta.Moved {
			continue
		}
		if colorKnown && tr.Before.Color != color {
			continue
		}
		if tr.Before.Bounds.Contains(claim.FromRow, claim.FromCol) &&
			tr.After.Bounds.Contains(claim.ToRow, claim.ToCol) {
			return
		}
	}

	// No matching relocation. If both endpoints are occupied by
	// same-colored stationary components right now, the claim describes
	// two coexisting components, not a move. Components that took part in
	// any transformation are not stationary and cannot witness this.
	moving := make(map[*grid.Component]bool, len(trs))
	for _, tr := range trs {
		if tr.After != nil {
			moving[tr.After] = true
		}
	}
	from := occupant(components, claim.FromRow, claim.FromCol, color, colorKnown)
	to := occupant(components, claim.ToRow, claim.ToCol, color, colorKnown)
	if from != nil && to != nil && from.Color == to.Color && !moving[from] && !moving[to] {
		res.fail("positions (%d,%d) and (%d,%d) both hold color %d components in the current frame; they coexist rather than one having moved",
			claim.FromRow, claim.FromCol, claim.ToRow, claim.ToCol, from.Color)

		return
	}
	res.fail("no movement from (%d,%d) to (%d,%d) detected",
		claim.FromRow, claim.FromCol, claim.ToRow, claim.ToCol)
}

// occupant returns a component whose bounds contain (r, c), restricted to
// color when the claim named one; nil when the cell is uncovered.
func occupant(components []grid.Component, r, c, color int, colorKnown bool) *grid.Component {
	for i := range components {
		if colorKnown && components[i].Color != color {
			continue
		}
		if components[i].Bounds.Contains(r, c) {
			return &components[i]
		}
	}

	return nil
}
