// File: verify/example_test.go
package verify_test

import (
	"fmt"

	"github.com/katalvlaran/gridsight/grid"
	"github.com/katalvlaran/gridsight/verify"
)

// ExampleStatement demonstrates grounding an agent's narration against
// computed facts: the count claim checks out, the movement claim is a
// hallucination — both claimed cells are occupied simultaneously.
func ExampleStatement() {
	frame := [][]int{
		{0, 2, 0},
		{1, 1, 1},
		{0, 2, 0},
	}
	a, _ := grid.Analyze(frame)
	names := map[string]int{"blue": 2}

	ok := verify.Statement("There are 2 blue pixels",
		a.Components, verify.WithColorNames(names))
	fmt.Println("count claim verified:", ok.Verified)

	moved := verify.Statement("I moved the component from (0,1) to (2,1)",
		a.Components, verify.WithColorNames(names), verify.WithPriorFrame(frame))
	fmt.Println("movement claim verified:", moved.Verified)
	for _, issue := range moved.Issues {
		fmt.Println("issue:", issue)
	}

	// Output:
	// count claim verified: true
	// movement claim verified: false
	// issue: positions (0,1) and (2,1) both hold color 2 components in the current frame; they coexist rather than one having moved
}
