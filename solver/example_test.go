package solver_test

import (
	"fmt"

	"github.com/katalvlaran/seedmin/builder"
	"github.com/katalvlaran/seedmin/solver"
)

// ExampleSolve searches a wheel under the Linear Threshold model. With
// r=0.3 one active hub is enough for every rim node.
func ExampleSolve() {
	g, err := builder.BuildGraph(nil, builder.Wheel(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := solver.DefaultOptions(solver.LinearThreshold)
	opts.Threshold = 0.3

	res, err := solver.Solve(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Phases {
		fmt.Printf("%s: seeds=%v spread=%.0f feasible=%t\n", p.Name, p.Seeds, p.Spread, p.Feasible)
	}
	// Output:
	// greedy: seeds=[0] spread=7 feasible=true
	// local-search: seeds=[0] spread=7 feasible=true
}
