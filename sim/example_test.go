package sim_test

import (
	"fmt"

	"lineagesim/sim"
	"lineagesim/tree"
)

// ExampleRun simulates a small bifurcating lineage and prints the shape of
// the resulting count matrix.
func ExampleRun() {
	res, err := sim.Run(sim.Config{
		Specs: []tree.BranchSpec{
			{Label: "root", Len: 4},
			{Label: "A", Parent: "root", Len: 6},
			{Label: "B", Parent: "root", Len: 6},
		},
		GeneCount: 25,
		Cells:     100,
		Seed:      42,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	cells, genes := res.Counts.Dims()
	fmt.Printf("cells=%d genes=%d branches=%d\n",
		cells, genes, res.Tree.NumBranches())
	// Output:
	// cells=100 genes=25 branches=3
}
