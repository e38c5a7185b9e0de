package clustermap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/clustermap"
)

// ExampleReadTree parses a hierarchical partition and prints each node's
// position in the module tree.
func ExampleReadTree() {
	data := `# Codelength = 3.46227314 bits.
1:1:1 0.0384615 "1" 1
1:1:2 0.025641 "2" 2
1:2:1 0.0384615 "4" 4
`
	res, err := clustermap.ReadTree(strings.NewReader(data), clustermap.WithFlow())
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}

	fmt.Println(res.Header)
	for _, np := range res.NodePaths {
		fmt.Printf("state %d → path %v flow %g\n", np.StateID, np.Path, res.FlowData[np.StateID])
	}

	// Output:
	// # Codelength = 3.46227314 bits.
	// state 1 → path [1 1 1] flow 0.0384615
	// state 2 → path [1 1 2] flow 0.025641
	// state 4 → path [1 2 1] flow 0.0384615
}

// ExampleReadClu parses a flat partition in multilayer mode: state ids are
// rewritten through the caller's (layer, node) → state index, and the record
// whose pair is unknown is silently dropped.
func ExampleReadClu() {
	idx := clustermap.MultilayerIndex{
		2: {10: 42},
	}
	data := `5 3 0.1 10 2
6 4 0.2 99 7
`
	res, err := clustermap.ReadClu(strings.NewReader(data),
		clustermap.WithFlow(), clustermap.WithMultilayerIndex(idx))
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}

	fmt.Println("module of state 42:", res.ClusterIDs[42])
	fmt.Println("flow of state 42:", res.FlowData[42])
	fmt.Println("records kept:", len(res.ClusterIDs))

	// Output:
	// module of state 42: 3
	// flow of state 42: 0.1
	// records kept: 1
}
