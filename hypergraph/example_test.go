package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/hygra/entity"
	"github.com/katalvlaran/hygra/hypergraph"
)

// ExampleNew builds a small hypergraph and walks its s-metrics.
func ExampleNew() {
	h, err := hypergraph.New(entity.FromMap(map[string][]string{
		"e1": {"1", "2"},
		"e2": {"1", "2"},
		"e3": {"1", "2", "3"},
	}))
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	nodes, edges := h.Shape()
	fmt.Printf("shape: %d nodes, %d edges\n", nodes, edges)

	nbrs, _ := h.Neighbors("1", 2)
	fmt.Println("2-neighbors of 1:", nbrs)

	comps, _ := h.SConnectedComponents(2, false, true)
	fmt.Println("2-components:", comps)

	// Output:
	// shape: 3 nodes, 3 edges
	// 2-neighbors of 1: [2]
	// 2-components: [[1 2] [3]]
}

// ExampleHypergraph_AddEdge shows write-through mutation: every derived
// answer reflects the new structure immediately.
func ExampleHypergraph_AddEdge() {
	h, _ := hypergraph.New(nil)

	h.AddEdge("breakfast", []string{"ada", "bob"})
	h.AddEdge("standup", []string{"bob", "cyd"})

	fmt.Println("edges:", h.EdgeList())
	fmt.Println("nodes:", h.NodeList())
	fmt.Println("distance ada→cyd:", h.Distance("ada", "cyd", 1))

	h.RemoveEdge("standup")
	fmt.Println("after removal:", h.NodeList())

	// Output:
	// edges: [breakfast standup]
	// nodes: [ada bob cyd]
	// distance ada→cyd: 2
	// after removal: [ada bob]
}

// ExampleHypergraph_Dual reverses the roles of edges and nodes.
func ExampleHypergraph_Dual() {
	h, _ := hypergraph.New(entity.FromMap(map[string][]string{
		"e1": {"a", "b"},
		"e2": {"b"},
	}))

	dual, err := h.Dual()
	if err != nil {
		fmt.Println("dual:", err)
		return
	}

	fmt.Println("edges:", dual.EdgeList())
	fmt.Println("b contains:", dual.IncidenceDict()["b"])

	// Output:
	// edges: [a b]
	// b contains: [e1 e2]
}
