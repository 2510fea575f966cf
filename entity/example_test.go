package entity_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hygra/entity"
)

// ExampleNew builds a two-level store from a member map and inspects the
// derived groupings.
func ExampleNew() {
	e, err := entity.New(entity.FromMap(map[string][]string{
		"e1": {"1", "2"},
		"e2": {"1", "2"},
		"e3": {"1", "2", "3"},
	}))
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	nodes, _ := e.UIDSet(1)
	fmt.Println("nodes:", nodes)
	fmt.Println("rows:", e.NumRows())
	fmt.Println("memberships of 3:", e.Memberships()["3"])

	// Output:
	// nodes: [1 2 3]
	// rows: 7
	// memberships of 3: [e3]
}

// ExampleEntity_RestrictToLevels derives the dual view by swapping levels.
func ExampleEntity_RestrictToLevels() {
	e, _ := entity.New(entity.FromPairs([][2]string{
		{"e1", "a"}, {"e1", "b"}, {"e2", "b"},
	}))

	dual, err := e.RestrictToLevels([]int{1, 0})
	if err != nil {
		fmt.Println("restrict:", err)
		return
	}

	keys := make([]string, 0)
	elements := dual.Elements()
	for k := range elements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k, elements[k])
	}

	// Output:
	// a [e1]
	// b [e1 e2]
}
