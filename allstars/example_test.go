package allstars_test

import (
	"fmt"

	"github.com/katalvlaran/optpath/allstars"
	"github.com/katalvlaran/optpath/astar"
)

// ExampleAllOptimalPaths lists every cheapest way across a small town where
// two routes tie. Paths to one goal come in the order their last step was found.
func ExampleAllOptimalPaths() {
	streets := map[string][]astar.Edge[string, int]{
		"home":   {{To: "bakery", Cost: 2}, {To: "park", Cost: 1}},
		"bakery": {{To: "office", Cost: 2}},
		"park":   {{To: "office", Cost: 3}, {To: "mall", Cost: 9}},
	}
	next := func(s string) []astar.Edge[string, int] { return streets[s] }

	paths, err := allstars.AllOptimalPaths("home", next, astar.Zero[string, int](), astar.Target("office"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [home park office]
	// [home bakery office]
}
