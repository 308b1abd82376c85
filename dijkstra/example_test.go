// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest costs on a simple triangle.
func ExampleDijkstra_triangle() {
	adj := map[string][]dijkstra.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 5}},
		"B": {{To: "A", Cost: 1}, {To: "C", Cost: 2}},
		"C": {{To: "A", Cost: 5}, {To: "B", Cost: 2}},
	}
	next := func(s string) []dijkstra.Edge[string] { return adj[s] }

	res, err := dijkstra.Dijkstra([]string{"A"}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", res.Dist["A"], res.Dist["B"], res.Dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleOptimalStates collects every state on some cheapest path from S to G.
func ExampleOptimalStates() {
	fwd := map[string][]dijkstra.Edge[string]{
		"S": {{To: "X", Cost: 2}, {To: "Y", Cost: 2}, {To: "Z", Cost: 1}},
		"X": {{To: "G", Cost: 1}},
		"Y": {{To: "G", Cost: 1}},
		"Z": {{To: "G", Cost: 5}},
	}
	back := map[string][]dijkstra.Edge[string]{}
	for u, es := range fwd {
		for _, e := range es {
			back[e.To] = append(back[e.To], dijkstra.Edge[string]{To: u, Cost: e.Cost})
		}
	}

	remaining, _ := dijkstra.Dijkstra([]string{"G"}, func(s string) []dijkstra.Edge[string] { return back[s] })
	states, _ := dijkstra.OptimalStates("S", func(s string) []dijkstra.Edge[string] { return fwd[s] }, remaining.Dist)
	fmt.Println(remaining.Dist["S"], states)
	// Output: 3 [S X Y G]
}
