package netgen_test

import (
	"fmt"

	"github.com/katalvlaran/netgen/netgen"
)

// ExampleGenerate builds a tiny maximum-flow problem and prints its arcs.
func ExampleGenerate() {
	p := netgen.Params{
		Nodes: 8, Sources: 2, Sinks: 2, Density: 8,
		MinCost: 1, MaxCost: 1, Supply: 20,
		CapacitatedPct: 100, MinCap: 5, MaxCap: 9,
	}
	res, err := netgen.Generate(42, p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Kind, res.NumArcs(), res.TotalSupply())
	for _, a := range res.Arcs[:3] {
		fmt.Printf("%d->%d cap=%d\n", a.From, a.To, a.Capacity)
	}
	// Output:
	// maximum flow 8 20
	// 1->4 cap=5
	// 3->5 cap=5
	// 4->3 cap=5
}

// ExampleParams_Kind shows the classification rules.
func ExampleParams_Kind() {
	asn := netgen.Params{Nodes: 100, Sources: 50, Sinks: 50, Density: 500, MinCost: 1, MaxCost: 10, Supply: 50}
	maxFlow := netgen.Params{Nodes: 100, Sources: 5, Sinks: 6, Density: 500, MinCost: 1, MaxCost: 1, Supply: 50}
	fmt.Println(asn.Kind().Token(), maxFlow.Kind().Token())
	// Output:
	// asn max
}
