package rg

import (
	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
	"github.com/gilchrisn/rgcluster/pkg/prand"
)

// ensembleSampleSize is the sample size CGGC's member RG runs use. The core
// groups scheme works over many cheap, highly randomized runs rather than
// few thorough ones, so each member run samples a single row per step.
const ensembleSampleSize = 1

// runRG performs one full randomized-greedy clustering from singletons and
// returns the partition at the run's best prefix (spec §4.3/§4.4, "From
// singletons"). It is the building block both ClusterRG and the CGGC
// ensemble use.
func runRG(g *graph.Graph, sampleSize int, src prand.Source) *partition.Partition {
	result := PerformJoins(g, sampleSize, src)
	return BuildPartition(g.NumNodes(), nil, result.Joins, result.BestStep)
}

// ClusterRG runs `runs` independent randomized-greedy clusterings with
// sample size k, keeps the highest-modularity result, and refines it (spec
// §6, "cluster_rg(graph, k, runs)").
func ClusterRG(g *graph.Graph, k, runs int, src prand.Source) *partition.Partition {
	best := runRG(g, k, src)
	bestQ := Modularity(g, best)

	for i := 1; i < runs; i++ {
		candidate := runRG(g, k, src)
		if q := Modularity(g, candidate); q > bestQ {
			best = candidate
			bestQ = q
		}
	}

	return Refine(g, best)
}

// ClusterCGGC runs the Core Groups Graph Clustering ensemble (spec §4.5):
// initClusters independent RG runs are intersected down to a core groups
// partition, optionally refined by iterative restart rounds, then handed to
// a final restart join pass and a vertex-move refinement pass.
func ClusterCGGC(g *graph.Graph, initClusters, restartK int, iterative bool, src prand.Source) *partition.Partition {
	n := g.NumNodes()

	core := runRG(g, ensembleSampleSize, src)
	for i := 1; i < initClusters; i++ {
		next := runRG(g, ensembleSampleSize, src)
		core = partition.Intersect(core, next, n)
	}

	if iterative {
		curQ := Modularity(g, core)
		lastQ := 0.0
		for curQ-lastQ > 0.0001 {
			member := PerformJoinsRestart(g, core, 1, src)
			ensemble := BuildPartition(n, core, member.Joins, member.BestStep)
			for i := 1; i < initClusters; i++ {
				next := PerformJoinsRestart(g, core, 1, src)
				nextPartition := BuildPartition(n, core, next.Joins, next.BestStep)
				ensemble = partition.Intersect(ensemble, nextPartition, n)
			}

			lastQ = curQ
			curQ = Modularity(g, ensemble)
			if curQ > lastQ {
				core = ensemble
			}
		}
	}

	final := PerformJoinsRestart(g, core, restartK, src)
	result := BuildPartition(n, core, final.Joins, final.BestStep)
	return Refine(g, result)
}
