package rg

import (
	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
)

// Refine runs the single-vertex-move local search pass over p (spec §4.7):
// repeatedly scan every vertex and move it into whichever neighboring
// cluster (including staying put) maximizes the Louvain-style delta Q,
// moving only on strict improvement, until a full sweep makes zero moves.
//
// Unlike the join driver, refinement is entirely deterministic given a
// vertex order; it consults no random source.
func Refine(g *graph.Graph, p *partition.Partition) *partition.Partition {
	n := g.NumNodes()
	clustermap := p.Membership(n)
	numClusters := len(p.Clusters)

	clusterdegree := make([]float64, numClusters)
	for v := 0; v < n; v++ {
		clusterdegree[clustermap[v]] += float64(g.Degree(v))
	}

	m := g.M()
	if m == 0 {
		return p.Clone()
	}

	for {
		moved := false
		for v := 0; v < n; v++ {
			cur := clustermap[v]
			degV := float64(g.Degree(v))

			links := make(map[int]float64)
			for _, u := range g.Neighbors(v) {
				if u == v {
					continue
				}
				links[clustermap[u]]++
			}

			bestC := cur
			bestDeltaQ := 0.0
			linksCur := links[cur]

			for c, linksC := range links {
				if c == cur {
					continue
				}
				term1 := (linksC - linksCur) / m
				term2 := ((clusterdegree[c] - clusterdegree[cur]) + degV) * degV / (2 * m * m)
				deltaQ := term1 - term2

				if deltaQ > bestDeltaQ || (deltaQ == bestDeltaQ && bestC != cur && c < bestC) {
					bestDeltaQ = deltaQ
					bestC = c
				}
			}

			if bestC != cur {
				clusterdegree[cur] -= degV
				clusterdegree[bestC] += degV
				clustermap[v] = bestC
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	out := make([]partition.Cluster, numClusters)
	for v := 0; v < n; v++ {
		c := clustermap[v]
		out[c] = append(out[c], v)
	}

	result := partition.New(out)
	result.Compact()
	return result
}
