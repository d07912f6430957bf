package rg

import (
	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
)

// Modularity computes Newman's Q for the given partition of g using the
// closed form Q = sum_c (e_cc - a_c^2), where e_ij is the fraction of edge
// endpoints running between clusters i and j and a_i = sum_j e_ij (spec §4.8
// / §3 "Modularity Q"). Self-loops do not contribute to either term.
func Modularity(g *graph.Graph, p *partition.Partition) float64 {
	n := g.NumNodes()
	m2 := 2 * g.M()
	if m2 == 0 {
		return 0
	}

	membership := p.Membership(n)
	c := len(p.Clusters)

	e := make([]map[int]float64, c)
	a := make([]float64, c)
	for i := range e {
		e[i] = make(map[int]float64)
	}

	for v := 0; v < n; v++ {
		cv := membership[v]
		for _, u := range g.Neighbors(v) {
			if u == v {
				continue
			}
			cu := membership[u]
			e[cv][cu] += 1.0 / m2
		}
	}

	q := 0.0
	for i := 0; i < c; i++ {
		for _, val := range e[i] {
			a[i] += val
		}
	}
	for i := 0; i < c; i++ {
		q += e[i][i] - a[i]*a[i]
	}
	return q
}
