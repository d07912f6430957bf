package rg

import (
	"math"
	"testing"

	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
)

func TestModularityOfSingleClusterIsZero(t *testing.T) {
	g := triangle()
	p := partition.New([]partition.Cluster{{0, 1, 2}})
	q := Modularity(g, p)
	if math.Abs(q) > 1e-9 {
		t.Errorf("Modularity() of the all-in-one partition = %v, want 0", q)
	}
}

func TestModularityOfZeroEdgeGraphIsZero(t *testing.T) {
	g := graph.New(3)
	p := partition.Singletons(3)
	if q := Modularity(g, p); q != 0 {
		t.Errorf("Modularity() of a zero-edge graph = %v, want 0", q)
	}
}

func TestModularityOfTwoTrianglesPrefersSplit(t *testing.T) {
	g := graph.New(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		g.AddEdge(e[0], e[1])
	}

	split := partition.New([]partition.Cluster{{0, 1, 2}, {3, 4, 5}})
	merged := partition.New([]partition.Cluster{{0, 1, 2, 3, 4, 5}})

	qSplit := Modularity(g, split)
	qMerged := Modularity(g, merged)

	if qSplit <= qMerged {
		t.Errorf("Q(split)=%v should exceed Q(merged)=%v for two disjoint triangles", qSplit, qMerged)
	}
}

func TestModularityIsBoundedAboveByOne(t *testing.T) {
	g := triangle()
	p := partition.Singletons(3)
	if q := Modularity(g, p); q > 1.0+1e-9 {
		t.Errorf("Modularity() = %v, want <= 1", q)
	}
}
