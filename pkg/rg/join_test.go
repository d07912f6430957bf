package rg

import (
	"testing"

	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
	"github.com/gilchrisn/rgcluster/pkg/prand"
)

func TestPerformJoinsOnEmptyGraph(t *testing.T) {
	g := graph.New(0)
	result := PerformJoins(g, 1, prand.New(1))
	if len(result.Joins) != 0 || result.BestStep != -1 {
		t.Errorf("PerformJoins on empty graph = %+v, want empty result", result)
	}
}

func TestPerformJoinsOnZeroEdgeGraphIsNoop(t *testing.T) {
	g := graph.New(4)
	result := PerformJoins(g, 1, prand.New(1))
	if len(result.Joins) != 0 {
		t.Errorf("PerformJoins on a zero-edge graph produced %d joins, want 0", len(result.Joins))
	}
}

func TestPerformJoinsProducesAtMostNMinusOneJoins(t *testing.T) {
	g := pathOfFour()
	result := PerformJoins(g, 1, prand.New(7))
	if len(result.Joins) > g.NumNodes()-1 {
		t.Errorf("PerformJoins produced %d joins, want <= %d", len(result.Joins), g.NumNodes()-1)
	}
}

func TestPerformJoinsIsDeterministicGivenSeed(t *testing.T) {
	g := pathOfFour()
	r1 := PerformJoins(g, 1, prand.New(42))
	r2 := PerformJoins(g, 1, prand.New(42))

	if r1.BestStep != r2.BestStep || len(r1.Joins) != len(r2.Joins) {
		t.Fatalf("two runs with the same seed diverged: %+v vs %+v", r1, r2)
	}
	for i := range r1.Joins {
		if r1.Joins[i] != r2.Joins[i] {
			t.Errorf("join %d differs: %+v vs %+v", i, r1.Joins[i], r2.Joins[i])
		}
	}
}

func TestBuildPartitionAtStepMinusOneIsSingletons(t *testing.T) {
	g := pathOfFour()
	result := PerformJoins(g, 1, prand.New(3))
	p := BuildPartition(g.NumNodes(), nil, result.Joins, -1)
	if p.NumClusters() != g.NumNodes() {
		t.Errorf("BuildPartition at step -1 has %d clusters, want %d singletons", p.NumClusters(), g.NumNodes())
	}
}

func TestBuildPartitionCoversEveryVertex(t *testing.T) {
	g := pathOfFour()
	result := PerformJoins(g, 1, prand.New(9))
	p := BuildPartition(g.NumNodes(), nil, result.Joins, result.BestStep)

	m := p.Membership(g.NumNodes())
	for v, c := range m {
		if c < 0 {
			t.Errorf("vertex %d missing from reconstructed partition", v)
		}
	}
}

func TestPerformJoinsRestartFindsJoinsOnDisconnectedGraph(t *testing.T) {
	// Two disjoint edges: every singleton row has a positive join to its
	// partner, so the restart driver must produce at least one join even
	// though the graph is disconnected.
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)

	start := partition.Singletons(g.NumNodes())
	result := PerformJoinsRestart(g, start, 1, prand.New(5))
	if len(result.Joins) == 0 {
		t.Error("PerformJoinsRestart found no joins on a graph with two disjoint edges")
	}
}
