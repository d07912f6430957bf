package rg

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/rgcluster/pkg/graph"
)

func TestRunRGRejectsEmptyGraph(t *testing.T) {
	g := graph.New(0)
	if _, err := RunRG(g, 1, 1, 1, zerolog.Nop()); err == nil {
		t.Error("RunRG on an empty graph: want error, got nil")
	}
}

func TestRunRGRejectsZeroParameter(t *testing.T) {
	g := triangle()
	if _, err := RunRG(g, 0, 1, 1, zerolog.Nop()); err == nil {
		t.Error("RunRG with k=0: want error, got nil")
	}
}

func TestRunCGGCRejectsInconsistentGraph(t *testing.T) {
	g := graph.New(2)
	g.adjacency[0] = append(g.adjacency[0], 1)
	if _, err := RunCGGC(g, 1, 1, false, 1, zerolog.Nop()); err == nil {
		t.Error("RunCGGC on an asymmetric graph: want error, got nil")
	}
}

func TestRunRGReturnsConsistentModularity(t *testing.T) {
	g := twoTriangles()
	result, err := RunRG(g, 1, 3, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunRG returned error: %v", err)
	}
	if got := Modularity(g, result.Partition); got != result.Q {
		t.Errorf("Result.Q = %v, recomputed Modularity = %v", result.Q, got)
	}
}

func TestRunCGGCReturnsConsistentModularity(t *testing.T) {
	g := twoTriangles()
	result, err := RunCGGC(g, 2, 1, true, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("RunCGGC returned error: %v", err)
	}
	if got := Modularity(g, result.Partition); got != result.Q {
		t.Errorf("Result.Q = %v, recomputed Modularity = %v", result.Q, got)
	}
}
