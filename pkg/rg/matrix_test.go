package rg

import (
	"math"
	"testing"

	"github.com/gilchrisn/rgcluster/pkg/graph"
)

func triangle() *graph.Graph {
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	return g
}

func pathOfFour() *graph.Graph {
	g := graph.New(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	return g
}

func TestMatrixRowSumsSumToOne(t *testing.T) {
	m := newSparseMatrixFromGraph(pathOfFour())
	total := 0.0
	for i := 0; i < 4; i++ {
		total += m.RowSum(i)
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("sum of row sums = %v, want 1.0", total)
	}
}

func TestMatrixIsSymmetric(t *testing.T) {
	m := newSparseMatrixFromGraph(triangle())
	for i := 0; i < 3; i++ {
		for j, val := range m.Row(i) {
			if other := m.Row(j)[i]; math.Abs(other-val) > 1e-12 {
				t.Errorf("M[%d][%d] = %v but M[%d][%d] = %v", i, j, val, j, i, other)
			}
		}
	}
}

func TestJoinPreservesRowSumMass(t *testing.T) {
	m := newSparseMatrixFromGraph(pathOfFour())
	before := 0.0
	for i := 0; i < 4; i++ {
		before += m.RowSum(i)
	}

	m.Join(0, 1)

	after := 0.0
	for _, i := range []int{0, 2, 3} {
		after += m.RowSum(i)
	}
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("row-sum mass changed across Join: before=%v after=%v", before, after)
	}
}

func TestJoinDeletesMergedRow(t *testing.T) {
	m := newSparseMatrixFromGraph(pathOfFour())
	m.Join(0, 1)
	if _, ok := m.rows[1]; ok {
		t.Error("Join(0, 1) left row 1 behind")
	}
	if _, ok := m.rows[0][1]; ok {
		t.Error("Join(0, 1) left a residual M[0][1] entry")
	}
}

func TestJoinFoldsSharedNeighborEntries(t *testing.T) {
	// 0-1-2 path with an extra 0-2 edge: joining 0 and 1 should fold both
	// 1's link to 2 and 0's existing link to 2 into a single entry.
	g := graph.New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	m := newSparseMatrixFromGraph(g)

	before2 := m.Row(0)[2] + m.Row(1)[2]
	m.Join(0, 1)
	if math.Abs(m.Row(0)[2]-before2) > 1e-9 {
		t.Errorf("M[0][2] after join = %v, want %v", m.Row(0)[2], before2)
	}
	if _, ok := m.Row(2)[1]; ok {
		t.Error("row 2 still references deleted row 1")
	}
}
