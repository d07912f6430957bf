package rg

import (
	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
)

// SparseMatrix is the symmetric sparse cluster-interaction matrix M of spec
// §3/§4.1: M[i][j] for i != j is (edges between clusters i and j) / 2m, so
// M[i][j] + M[j][i] is the fraction of edges running between them; M[i][i]
// is the fraction of edges fully inside cluster i (each such edge counted
// once per endpoint over 2m). Row sums a[i] are cached so row_sum is O(1).
type SparseMatrix struct {
	rows    map[int]map[int]float64
	rowSums map[int]float64
}

// newSparseMatrix allocates an empty matrix with capacity hints for n rows.
func newSparseMatrix(n int) *SparseMatrix {
	return &SparseMatrix{
		rows:    make(map[int]map[int]float64, n),
		rowSums: make(map[int]float64, n),
	}
}

// newSparseMatrixFromGraph builds M with each vertex as its own singleton
// cluster (spec §4.1, "Initialized from a graph"): M[i][j] = 1/(2m) per
// edge, diagonal zero, self-loops ignored.
func newSparseMatrixFromGraph(g *graph.Graph) *SparseMatrix {
	n := g.NumNodes()
	m := newSparseMatrix(n)
	m2 := 2 * g.M()

	for i := 0; i < n; i++ {
		m.rows[i] = make(map[int]float64)
		m.rowSums[i] = 0
	}
	if m2 == 0 {
		return m
	}

	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if j == i {
				continue
			}
			m.rows[i][j] += 1.0 / m2
		}
	}
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, v := range m.rows[i] {
			sum += v
		}
		m.rowSums[i] = sum
	}
	return m
}

// newSparseMatrixFromPartition builds M by collapsing the graph per the
// given partition: off-diagonal entries sum inter-cluster edges, the
// diagonal counts each intra-cluster edge once per endpoint (twice in
// all), all normalized by 2m (spec
// §4.1, "Initialized from a partition").
func newSparseMatrixFromPartition(g *graph.Graph, p *partition.Partition) *SparseMatrix {
	c := len(p.Clusters)
	mat := newSparseMatrix(c)
	for i := 0; i < c; i++ {
		mat.rows[i] = make(map[int]float64)
		mat.rowSums[i] = 0
	}

	m2 := 2 * g.M()
	if m2 == 0 {
		return mat
	}

	membership := p.Membership(g.NumNodes())
	for v := 0; v < g.NumNodes(); v++ {
		cv := membership[v]
		for _, u := range g.Neighbors(v) {
			if u == v {
				continue
			}
			cu := membership[u]
			mat.rows[cv][cu] += 1.0 / m2
		}
	}
	for i := 0; i < c; i++ {
		sum := 0.0
		for _, v := range mat.rows[i] {
			sum += v
		}
		mat.rowSums[i] = sum
	}
	return mat
}

// RowSum returns a[i].
func (m *SparseMatrix) RowSum(i int) float64 {
	return m.rowSums[i]
}

// RowEntries returns the number of nonzero entries in row i, used as the
// tie-break density heuristic (spec §4.1).
func (m *SparseMatrix) RowEntries(i int) int {
	return len(m.rows[i])
}

// Row returns the live (column, value) pairs of row i. Callers must not
// mutate the returned map.
func (m *SparseMatrix) Row(i int) map[int]float64 {
	return m.rows[i]
}

// Join merges cluster b into cluster a per spec §4.1's contract: every
// neighbor j of b (other than a) gets its entry folded into a's row/column,
// the diagonal absorbs b's diagonal and twice the a-b entry, row b is
// deleted entirely, and a[a] accumulates a[b]. Join cost is proportional to
// |row(a)| + |row(b)|.
func (m *SparseMatrix) Join(a, b int) {
	rowA := m.rows[a]
	rowB := m.rows[b]

	ab := rowA[b]
	bb := rowB[b]

	for j, val := range rowB {
		if j == a || j == b {
			continue
		}
		rowA[j] += val
		m.rows[j][a] = rowA[j]
		delete(m.rows[j], b)
	}

	rowA[a] += bb + 2*ab
	delete(rowA, b)

	m.rowSums[a] += m.rowSums[b]

	delete(m.rows, b)
	delete(m.rowSums, b)
}
