// Package nmi compares two partitions of the same vertex set using
// Normalized Mutual Information, the standard way to score one clustering
// against another (or against a ground truth).
package nmi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gilchrisn/rgcluster/pkg/partition"
)

// Compute returns the NMI of p1 and p2 over n vertices, in [0, 1]. Both
// partitions must cover every vertex in 0..n-1 exactly once.
func Compute(p1, p2 *partition.Partition, n int) (float64, error) {
	if n == 0 {
		return 0, fmt.Errorf("nmi: vertex_count() == 0")
	}

	m1 := p1.Membership(n)
	m2 := p2.Membership(n)

	counts1 := make(map[int]int)
	counts2 := make(map[int]int)
	joint := make(map[[2]int]int)

	for v := 0; v < n; v++ {
		c1, c2 := m1[v], m2[v]
		if c1 < 0 || c2 < 0 {
			return 0, fmt.Errorf("nmi: vertex %d unassigned in one of the partitions", v)
		}
		counts1[c1]++
		counts2[c2]++
		joint[[2]int{c1, c2}]++
	}

	h1 := entropyOf(counts1, n)
	h2 := entropyOf(counts2, n)
	avgEntropy := (h1 + h2) / 2
	if avgEntropy == 0 {
		return 1.0, nil
	}

	mi := mutualInformation(joint, counts1, counts2, n)
	return mi / avgEntropy, nil
}

// entropyOf delegates the actual entropy computation to gonum/stat, keeping
// only the cluster-size-to-probability-distribution bookkeeping local.
func entropyOf(counts map[int]int, n int) float64 {
	probs := make([]float64, 0, len(counts))
	for _, c := range counts {
		probs = append(probs, float64(c)/float64(n))
	}
	return stat.Entropy(probs)
}

// mutualInformation computes I(X;Y) from the joint and marginal count
// tables, using the natural log to match stat.Entropy's base.
func mutualInformation(joint map[[2]int]int, counts1, counts2 map[int]int, n int) float64 {
	mi := 0.0
	nf := float64(n)
	for key, nij := range joint {
		ni := counts1[key[0]]
		nj := counts2[key[1]]
		if nij == 0 || ni == 0 || nj == 0 {
			continue
		}
		pij := float64(nij) / nf
		mi += pij * math.Log(float64(nij)*nf/float64(ni*nj))
	}
	return mi
}
