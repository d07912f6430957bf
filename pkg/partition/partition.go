// Package partition implements the disjoint-vertex-list partition data model
// (spec §3 "Partition P") and the intersection operator CGGC uses to build a
// core groups partition (spec §4.6).
package partition

// Cluster is an ordered list of distinct vertex ids.
type Cluster []int

// Partition is an ordered sequence of clusters. Order is not semantically
// significant except that it is stable across every operation but an
// explicit Compact.
type Partition struct {
	Clusters []Cluster
}

// New wraps clusters as a Partition, taking ownership of the slice.
func New(clusters []Cluster) *Partition {
	return &Partition{Clusters: clusters}
}

// Singletons returns the partition of n vertices into n singleton clusters,
// in vertex-id order.
func Singletons(n int) *Partition {
	clusters := make([]Cluster, n)
	for i := 0; i < n; i++ {
		clusters[i] = Cluster{i}
	}
	return &Partition{Clusters: clusters}
}

// NumClusters returns the number of non-semantically-meaningful slots;
// callers that may hold empty tombstone slots should Compact first if they
// want a count of live clusters.
func (p *Partition) NumClusters() int {
	return len(p.Clusters)
}

// Compact removes empty cluster slots (tombstones left by merges) while
// preserving the relative order of the remaining clusters.
func (p *Partition) Compact() {
	out := p.Clusters[:0]
	for _, c := range p.Clusters {
		if len(c) > 0 {
			out = append(out, c)
		}
	}
	p.Clusters = out
}

// Membership builds the vertex -> cluster-index map over n vertices. The
// partition must already cover exactly V = {0,...,n-1} with no overlaps.
func (p *Partition) Membership(n int) []int {
	cluster := make([]int, n)
	for i := range cluster {
		cluster[i] = -1
	}
	for ci, c := range p.Clusters {
		for _, v := range c {
			cluster[v] = ci
		}
	}
	return cluster
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	clusters := make([]Cluster, len(p.Clusters))
	for i, c := range p.Clusters {
		clusters[i] = append(Cluster(nil), c...)
	}
	return &Partition{Clusters: clusters}
}

// Intersect computes the coarsest partition P' such that two vertices share
// a P'-cluster iff they share both a p1-cluster and a p2-cluster (spec
// §4.6). The result is produced in a stable, p1-driven order: it walks p1's
// clusters in order, seeding a new cluster at the first unassigned vertex
// and sweeping the rest of that p1-cluster for members matching the seed's
// p2-cluster.
func Intersect(p1, p2 *Partition, n int) *Partition {
	membership2 := p2.Membership(n)
	assigned := make([]bool, n)

	result := make([]Cluster, 0, len(p1.Clusters))
	for _, c := range p1.Clusters {
		for i, v := range c {
			if assigned[v] {
				continue
			}
			newCluster := Cluster{v}
			assigned[v] = true

			for _, u := range c[i+1:] {
				if !assigned[u] && membership2[u] == membership2[v] {
					newCluster = append(newCluster, u)
					assigned[u] = true
				}
			}
			result = append(result, newCluster)
		}
	}
	return &Partition{Clusters: result}
}
