package partition

import (
	"reflect"
	"testing"
)

func TestSingletonsCoversEveryVertex(t *testing.T) {
	p := Singletons(4)
	if p.NumClusters() != 4 {
		t.Fatalf("NumClusters() = %d, want 4", p.NumClusters())
	}
	m := p.Membership(4)
	seen := map[int]bool{}
	for _, c := range m {
		if seen[c] {
			t.Fatalf("cluster %d assigned more than once in singleton membership", c)
		}
		seen[c] = true
	}
}

func TestCompactRemovesTombstones(t *testing.T) {
	p := New([]Cluster{{0, 1}, nil, {2}, {}})
	p.Compact()
	if p.NumClusters() != 2 {
		t.Fatalf("NumClusters() after Compact() = %d, want 2", p.NumClusters())
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := New([]Cluster{{0, 1}})
	clone := p.Clone()
	clone.Clusters[0][0] = 99
	if p.Clusters[0][0] == 99 {
		t.Error("Clone() shares cluster backing arrays with the original")
	}
}

func TestIntersectIsCoarsestCommonRefinement(t *testing.T) {
	// p1: {0,1,2} {3,4}
	// p2: {0,1} {2,3} {4}
	// intersection: {0,1} {2} {3} {4}
	p1 := New([]Cluster{{0, 1, 2}, {3, 4}})
	p2 := New([]Cluster{{0, 1}, {2, 3}, {4}})

	result := Intersect(p1, p2, 5)

	got := make(map[int]int, 5)
	for ci, c := range result.Clusters {
		for _, v := range c {
			got[v] = ci
		}
	}

	for v := 0; v < 5; v++ {
		if _, ok := got[v]; !ok {
			t.Fatalf("vertex %d missing from intersection result", v)
		}
	}
	if got[0] != got[1] {
		t.Error("0 and 1 share both p1- and p2-clusters but landed in different result clusters")
	}
	for _, pair := range [][2]int{{0, 2}, {0, 3}, {0, 4}, {2, 3}, {2, 4}, {3, 4}} {
		if got[pair[0]] == got[pair[1]] {
			t.Errorf("%d and %d do not share both source clusters but landed in the same result cluster", pair[0], pair[1])
		}
	}
}

func TestIntersectOfIdenticalPartitionsIsItself(t *testing.T) {
	p := New([]Cluster{{0, 1}, {2, 3}})
	result := Intersect(p, p, 4)
	if !reflect.DeepEqual(result.Membership(4), p.Membership(4)) {
		t.Error("Intersect(p, p) changed the membership")
	}
}
