package rg

import "github.com/gilchrisn/rgcluster/pkg/partition"

// BuildPartition replays joins[0..=step] (inclusive) on top of a starting
// partition and returns the resulting partition (spec §4.4). When start is
// nil, it replays on top of the singleton partition over n vertices (the
// "from singletons" mode PerformJoins produces joins for); when start is
// non-nil, join ids index into start's cluster slots directly (the "from
// partition" mode PerformJoinsRestart produces joins for).
//
// step == -1 is a valid input (no joins applied, i.e. either the singleton
// partition or start unchanged).
func BuildPartition(n int, start *partition.Partition, joins []JoinRecord, step int) *partition.Partition {
	var p *partition.Partition
	if start != nil {
		p = start.Clone()
	} else {
		p = partition.Singletons(n)
	}

	if step < 0 {
		p.Compact()
		return p
	}

	for i := 0; i <= step && i < len(joins); i++ {
		a, b := joins[i].A, joins[i].B
		p.Clusters[a] = append(p.Clusters[a], p.Clusters[b]...)
		p.Clusters[b] = nil
	}

	p.Compact()
	return p
}
