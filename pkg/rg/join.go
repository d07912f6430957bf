package rg

import (
	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/partition"
	"github.com/gilchrisn/rgcluster/pkg/prand"
)

// JoinRecord is an ordered pair (A, B) meaning "merge cluster B into cluster
// A; B is no longer a live cluster id" (spec §3 "Join record").
type JoinRecord struct {
	A, B int
}

// joinResult is the shared output of PerformJoins/PerformJoinsRestart: the
// ordered join list and the 0-based index of the last join in the prefix at
// which running modularity peaked (-1 when no prefix improves on the start).
type joinResult struct {
	Joins    []JoinRecord
	BestStep int
}

// candidate is a tied best join found during one step's sampling round,
// already oriented so the denser row is first (spec §4.3 step 3).
type candidate struct {
	a, b int
}

// PerformJoins runs the randomized-greedy join loop starting from
// singletons (spec §4.3, "From singletons (PerformJoins)"). It does not
// accept an initial partition (spec Open Question 1, resolved per the
// source: only the restart driver does) and does not use the restart
// driver's adaptive sample extension.
func PerformJoins(g *graph.Graph, sampleSize int, src prand.Source) *joinResult {
	n := g.NumNodes()
	mat := newSparseMatrixFromGraph(g)
	rows := newActiveRowSetFromGraph(n)

	if n == 0 || g.M() == 0 {
		return &joinResult{Joins: nil, BestStep: -1}
	}

	joins := make([]JoinRecord, 0, n-1)

	q0 := 0.0
	for i := 0; i < n; i++ {
		a := mat.RowSum(i)
		q0 -= a * a
	}

	runningQ := q0
	bestStepQ := q0
	bestStep := -1

	for step := 0; step < n-1; step++ {
		remaining := rows.Len()

		var maxSample int
		switch {
		case sampleSize < n/2:
			maxSample = 1
		case sampleSize < remaining-1:
			maxSample = sampleSize
		default:
			maxSample = remaining - 1
		}

		best, maxDeltaQ := sampleBestJoins(mat, rows, maxSample, remaining, src)
		if len(best) == 0 {
			break
		}

		chosen := best[src.Intn(len(best))]
		mat.Join(chosen.a, chosen.b)
		rows.Remove(chosen.b)
		joins = append(joins, JoinRecord{A: chosen.a, B: chosen.b})

		runningQ += maxDeltaQ
		if runningQ > bestStepQ {
			bestStepQ = runningQ
			bestStep = step
		}
	}

	return &joinResult{Joins: joins, BestStep: bestStep}
}

// PerformJoinsRestart runs the randomized-greedy join loop starting from an
// existing partition (spec §4.3, "From partition (PerformJoinsRestart)").
// It does not use the n/2 rule and uses the adaptive sample extension (step
// 4): if a round ends with max_delta_q still negative and more live rows
// remain, max_sample grows and sampling continues. Only Δ from this
// invocation's start is tracked, never absolute Q (spec §4.3, Design Notes).
func PerformJoinsRestart(g *graph.Graph, start *partition.Partition, restartK int, src prand.Source) *joinResult {
	c := len(start.Clusters)
	mat := newSparseMatrixFromPartition(g, start)
	rows := newActiveRowSetFromPartition(c)

	if c == 0 || g.M() == 0 {
		return &joinResult{Joins: nil, BestStep: -1}
	}

	joins := make([]JoinRecord, 0, c-1)

	runningDelta := 0.0
	bestStepQ := 0.0
	bestStep := -1

	for step := 0; step < c-1; step++ {
		remaining := rows.Len()

		var maxSample int
		if restartK < remaining-1 {
			maxSample = restartK
		} else {
			maxSample = remaining - 1
		}

		best, maxDeltaQ := sampleBestJoinsAdaptive(mat, rows, maxSample, remaining, src)
		if len(best) == 0 {
			break
		}

		chosen := best[src.Intn(len(best))]
		mat.Join(chosen.a, chosen.b)
		rows.Remove(chosen.b)
		joins = append(joins, JoinRecord{A: chosen.a, B: chosen.b})

		runningDelta += maxDeltaQ
		if runningDelta > bestStepQ {
			bestStepQ = runningDelta
			bestStep = step
		}
	}

	return &joinResult{Joins: joins, BestStep: bestStep}
}

// sampleBestJoins performs one step's candidate generation and best-tie
// collection (spec §4.3 steps 2-3) without the restart driver's adaptive
// extension.
func sampleBestJoins(mat *SparseMatrix, rows *ActiveRowSet, maxSample, remaining int, src prand.Source) ([]candidate, float64) {
	positional := maxSample == remaining-1
	maxDeltaQ := -1.0
	var best []candidate

	for s := 0; s < maxSample; s++ {
		var r int
		if positional {
			r = rows.Get(s)
		} else {
			r = rows.RandomElement(src)
		}

		for cIdx, val := range mat.Row(r) {
			if cIdx == r {
				continue
			}
			deltaQ := 2 * (val - mat.RowSum(r)*mat.RowSum(cIdx))

			if deltaQ >= maxDeltaQ {
				if deltaQ > maxDeltaQ {
					best = best[:0]
				}
				maxDeltaQ = deltaQ
				best = append(best, orient(mat, r, cIdx))
			}
		}
	}

	return best, maxDeltaQ
}

// sampleBestJoinsAdaptive is sampleBestJoins plus the restart-only adaptive
// extension (spec §4.3 step 4): if the round ends with max_delta_q still
// negative and more live rows remain, max_sample is incremented and
// sampling continues.
func sampleBestJoinsAdaptive(mat *SparseMatrix, rows *ActiveRowSet, maxSample, remaining int, src prand.Source) ([]candidate, float64) {
	positional := maxSample == remaining-1
	maxDeltaQ := -1.0
	var best []candidate

	for s := 0; s < maxSample; s++ {
		var r int
		if positional {
			r = rows.Get(s)
		} else {
			r = rows.RandomElement(src)
		}

		for cIdx, val := range mat.Row(r) {
			if cIdx == r {
				continue
			}
			deltaQ := 2 * (val - mat.RowSum(r)*mat.RowSum(cIdx))

			if deltaQ >= maxDeltaQ {
				if deltaQ > maxDeltaQ {
					best = best[:0]
				}
				maxDeltaQ = deltaQ
				best = append(best, orient(mat, r, cIdx))
			}
		}

		if s == maxSample-1 && maxDeltaQ < 0 && maxSample < remaining-1 {
			maxSample++
			positional = maxSample == remaining-1
		}
	}

	return best, maxDeltaQ
}

// orient chooses (r, c) or (c, r) so the denser row (more entries) comes
// first, keeping the "kept" cluster denser (spec §4.3 step 3).
func orient(mat *SparseMatrix, r, c int) candidate {
	if mat.RowEntries(r) >= mat.RowEntries(c) {
		return candidate{a: r, b: c}
	}
	return candidate{a: c, b: r}
}
