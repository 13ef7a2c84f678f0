package repsample

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// sentinelMargin lifts the final candidate height above every observed
// distance so the last trial merges as far as the dendrogram allows.
const sentinelMargin = 1e-6

// CandidateThresholds returns the heights tried by the search, ascending:
// every distinct strictly positive distance in condensed (or 0 when there
// are none), followed by a sentinel just above the largest of them. A finite
// maxThreshold above every distance lifts the sentinel to maxThreshold +
// sentinelMargin; it never removes a candidate. Pass +Inf for no bound.
func CandidateThresholds(condensed []float64, maxThreshold float64) []float64 {
	positive := make([]float64, 0, len(condensed))
	for _, v := range condensed {
		if v > 0 {
			positive = append(positive, v)
		}
	}
	sort.Float64s(positive)

	candidates := make([]float64, 0, len(positive)+1)
	for i, v := range positive {
		if i > 0 && v == positive[i-1] {
			continue
		}
		candidates = append(candidates, v)
	}
	if len(candidates) == 0 {
		candidates = append(candidates, 0)
	}

	bound := candidates[len(candidates)-1]
	if !math.IsInf(maxThreshold, 1) {
		bound = max(bound, maxThreshold)
	}
	return append(candidates, bound+sentinelMargin)
}

// searchOutcome is the winning trial of a threshold search.
type searchOutcome struct {
	height    float64
	selection *Selection
	trials    int
	feasible  bool
}

// searchThreshold cuts d at each candidate height in ascending order and
// returns the first whose selection fits within target. Heights that give
// the same partition as the previous trial are skipped. When no height fits,
// the last candidate's selection is returned with feasible set to false.
func searchThreshold(d *Dendrogram, m *DistanceMatrix, required []bool, target int, candidates []float64, logger *zap.Logger) searchOutcome {
	var out searchOutcome
	lastKey := -1
	for _, h := range candidates {
		key := d.partitionKey(h)
		if key == lastKey {
			out.height = h
			continue
		}
		lastKey = key

		c := d.Cut(h)
		sel := SelectRepresentatives(c, m, required)
		out.trials++
		logger.Debug("threshold trial",
			zap.Float64("threshold", h),
			zap.Int("clusters", len(c.Clusters)),
			zap.Int("selected", sel.Len()),
		)

		out.height = h
		out.selection = sel
		if sel.Len() <= target {
			out.feasible = true
			return out
		}
	}
	return out
}
