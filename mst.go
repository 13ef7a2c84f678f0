package repsample

import (
	"math"

	"go.uber.org/zap"
)

// PrimMST computes a minimum spanning tree over a condensed distance vector
// of n items with Prim's algorithm. Edges are returned in the order nodes
// join the tree, each connecting the previously added node to the next
// (chain format); Label turns them into a single-linkage dendrogram.
// Logs a warning if any edge weight is +Inf.
func PrimMST(condensed []float64, n int, logger *zap.Logger) []edge {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	current := make([]float64, n)
	for j := range current {
		current[j] = math.Inf(1)
	}

	edges := make([]edge, 0, n-1)
	hasInf := false
	node := 0
	inTree[0] = true

	for i := 0; i < n-1; i++ {
		// Relax distances through the last node added, then pick the nearest.
		next := -1
		best := math.Inf(1)
		for k := 0; k < n; k++ {
			if inTree[k] {
				continue
			}
			if d := condensed[condensedIndex(n, node, k)]; d < current[k] {
				current[k] = d
			}
			if next == -1 || current[k] < best {
				best = current[k]
				next = k
			}
		}

		if math.IsInf(best, 1) {
			hasInf = true
		}

		edges = append(edges, edge{a: node, b: next, w: best})
		inTree[next] = true
		node = next
	}

	if hasInf && logger != nil {
		logger.Warn("spanning tree contains edges with +Inf weight (disconnected items)")
	}

	return edges
}
