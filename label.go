package repsample

import "sort"

// edge is a merge between the clusters containing items a and b at height w.
// a and b are item representatives, not dendrogram node IDs.
type edge struct {
	a, b int
	w    float64
}

// Label sorts edges by height (stable, so equal heights keep their order)
// and converts them into dendrogram merges over n items.
func Label(edges []edge, n int) []Merge {
	if len(edges) == 0 {
		return nil
	}
	sorted := make([]edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].w < sorted[j].w
	})
	return relabel(sorted, n)
}

// relabel replays edges in the given order. Each merge names the current
// roots of its two items, smaller ID on the left; the merged cluster
// receives ID n+k for the k-th merge.
func relabel(edges []edge, n int) []Merge {
	uf := NewUnionFind(n)
	merges := make([]Merge, 0, len(edges))
	for _, e := range edges {
		a := uf.Find(e.a)
		b := uf.Find(e.b)
		if a > b {
			a, b = b, a
		}
		merges = append(merges, Merge{
			Left:   a,
			Right:  b,
			Height: e.w,
			Size:   uf.Size(a) + uf.Size(b),
		})
		uf.Merge(a, b)
	}
	return merges
}
