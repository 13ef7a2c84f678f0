package repsample

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Merge is one step of a dendrogram: clusters Left and Right join at Height
// into a cluster of Size items. Items are 0..n-1; the cluster created by the
// k-th merge is n+k. Left < Right.
type Merge struct {
	Left   int
	Right  int
	Height float64
	Size   int
}

// Dendrogram is an immutable agglomerative clustering of n items. It is
// built once and cut at any number of heights without being modified.
type Dendrogram struct {
	n      int
	merges []Merge
	// maxHeight[k] is the largest merge height in the subtree of merge k.
	// It equals Height for monotone linkages and differs under centroid
	// inversions.
	maxHeight []float64
	// sortedMax is maxHeight in ascending order.
	sortedMax []float64
}

// BuildDendrogram clusters a condensed distance vector over n items with the
// given linkage. Returns a *DataError if the vector contains NaN.
func BuildDendrogram(condensed []float64, n int, linkage Linkage, logger *zap.Logger) (*Dendrogram, error) {
	if want := n * (n - 1) / 2; len(condensed) != want {
		return nil, fmt.Errorf("repsample: condensed length %d does not match n*(n-1)/2 = %d (n=%d)", len(condensed), want, n)
	}
	if floats.HasNaN(condensed) {
		return nil, &DataError{Source: "matrix", Msg: "distance matrix contains NaN values"}
	}
	update, err := updateFor(linkage)
	if err != nil {
		return nil, err
	}

	var merges []Merge
	switch linkage {
	case LinkageSingle:
		merges = Label(PrimMST(condensed, n, logger), n)
	case LinkageCentroid:
		merges = relabel(genericLinkage(condensed, n, update), n)
	default:
		merges = Label(nnChainLinkage(condensed, n, update), n)
	}

	return newDendrogram(n, merges), nil
}

func newDendrogram(n int, merges []Merge) *Dendrogram {
	maxHeight := make([]float64, len(merges))
	for k, m := range merges {
		h := m.Height
		if m.Left >= n {
			h = max(h, maxHeight[m.Left-n])
		}
		if m.Right >= n {
			h = max(h, maxHeight[m.Right-n])
		}
		maxHeight[k] = h
	}
	sortedMax := make([]float64, len(maxHeight))
	copy(sortedMax, maxHeight)
	sort.Float64s(sortedMax)
	return &Dendrogram{n: n, merges: merges, maxHeight: maxHeight, sortedMax: sortedMax}
}

// Len returns the number of items.
func (d *Dendrogram) Len() int { return d.n }

// Merges returns a copy of the merge list in merge order.
func (d *Dendrogram) Merges() []Merge {
	out := make([]Merge, len(d.merges))
	copy(out, d.merges)
	return out
}

// root returns the node ID of the whole tree.
func (d *Dendrogram) root() int {
	if len(d.merges) == 0 {
		return 0
	}
	return d.n + len(d.merges) - 1
}

// leaves returns the items under node in ascending order.
func (d *Dendrogram) leaves(node int) []int {
	if node < d.n {
		return []int{node}
	}
	out := make([]int, 0, d.merges[node-d.n].Size)
	stack := []int{node}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x < d.n {
			out = append(out, x)
			continue
		}
		m := d.merges[x-d.n]
		stack = append(stack, m.Left, m.Right)
	}
	sort.Ints(out)
	return out
}
