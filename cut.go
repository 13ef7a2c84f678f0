package repsample

import "sort"

// Cut is a flat partition of the items obtained by cutting a dendrogram at
// a height. Cluster IDs are 1-based and assigned in left-first depth-first
// order from the root, so they are stable for a given dendrogram and height.
type Cut struct {
	Height float64
	// Labels[i] is the cluster ID of item i.
	Labels []int
	// Clusters[id-1] lists the items of cluster id in ascending order.
	Clusters [][]int
}

// Cut partitions the items at height h. A subtree becomes one cluster when
// every merge inside it happened at or below h.
func (d *Dendrogram) Cut(h float64) *Cut {
	c := &Cut{Height: h, Labels: make([]int, d.n)}

	stack := []int{d.root()}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if x < d.n || d.maxHeight[x-d.n] <= h {
			members := d.leaves(x)
			c.Clusters = append(c.Clusters, members)
			id := len(c.Clusters)
			for _, i := range members {
				c.Labels[i] = id
			}
			continue
		}

		m := d.merges[x-d.n]
		// Push right first so the left subtree is numbered first.
		stack = append(stack, m.Right, m.Left)
	}

	return c
}

// partitionKey identifies the partition produced by Cut(h): two heights with
// the same key yield the same clusters.
func (d *Dendrogram) partitionKey(h float64) int {
	return sort.Search(len(d.sortedMax), func(i int) bool { return d.sortedMax[i] > h })
}
