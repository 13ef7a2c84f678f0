package repsample

// UnionFind tracks which dendrogram node currently contains each item while
// merges are replayed. It holds 2*n - 1 nodes: items 0..n-1 and merged
// clusters n..2n-2, allocated in merge order.
type UnionFind struct {
	parent []int
	size   []int
	// next is the ID for the next merged cluster, starting at n.
	next int
}

// NewUnionFind creates a UnionFind for n items.
func NewUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n && i < total; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent: parent,
		size:   size,
		next:   n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Size returns the number of items under root.
func (uf *UnionFind) Size(root int) int { return uf.size[root] }

// Merge places roots a and b under a fresh cluster node and returns its ID.
func (uf *UnionFind) Merge(a, b int) int {
	id := uf.next
	uf.size[id] = uf.size[a] + uf.size[b]
	uf.parent[a] = id
	uf.parent[b] = id
	uf.next++
	return id
}
