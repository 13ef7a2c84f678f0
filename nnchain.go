package repsample

import "math"

// nnChainLinkage runs the nearest-neighbour-chain algorithm over a condensed
// distance vector for a reducible linkage (single, complete, average,
// weighted). Each returned edge names the two surviving cluster
// representatives and the merge height; the merged cluster keeps the larger
// representative. Edges are not sorted.
func nnChainLinkage(condensed []float64, n int, update linkageUpdate) []edge {
	if n <= 1 {
		return nil
	}

	d := make([]float64, len(condensed))
	copy(d, condensed)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	edges := make([]edge, 0, n-1)
	chain := make([]int, 0, n)

	for k := 0; k < n-1; k++ {
		if len(chain) == 0 {
			for i := 0; i < n; i++ {
				if size[i] > 0 {
					chain = append(chain, i)
					break
				}
			}
		}

		var x, y int
		var best float64
		for {
			x = chain[len(chain)-1]
			best = math.Inf(1)
			y = -1
			if len(chain) > 1 {
				y = chain[len(chain)-2]
				best = d[condensedIndex(n, x, y)]
			}
			for i := 0; i < n; i++ {
				if size[i] == 0 || i == x {
					continue
				}
				if dist := d[condensedIndex(n, x, i)]; dist < best || y == -1 {
					best = dist
					y = i
				}
			}
			if len(chain) > 1 && y == chain[len(chain)-2] {
				break
			}
			chain = append(chain, y)
		}

		// x and y are reciprocal nearest neighbours; drop both from the chain.
		chain = chain[:len(chain)-2]
		if x > y {
			x, y = y, x
		}
		nx, ny := size[x], size[y]
		edges = append(edges, edge{a: x, b: y, w: best})

		size[x] = 0
		size[y] = nx + ny
		for i := 0; i < n; i++ {
			ni := size[i]
			if ni == 0 || i == y {
				continue
			}
			yi := condensedIndex(n, i, y)
			d[yi] = update(d[condensedIndex(n, i, x)], d[yi], best, nx, ny, ni)
		}
	}

	return edges
}
