package repsample

import "math"

// genericLinkage merges the globally closest pair of active clusters at every
// step, keeping a stored distance matrix and a per-row nearest-neighbour
// cache. It accepts any Lance-Williams update, including ones that are not
// reducible (centroid), so merge heights may decrease between steps. Edges
// are returned in merge order and must not be re-sorted.
func genericLinkage(condensed []float64, n int, update linkageUpdate) []edge {
	if n <= 1 {
		return nil
	}

	d := make([]float64, len(condensed))
	copy(d, condensed)
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	// nn[i] is the closest active j > i and nnDist[i] its distance.
	nn := make([]int, n)
	nnDist := make([]float64, n)
	scan := func(i int) {
		nn[i] = -1
		nnDist[i] = math.Inf(1)
		for j := i + 1; j < n; j++ {
			if size[j] == 0 {
				continue
			}
			if dist := d[condensedIndex(n, i, j)]; nn[i] == -1 || dist < nnDist[i] {
				nn[i] = j
				nnDist[i] = dist
			}
		}
	}
	for i := 0; i < n; i++ {
		scan(i)
	}

	edges := make([]edge, 0, n-1)
	for k := 0; k < n-1; k++ {
		x := -1
		for i := 0; i < n; i++ {
			if size[i] == 0 || nn[i] == -1 {
				continue
			}
			if x == -1 || nnDist[i] < nnDist[x] {
				x = i
			}
		}
		y := nn[x]
		dxy := nnDist[x]
		nx, ny := size[x], size[y]
		edges = append(edges, edge{a: x, b: y, w: dxy})

		size[x] = 0
		size[y] = nx + ny
		for i := 0; i < n; i++ {
			ni := size[i]
			if ni == 0 || i == y {
				continue
			}
			yi := condensedIndex(n, i, y)
			d[yi] = update(d[condensedIndex(n, i, x)], d[yi], dxy, nx, ny, ni)
		}

		// Refresh the cache: rows pointing at x or y are rescanned, rows
		// before y may have gained y as a closer neighbour.
		for i := 0; i < y; i++ {
			if size[i] == 0 {
				continue
			}
			switch {
			case nn[i] == x || nn[i] == y:
				scan(i)
			default:
				if dist := d[condensedIndex(n, i, y)]; nn[i] == -1 || dist < nnDist[i] {
					nn[i] = y
					nnDist[i] = dist
				}
			}
		}
		scan(y)
	}

	return edges
}
