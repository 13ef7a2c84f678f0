package repsample

// ClusterRecord describes one cluster of the winning cut.
type ClusterRecord struct {
	ID            int
	Size          int
	RequiredCount int
	// Selected lists the retained names in input order.
	Selected []string
}

// Selection is the set of retained items for one cut.
type Selection struct {
	// Indices are the retained items in input order.
	Indices []int
	// Clusters holds one record per cluster, ordered by ID.
	Clusters []ClusterRecord
}

// Len returns the number of retained items.
func (s *Selection) Len() int { return len(s.Indices) }

// SelectRepresentatives chooses the retained items of every cluster in c.
// A cluster with required members keeps all of them; any other cluster keeps
// its medoid under m.
func SelectRepresentatives(c *Cut, m *DistanceMatrix, required []bool) *Selection {
	keep := make([]bool, len(c.Labels))
	records := make([]ClusterRecord, 0, len(c.Clusters))

	for k, members := range c.Clusters {
		var kept []int
		for _, i := range members {
			if required[i] {
				kept = append(kept, i)
			}
		}
		reqCount := len(kept)
		if reqCount == 0 {
			kept = []int{medoid(m, members)}
		}

		names := make([]string, len(kept))
		for j, i := range kept {
			keep[i] = true
			names[j] = m.Name(i)
		}
		records = append(records, ClusterRecord{
			ID:            k + 1,
			Size:          len(members),
			RequiredCount: reqCount,
			Selected:      names,
		})
	}

	indices := make([]int, 0, len(records))
	for i, ok := range keep {
		if ok {
			indices = append(indices, i)
		}
	}

	return &Selection{Indices: indices, Clusters: records}
}

// medoid returns the member with the smallest summed distance to the other
// members. members must be in ascending order; ties go to the first.
func medoid(m *DistanceMatrix, members []int) int {
	if len(members) == 1 {
		return members[0]
	}
	best := members[0]
	bestSum := 0.0
	for k, i := range members {
		sum := 0.0
		for _, j := range members {
			if j != i {
				sum += m.At(i, j)
			}
		}
		if k == 0 || sum < bestSum {
			best = i
			bestSum = sum
		}
	}
	return best
}
