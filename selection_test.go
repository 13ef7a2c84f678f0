package repsample

import (
	"reflect"
	"testing"
)

// scenarioMatrix: A and B coincide and sit 10 away from everything else;
// C, D, E and F are mutually 1 apart.
func scenarioMatrix(t testing.TB) *DistanceMatrix {
	t.Helper()
	return mustMatrix(t, []string{"A", "B", "C", "D", "E", "F"}, [][]float64{
		{0, 0, 10, 10, 10, 10},
		{0, 0, 10, 10, 10, 10},
		{10, 10, 0, 1, 1, 1},
		{10, 10, 1, 0, 1, 1},
		{10, 10, 1, 1, 0, 1},
		{10, 10, 1, 1, 1, 0},
	})
}

func TestMedoid_LineCluster(t *testing.T) {
	// Points at 0, 1, 3: sums 4, 3, 5 → item 1.
	m := mustMatrix(t, []string{"a", "b", "c"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	if got := medoid(m, []int{0, 1, 2}); got != 1 {
		t.Errorf("medoid = %d, want 1", got)
	}
}

func TestMedoid_TieGoesToLowestIndex(t *testing.T) {
	// Members 1 and 3 both have sum 5 over {1, 2, 3}; 2 has sum 6.
	m := mustMatrix(t, []string{"a", "b", "c", "d"}, [][]float64{
		{0, 9, 9, 9},
		{9, 0, 3, 2},
		{9, 3, 0, 3},
		{9, 2, 3, 0},
	})
	if got := medoid(m, []int{1, 2, 3}); got != 1 {
		t.Errorf("medoid = %d, want 1", got)
	}
}

func TestMedoid_Singleton(t *testing.T) {
	m := scenarioMatrix(t)
	if got := medoid(m, []int{4}); got != 4 {
		t.Errorf("medoid = %d, want 4", got)
	}
}

func TestSelectRepresentatives_PriorityAndMedoid(t *testing.T) {
	m := scenarioMatrix(t)
	c := &Cut{
		Labels:   []int{1, 1, 2, 2, 2, 2},
		Clusters: [][]int{{0, 1}, {2, 3, 4, 5}},
	}
	required := []bool{true, false, false, false, false, false}

	sel := SelectRepresentatives(c, m, required)

	// Cluster 1 keeps A (required); cluster 2 has equal sums and keeps C.
	if !reflect.DeepEqual(sel.Indices, []int{0, 2}) {
		t.Errorf("Indices = %v, want [0 2]", sel.Indices)
	}
	want := []ClusterRecord{
		{ID: 1, Size: 2, RequiredCount: 1, Selected: []string{"A"}},
		{ID: 2, Size: 4, RequiredCount: 0, Selected: []string{"C"}},
	}
	if !reflect.DeepEqual(sel.Clusters, want) {
		t.Errorf("Clusters = %+v, want %+v", sel.Clusters, want)
	}
}

func TestSelectRepresentatives_KeepsAllRequired(t *testing.T) {
	m := scenarioMatrix(t)
	c := &Cut{
		Labels:   []int{1, 1, 1, 1, 1, 1},
		Clusters: [][]int{{0, 1, 2, 3, 4, 5}},
	}
	required := []bool{false, true, false, true, false, true}

	sel := SelectRepresentatives(c, m, required)

	if !reflect.DeepEqual(sel.Indices, []int{1, 3, 5}) {
		t.Errorf("Indices = %v, want [1 3 5]", sel.Indices)
	}
	if got := sel.Clusters[0]; got.RequiredCount != 3 || !reflect.DeepEqual(got.Selected, []string{"B", "D", "F"}) {
		t.Errorf("record = %+v", got)
	}
}

func TestSelectRepresentatives_OrderFollowsInput(t *testing.T) {
	m := scenarioMatrix(t)
	// Cluster IDs deliberately list later items first.
	c := &Cut{
		Labels:   []int{2, 3, 1, 1, 1, 1},
		Clusters: [][]int{{2, 3, 4, 5}, {0}, {1}},
	}
	sel := SelectRepresentatives(c, m, make([]bool, 6))
	if !reflect.DeepEqual(sel.Indices, []int{0, 1, 2}) {
		t.Errorf("Indices = %v, want [0 1 2]", sel.Indices)
	}
	for k, rec := range sel.Clusters {
		if rec.ID != k+1 {
			t.Errorf("record %d has ID %d", k, rec.ID)
		}
	}
}
