package repsample

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIDs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIDs(&buf, []string{"A", "C", "F_2"}))
	assert.Equal(t, "A\nC\nF_2\n", buf.String())
}

func TestWriteIDs_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIDs(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteClusterReport(t *testing.T) {
	records := []ClusterRecord{
		{ID: 1, Size: 2, RequiredCount: 2, Selected: []string{"A", "B"}},
		{ID: 2, Size: 4, RequiredCount: 0, Selected: []string{"C"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClusterReport(&buf, records))

	want := "cluster_id\tsize\trequired_count\tselected_ids\n" +
		"1\t2\t2\tA,B\n" +
		"2\t4\t0\tC\n"
	assert.Equal(t, want, buf.String())
}
