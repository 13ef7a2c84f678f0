package repsample

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// clusterReportHeader is the first line of a cluster report.
const clusterReportHeader = "cluster_id\tsize\trequired_count\tselected_ids"

// WriteIDs writes one name per line.
func WriteIDs(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteClusterReport writes records as a tab-separated table with a header
// row. Selected names are joined with commas.
func WriteClusterReport(w io.Writer, records []ClusterRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, clusterReportHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%s\n",
			rec.ID, rec.Size, rec.RequiredCount, strings.Join(rec.Selected, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
