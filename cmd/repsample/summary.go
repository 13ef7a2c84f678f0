package main

import (
	"fmt"
	"io"

	"github.com/TrevorS/repsample"
	"github.com/fatih/color"
)

// outputPaths are the files written by a run. FASTA is empty when no subset
// was requested.
type outputPaths struct {
	IDs      string
	Clusters string
	FASTA    string
}

// printSummary renders the run outcome for humans.
func printSummary(w io.Writer, r *repsample.Result, priority string, paths outputPaths) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintln(w, bold("=== Downsampling summary ==="))
	fmt.Fprintf(w, "Total sequences in distance matrix: %d\n", r.Total)
	fmt.Fprintf(w, "Priority group '%s': %d samples\n", priority, r.PriorityCount)
	fmt.Fprintf(w, "Target maximum: %d\n", r.Target)
	fmt.Fprintf(w, "Selected threshold: %.6f\n", r.Threshold)
	if r.Overflow {
		fmt.Fprintf(w, "Selected sample count: %s\n", yellow(fmt.Sprintf("%d (exceeds target)", r.Selected())))
	} else {
		fmt.Fprintf(w, "Selected sample count: %s\n", green(r.Selected()))
	}
	fmt.Fprintf(w, "ID list: %s\n", gray(paths.IDs))
	fmt.Fprintf(w, "Cluster report: %s\n", gray(paths.Clusters))
	if paths.FASTA != "" {
		fmt.Fprintf(w, "Subset FASTA: %s\n", gray(paths.FASTA))
	}
}
