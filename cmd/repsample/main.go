// Command repsample selects a bounded, representative subset of aligned
// sequences from an IQ-TREE distance matrix, always keeping the members of a
// priority group.
//
// Usage:
//
//	repsample --dist aln.mldist --meta groups.txt --target 500 [--write-fasta --fasta aln.fasta]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
