// Package repsample downsamples a set of aligned sequences to a bounded
// number of representatives using only their pairwise distances, while
// keeping every member of a designated priority group.
//
// The distance matrix is clustered once into a dendrogram. The dendrogram is
// then cut at increasing heights (the distinct positive distances of the
// matrix); at each cut a cluster keeps all of its priority members, or its
// medoid when it has none. The first cut whose selection fits the target
// wins, which makes it the finest partition that satisfies the budget.
//
// Basic usage:
//
//	m, err := repsample.ReadMatrix(f, "samples.mldist")
//	groups, err := repsample.ReadGroups(meta, "meta.tsv")
//	required := repsample.ResolvePriority(m.Names(), groups, "ChongqingHan", "_")
//	cfg := repsample.DefaultConfig()
//	cfg.Target = 300
//	result, err := repsample.Downsample(m, required, cfg)
//	// result.Names lists the retained items in input order
//	// result.Clusters holds one record per cluster of the chosen cut
//
// # Linkage
//
// Config.Linkage selects how cluster distances are derived from item
// distances: single, complete, average (default), weighted or centroid.
// Centroid linkage assumes Euclidean-embeddable distances and may produce
// merges lower than earlier ones; cuts account for that.
package repsample
