package repsample

import (
	"fmt"
	"math"
)

// Linkage selects the rule for the distance between two clusters.
type Linkage string

const (
	LinkageSingle   Linkage = "single"
	LinkageComplete Linkage = "complete"
	LinkageAverage  Linkage = "average"
	LinkageWeighted Linkage = "weighted"
	LinkageCentroid Linkage = "centroid"
)

// Linkages lists every supported strategy in a stable order.
var Linkages = []Linkage{LinkageSingle, LinkageComplete, LinkageAverage, LinkageWeighted, LinkageCentroid}

// ParseLinkage converts a strategy name into a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	for _, l := range Linkages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("repsample: unknown linkage %q (want one of single, complete, average, weighted, centroid)", s)
}

// linkageUpdate returns the Lance-Williams distance between cluster i and the
// union of clusters x and y, given d(i,x), d(i,y), d(x,y) and the sizes of
// x, y and i.
type linkageUpdate func(dxi, dyi, dxy float64, nx, ny, ni int) float64

func singleUpdate(dxi, dyi, _ float64, _, _, _ int) float64 { return min(dxi, dyi) }

func completeUpdate(dxi, dyi, _ float64, _, _, _ int) float64 { return max(dxi, dyi) }

func averageUpdate(dxi, dyi, _ float64, nx, ny, _ int) float64 {
	return (float64(nx)*dxi + float64(ny)*dyi) / float64(nx+ny)
}

func weightedUpdate(dxi, dyi, _ float64, _, _, _ int) float64 { return 0.5 * (dxi + dyi) }

// centroidUpdate works on unsquared distances. Non-Euclidean input can drive
// the radicand below zero; it is clamped so the result stays a distance.
func centroidUpdate(dxi, dyi, dxy float64, nx, ny, _ int) float64 {
	fx, fy := float64(nx), float64(ny)
	r := ((fx*dxi*dxi + fy*dyi*dyi) - (fx*fy*dxy*dxy)/(fx+fy)) / (fx + fy)
	if r <= 0 {
		return 0
	}
	return math.Sqrt(r)
}

// updateFor returns the update rule for l.
func updateFor(l Linkage) (linkageUpdate, error) {
	switch l {
	case LinkageSingle:
		return singleUpdate, nil
	case LinkageComplete:
		return completeUpdate, nil
	case LinkageAverage:
		return averageUpdate, nil
	case LinkageWeighted:
		return weightedUpdate, nil
	case LinkageCentroid:
		return centroidUpdate, nil
	default:
		return nil, fmt.Errorf("repsample: unknown linkage %q", l)
	}
}
