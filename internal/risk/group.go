package risk

import (
	"math"
	"sort"
)

// Risk group labels
const (
	GroupLow    = "Low"
	GroupMedium = "Medium"
	GroupHigh   = "High"
)

// AssignGroups buckets risk scores into named quantile groups. With three
// or more distinct scores the tertile boundaries (quantiles 1/3 and 2/3,
// linearly interpolated) split the batch into Low/Medium/High; duplicate
// boundary edges are dropped, so clustered scores can yield fewer groups.
// Exactly two distinct scores split at the median into Low/High, and a
// fully uniform batch is labeled Medium throughout. The degenerate branches
// keep tiny inference batches from failing.
func AssignGroups(scores []float64) []string {
	if len(scores) == 0 {
		return nil
	}

	distinct := distinctValues(scores)

	switch {
	case len(distinct) == 1:
		return constantGroups(len(scores), GroupMedium)
	case len(distinct) == 2:
		return twoValueGroups(scores, distinct)
	default:
		return quantileGroups(scores)
	}
}

func distinctValues(scores []float64) []float64 {
	seen := make(map[float64]struct{}, len(scores))
	var out []float64
	for _, v := range scores {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func constantGroups(n int, label string) []string {
	groups := make([]string, n)
	for i := range groups {
		groups[i] = label
	}
	return groups
}

// twoValueGroups is the median split: the lower of the two observed scores
// is Low, the higher is High.
func twoValueGroups(scores, distinct []float64) []string {
	groups := make([]string, len(scores))
	for i, v := range scores {
		if v == distinct[0] {
			groups[i] = GroupLow
		} else {
			groups[i] = GroupHigh
		}
	}
	return groups
}

func quantileGroups(scores []float64) []string {
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	q1 := quantileLinear(sorted, 1.0/3.0)
	q2 := quantileLinear(sorted, 2.0/3.0)

	edges := dedupeEdges([]float64{sorted[0], q1, q2, sorted[len(sorted)-1]})
	labels := labelsFor(len(edges) - 1)

	groups := make([]string, len(scores))
	for i, v := range scores {
		groups[i] = labels[binIndex(edges, v)]
	}
	return groups
}

// quantileLinear is the linearly interpolated quantile at rank
// h = (n-1)*p over a sorted slice, the same convention the fitted
// pipeline's quantile binning uses.
func quantileLinear(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// dedupeEdges drops duplicate bin edges from a nondecreasing edge list,
// the tie-resolution rule for clustered quantile boundaries.
func dedupeEdges(edges []float64) []float64 {
	out := edges[:1]
	for _, e := range edges[1:] {
		if e != out[len(out)-1] {
			out = append(out, e)
		}
	}
	return out
}

func labelsFor(bins int) []string {
	switch bins {
	case 1:
		return []string{GroupMedium}
	case 2:
		return []string{GroupLow, GroupHigh}
	default:
		return []string{GroupLow, GroupMedium, GroupHigh}
	}
}

// binIndex places v into right-closed bins: the first bin spans
// [edges[0], edges[1]], later bins (edges[i], edges[i+1]].
func binIndex(edges []float64, v float64) int {
	for i := 1; i < len(edges)-1; i++ {
		if v <= edges[i] {
			return i - 1
		}
	}
	return len(edges) - 2
}
