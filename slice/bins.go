// Package slice: the four binning strategies.
//
// Every strategy receives the element list in insertion order and returns
// ordered bins of edge indices with display labels. Empty bins are never
// returned: when a requested count is unsatisfiable the result degrades to
// the maximum achievable number of non-empty bins.
package slice

import (
	"math"
	"sort"
	"strconv"
)

// bin is one snapshot-to-be: the edge indices it holds and its label.
type bin struct {
	edges []int
	label string
}

// sortByValue orders a copy of elements by value, stable over insertion order.
func sortByValue(elements []element) []element {
	out := make([]element, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool { return out[i].value < out[j].value })

	return out
}

// distinctBins makes one bin per distinct temporal value, ascending.
// Labels are the values themselves.
func distinctBins(elements []element) []bin {
	sorted := sortByValue(elements)

	var bins []bin
	var last float64
	for i, el := range sorted {
		if i == 0 || el.value != last {
			bins = append(bins, bin{label: formatValue(el.value)})
			last = el.value
		}
		bins[len(bins)-1].edges = append(bins[len(bins)-1].edges, el.edge)
	}

	return bins
}

// widthBins splits the value range [min, max] into b equal-width intervals,
// inclusive-left/exclusive-right except the last, which is closed on both
// ends. Intervals left empty by the data are dropped.
func widthBins(elements []element, b int) []bin {
	sorted := sortByValue(elements)
	lo, hi := sorted[0].value, sorted[len(sorted)-1].value

	if lo == hi || b == 1 {
		return []bin{{
			edges: edgeIndices(sorted),
			label: intervalLabel(lo, hi, true),
		}}
	}

	width := (hi - lo) / float64(b)
	bins := make([]bin, b)
	for i := range bins {
		binLo := lo + float64(i)*width
		binHi := binLo + width
		bins[i].label = intervalLabel(binLo, binHi, i == b-1)
	}
	for _, el := range sorted {
		i := int((el.value - lo) / width)
		if i >= b { // max lands in the final, closed interval
			i = b - 1
		}
		bins[i].edges = append(bins[i].edges, el.edge)
	}

	out := bins[:0]
	for _, bn := range bins {
		if len(bn.edges) > 0 {
			out = append(out, bn)
		}
	}

	return out
}

// quantileBins cuts the sorted values into b groups of as close to
// total/b elements as value discreteness allows. Identical values are
// never split across adjacent bins: a boundary falling inside a value
// group snaps outward so the earlier bin absorbs the whole group. Fewer
// than b distinct values degrade to one bin per value.
func quantileBins(elements []element, b int) []bin {
	sorted := sortByValue(elements)
	n := len(sorted)

	var bins []bin
	var cur []element
	cum, quota := 0, 1
	closeBin := func() {
		bins = append(bins, bin{
			edges: edgeIndices(cur),
			label: intervalLabel(cur[0].value, cur[len(cur)-1].value, true),
		})
		cur = nil
	}

	for i := 0; i < n; i++ {
		// Take the whole group of identical values at once.
		j := i
		for j+1 < n && sorted[j+1].value == sorted[i].value {
			j++
		}
		cur = append(cur, sorted[i:j+1]...)
		cum += j - i + 1
		i = j

		if quota < b && float64(cum) >= float64(n)*float64(quota)/float64(b) {
			for quota < b && float64(cum) >= float64(n)*float64(quota)/float64(b) {
				quota++
			}
			closeBin()
		}
	}
	if len(cur) > 0 {
		closeBin()
	}

	return bins
}

// rankBins assigns each element a 0-based rank — by attribute value when
// byValue is set (stable over insertion order), by insertion order
// otherwise — and splits the rank sequence into b contiguous groups of
// as-equal-as-possible cardinality, the remainder going to the first
// groups. Labels are the closed rank intervals.
func rankBins(elements []element, b int, byValue bool) []bin {
	ranked := elements
	if byValue {
		ranked = sortByValue(elements)
	}
	n := len(ranked)
	if b > n {
		b = n
	}

	base, rem := n/b, n%b
	bins := make([]bin, 0, b)
	start := 0
	for i := 0; i < b; i++ {
		size := base
		if i < rem {
			size++
		}
		group := ranked[start : start+size]
		bins = append(bins, bin{
			edges: edgeIndices(group),
			label: rankLabel(start, start+size-1),
		})
		start += size
	}

	return bins
}

// cumulativeBins walks the elements in value order and closes a bin
// whenever its running unit count (edges, or distinct nodes under
// LevelNode) would exceed the per-bin cap total/b, never leaving a bin
// empty. Labels are the closed value intervals each bin covers.
func cumulativeBins(ends endpointsOf, elements []element, b int, countLevel Level) []bin {
	sorted := sortByValue(elements)

	total := len(sorted)
	if countLevel == LevelNode {
		seen := make(map[string]struct{})
		for _, el := range sorted {
			from, to := ends(el.edge)
			seen[from] = struct{}{}
			seen[to] = struct{}{}
		}
		total = len(seen)
	}
	capacity := int(math.Ceil(float64(total) / float64(b)))
	if capacity < 1 {
		capacity = 1
	}

	var bins []bin
	var cur []element
	units := 0
	binNodes := make(map[string]struct{})
	closeBin := func() {
		bins = append(bins, bin{
			edges: edgeIndices(cur),
			label: intervalLabel(cur[0].value, cur[len(cur)-1].value, true),
		})
		cur = nil
		units = 0
		binNodes = make(map[string]struct{})
	}

	// cost is the number of units el would add to the current bin.
	cost := func(el element) int {
		if countLevel == LevelEdge {
			return 1
		}
		added := 0
		from, to := ends(el.edge)
		if _, ok := binNodes[from]; !ok {
			added++
		}
		if _, ok := binNodes[to]; !ok && from != to {
			added++
		}

		return added
	}

	for _, el := range sorted {
		if len(cur) > 0 && units+cost(el) > capacity {
			closeBin()
		}
		units += cost(el)
		if countLevel == LevelNode {
			from, to := ends(el.edge)
			binNodes[from] = struct{}{}
			binNodes[to] = struct{}{}
		}
		cur = append(cur, el)
	}
	if len(cur) > 0 {
		closeBin()
	}

	return bins
}

// endpointsOf resolves an edge index to its endpoints.
type endpointsOf func(i int) (from, to string)

// edgeIndices extracts the edge indices of an element run.
func edgeIndices(elements []element) []int {
	out := make([]int, len(elements))
	for i, el := range elements {
		out[i] = el.edge
	}

	return out
}

// formatValue renders a temporal value compactly: integral values print
// without a decimal point.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// intervalLabel renders "[lo, hi)" or, when closed, "[lo, hi]".
func intervalLabel(lo, hi float64, closed bool) string {
	end := ")"
	if closed {
		end = "]"
	}

	return "[" + formatValue(lo) + ", " + formatValue(hi) + end
}

// rankLabel renders the closed rank interval "[lo..hi]".
func rankLabel(lo, hi int) string {
	return "[" + strconv.Itoa(lo) + ".." + strconv.Itoa(hi) + "]"
}
