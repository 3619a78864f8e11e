package quantize

import (
	"sort"

	"stitch-mapper/pkg/colorlab"
)

// MergeSmallRegions reassigns connected label regions smaller than minSize
// to their most frequent neighboring label, breaking frequency ties by color
// proximity and then by lowest label. Labels are modified in place.
func MergeSmallRegions(labels []uint16, width, height int, palette []colorlab.LAB, minSize int) {
	if minSize <= 1 || width <= 0 || height <= 0 || len(labels) != width*height {
		return
	}

	n := width * height
	visited := make([]bool, n)
	region := make([]int, 0, minSize*4)
	queue := make([]int, 0, minSize*4)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		target := labels[start]
		region = region[:0]
		queue = append(queue[:0], start)
		visited[start] = true
		neighborCounts := make(map[uint16]int)

		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			region = append(region, idx)

			x := idx % width
			y := idx / width
			probe := func(nb int) {
				if labels[nb] == target {
					if !visited[nb] {
						visited[nb] = true
						queue = append(queue, nb)
					}
				} else {
					neighborCounts[labels[nb]]++
				}
			}
			if x > 0 {
				probe(idx - 1)
			}
			if x+1 < width {
				probe(idx + 1)
			}
			if y > 0 {
				probe(idx - width)
			}
			if y+1 < height {
				probe(idx + width)
			}
		}

		if len(region) >= minSize || len(neighborCounts) == 0 {
			continue
		}

		best := pickMergeTarget(target, neighborCounts, palette)
		for _, idx := range region {
			labels[idx] = best
		}
	}
}

// pickMergeTarget chooses the neighbor label to absorb a small region.
func pickMergeTarget(current uint16, counts map[uint16]int, palette []colorlab.LAB) uint16 {
	candidates := make([]uint16, 0, len(counts))
	for label := range counts {
		candidates = append(candidates, label)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	best := candidates[0]
	for _, label := range candidates[1:] {
		if counts[label] > counts[best] {
			best = label
			continue
		}
		if counts[label] == counts[best] && int(current) < len(palette) &&
			int(label) < len(palette) && int(best) < len(palette) {
			if colorlab.DeltaE76(palette[current], palette[label]) <
				colorlab.DeltaE76(palette[current], palette[best]) {
				best = label
			}
		}
	}
	return best
}
