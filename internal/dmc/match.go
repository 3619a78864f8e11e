package dmc

import (
	"errors"
	"math"
	"sort"

	"stitch-mapper/pkg/colorlab"
)

// ErrEmptyPalette is returned when every catalog entry has been excluded and
// no match candidate remains.
var ErrEmptyPalette = errors.New("dmc: no thread candidates after exclusion")

// Match returns the catalog thread closest to the given LAB color under the
// chosen metric, skipping excluded codes.
func Match(lab colorlab.LAB, excluded []string, metric colorlab.Metric) (Thread, error) {
	skip := excludeSet(excluded)

	bestIdx := -1
	bestDist := math.MaxFloat64
	for i, t := range threads {
		if _, drop := skip[normalizeCode(t.Code)]; drop {
			continue
		}
		d := colorlab.Distance(lab, t.Lab, metric)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Thread{}, ErrEmptyPalette
	}
	return threads[bestIdx], nil
}

// Weights tunes the value-preserving match cost.
type Weights struct {
	WL float64 // lightness weight
	WC float64 // chroma-plane weight
}

// DefaultWeights biases matching toward preserving perceived lightness over
// exact hue, which reads better at palette level than pixel level.
func DefaultWeights() Weights {
	return Weights{WL: 2, WC: 1}
}

// MatchPreserveValue returns the thread minimizing
// wL*|dL| + wC*sqrt(da^2+db^2), skipping excluded codes.
func MatchPreserveValue(lab colorlab.LAB, excluded []string, w Weights) (Thread, error) {
	skip := excludeSet(excluded)

	bestIdx := -1
	bestCost := math.MaxFloat64
	for i, t := range threads {
		if _, drop := skip[normalizeCode(t.Code)]; drop {
			continue
		}
		dL := math.Abs(lab.L - t.Lab.L)
		da := lab.A - t.Lab.A
		db := lab.B - t.Lab.B
		cost := w.WL*dL + w.WC*math.Sqrt(da*da+db*db)
		if cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Thread{}, ErrEmptyPalette
	}
	return threads[bestIdx], nil
}

// ClosestN returns the n catalog threads nearest to lab, ascending by
// distance. Ties keep catalog order. Fewer than n entries may be returned if
// the exclusion list shrinks the candidate set.
func ClosestN(lab colorlab.LAB, n int, excluded []string, metric colorlab.Metric) []Thread {
	if n <= 0 {
		return nil
	}
	skip := excludeSet(excluded)

	type candidate struct {
		idx  int
		dist float64
	}
	candidates := make([]candidate, 0, len(threads))
	for i, t := range threads {
		if _, drop := skip[normalizeCode(t.Code)]; drop {
			continue
		}
		candidates = append(candidates, candidate{idx: i, dist: colorlab.Distance(lab, t.Lab, metric)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	result := make([]Thread, n)
	for i := 0; i < n; i++ {
		result[i] = threads[candidates[i].idx]
	}
	return result
}

// canonicalSeeds are the pure colors whose nearest threads seed a reduced
// palette, guaranteeing the extremes of the gamut are represented.
var canonicalSeeds = []colorlab.RGB{
	{R: 255, G: 255, B: 255}, // white
	{R: 0, G: 0, B: 0},       // black
	{R: 255, G: 0, B: 0},     // red
	{R: 0, G: 255, B: 0},     // green
	{R: 0, G: 0, B: 255},     // blue
	{R: 255, G: 255, B: 0},   // yellow
}

// ReducedPalette builds a working palette of targetCount threads by greedy
// farthest-point selection under the CMC metric: seed with the catalog
// matches of six canonical colors, then repeatedly add the candidate whose
// minimum distance to the already selected set is largest. Stops early if the
// catalog runs out.
func ReducedPalette(targetCount int) []Thread {
	if targetCount <= 0 {
		return nil
	}

	selected := make([]Thread, 0, targetCount)
	chosen := make(map[string]struct{})

	for _, seed := range canonicalSeeds {
		if len(selected) >= targetCount {
			break
		}
		t, err := Match(colorlab.RGBToLab(seed), nil, colorlab.MetricCMC)
		if err != nil {
			break // empty catalog
		}
		if _, dup := chosen[t.Code]; dup {
			continue
		}
		chosen[t.Code] = struct{}{}
		selected = append(selected, t)
	}

	for len(selected) < targetCount && len(selected) < len(threads) {
		bestIdx := -1
		bestMinDist := -1.0
		for i, t := range threads {
			if _, used := chosen[t.Code]; used {
				continue
			}
			minDist := math.MaxFloat64
			for _, s := range selected {
				if d := colorlab.DeltaECMC(t.Lab, s.Lab); d < minDist {
					minDist = d
				}
			}
			if minDist > bestMinDist {
				bestMinDist = minDist
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		chosen[threads[bestIdx].Code] = struct{}{}
		selected = append(selected, threads[bestIdx])
	}

	return selected
}
