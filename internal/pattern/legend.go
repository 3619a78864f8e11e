package pattern

import (
	"sort"

	"stitch-mapper/internal/dmc"
)

// LegendEntry summarizes one thread color's usage in a pattern.
type LegendEntry struct {
	Hex             string  `json:"hex"`
	DMCCode         string  `json:"dmcCode"`
	Name            string  `json:"name"`
	StitchCount     int     `json:"stitchCount"`
	CoveragePercent float64 `json:"coveragePercent"`
	IsMappedToDMC   bool    `json:"isMappedToDmc"`
}

// Legend tallies stitch counts and coverage per thread color, skipping
// fabric cells. Entries are sorted by descending stitch count, ties broken
// by code for determinism.
func Legend(p *Pattern) []LegendEntry {
	type tally struct {
		code, hex string
		count     int
	}

	counts := make(map[string]*tally)
	var order []string
	total := 0

	for i := range p.Stitches {
		s := &p.Stitches[i]
		if s.IsFabric() {
			continue
		}
		total++
		key := s.ColorKey()
		entry, ok := counts[key]
		if !ok {
			entry = &tally{code: s.DMCCode, hex: s.Hex}
			counts[key] = entry
			order = append(order, key)
		}
		entry.count++
	}

	entries := make([]LegendEntry, 0, len(order))
	for _, key := range order {
		t := counts[key]

		name := "Quantized Color"
		mapped := false
		if thread, ok := dmc.ByCode(t.code); ok {
			name = thread.Name
			mapped = true
		}

		coverage := 0.0
		if total > 0 {
			coverage = float64(t.count) / float64(total) * 100.0
		}

		entries = append(entries, LegendEntry{
			Hex:             t.hex,
			DMCCode:         t.code,
			Name:            name,
			StitchCount:     t.count,
			CoveragePercent: coverage,
			IsMappedToDMC:   mapped,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StitchCount != entries[j].StitchCount {
			return entries[i].StitchCount > entries[j].StitchCount
		}
		return entries[i].DMCCode < entries[j].DMCCode
	})

	return entries
}
