package dmc

import (
	"fmt"
	"sort"

	"stitch-mapper/pkg/colorlab"
)

// Mapping records how one source palette color was resolved to a thread.
type Mapping struct {
	OriginalHex string `json:"originalHex"`
	MappedHex   string `json:"mappedHex"`
	Thread      Thread `json:"thread"`
}

// PaletteMapping is the result of mapping a whole source palette onto the
// catalog.
type PaletteMapping struct {
	// MappedPalette holds the distinct mapped hex values, sorted by
	// ascending lightness.
	MappedPalette []string
	// MetadataByMappedHex resolves each mapped hex back to its thread.
	MetadataByMappedHex map[string]Thread
	// Mappings lists one entry per distinct input color, in first-seen order.
	Mappings []Mapping
	// OriginalToMapped resolves a (normalized) input hex to its mapped hex.
	OriginalToMapped map[string]string
}

// MapPalette maps each distinct hex in the source palette to its nearest
// thread using the value-preserving cost. Duplicate inputs are collapsed
// before matching.
func MapPalette(palette []string, w Weights) (PaletteMapping, error) {
	result := PaletteMapping{
		MetadataByMappedHex: make(map[string]Thread),
		OriginalToMapped:    make(map[string]string),
	}

	seen := make(map[string]struct{}, len(palette))
	for _, raw := range palette {
		rgb, err := colorlab.HexToRGB(raw)
		if err != nil {
			return PaletteMapping{}, fmt.Errorf("map palette: %w", err)
		}
		hex := colorlab.RGBToHex(rgb)
		if _, dup := seen[hex]; dup {
			continue
		}
		seen[hex] = struct{}{}

		thread, err := MatchPreserveValue(colorlab.RGBToLab(rgb), nil, w)
		if err != nil {
			return PaletteMapping{}, fmt.Errorf("map palette: %w", err)
		}

		result.Mappings = append(result.Mappings, Mapping{
			OriginalHex: hex,
			MappedHex:   thread.Hex,
			Thread:      thread,
		})
		result.OriginalToMapped[hex] = thread.Hex
		if _, present := result.MetadataByMappedHex[thread.Hex]; !present {
			result.MetadataByMappedHex[thread.Hex] = thread
			result.MappedPalette = append(result.MappedPalette, thread.Hex)
		}
	}

	sort.SliceStable(result.MappedPalette, func(i, j int) bool {
		a := result.MetadataByMappedHex[result.MappedPalette[i]]
		b := result.MetadataByMappedHex[result.MappedPalette[j]]
		if a.Lab.L != b.Lab.L {
			return a.Lab.L < b.Lab.L
		}
		return result.MappedPalette[i] < result.MappedPalette[j]
	})

	return result, nil
}
