// Package dmc models the DMC embroidery thread catalog as a fixed, indexed,
// immutable table with precomputed LAB values, and provides perceptual
// matching against it.
package dmc

import (
	"log"
	"strings"

	"stitch-mapper/pkg/colorlab"
)

// Thread is one catalog entry. RGB and Lab are precomputed from Hex when the
// catalog is built so distance evaluation needs no per-call conversion.
type Thread struct {
	Code string       `json:"code"`
	Name string       `json:"name"`
	Hex  string       `json:"hex"`
	RGB  colorlab.RGB `json:"rgb"`
	Lab  colorlab.LAB `json:"lab"`
}

var (
	threads     []Thread
	indexByCode map[string]int
)

func init() {
	threads = make([]Thread, 0, len(threadTable))
	indexByCode = make(map[string]int, len(threadTable))

	for _, entry := range threadTable {
		rgb, err := colorlab.HexToRGB(entry.hex)
		if err != nil {
			// The table is compiled in; a bad entry is a programming error.
			log.Panicf("dmc: invalid hex %q for thread %s", entry.hex, entry.code)
		}
		t := Thread{
			Code: entry.code,
			Name: entry.name,
			Hex:  strings.ToUpper(entry.hex),
			RGB:  rgb,
			Lab:  colorlab.RGBToLab(rgb),
		}
		indexByCode[normalizeCode(t.Code)] = len(threads)
		threads = append(threads, t)
	}
}

// Catalog returns the full thread table in catalog order. The returned slice
// is shared; callers must not modify it.
func Catalog() []Thread {
	return threads
}

// Len returns the number of catalog entries.
func Len() int {
	return len(threads)
}

// ByCode looks up a thread by its code, case-insensitively.
func ByCode(code string) (Thread, bool) {
	idx, ok := indexByCode[normalizeCode(code)]
	if !ok {
		return Thread{}, false
	}
	return threads[idx], true
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// excludeSet builds a normalized lookup set from a list of codes.
func excludeSet(codes []string) map[string]struct{} {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[normalizeCode(c)] = struct{}{}
	}
	return set
}
