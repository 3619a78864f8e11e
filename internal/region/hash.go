package region

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
)

// hashArtifact fingerprints the structural content of an artifact: grid
// dimensions, the final region list, the full pixel lookup, and adjacency.
// The encoding is canonical (fixed field order, sorted map iteration), so
// two structurally identical artifacts hash identically no matter how their
// source stitches were ordered, while any change to pixel colors,
// dimensions, or manual edits changes the hash.
func hashArtifact(a *Artifact) string {
	h := sha256.New()
	var scratch [8]byte

	writeUint := func(v uint64) {
		binary.BigEndian.PutUint64(scratch[:], v)
		h.Write(scratch[:])
	}
	writeString := func(s string) {
		writeUint(uint64(len(s)))
		h.Write([]byte(s))
	}

	writeUint(uint64(a.Width))
	writeUint(uint64(a.Height))

	writeUint(uint64(len(a.Regions)))
	for _, r := range a.Regions {
		writeUint(uint64(r.ID))
		writeUint(uint64(r.ColorIndex))
		writeString(r.ColorKey)
		writeUint(uint64(r.Area))
	}

	writeUint(uint64(len(a.PixelRegionID)))
	for _, id := range a.PixelRegionID {
		writeUint(uint64(id))
	}

	ids := make([]uint32, 0, len(a.Adjacency))
	for id := range a.Adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	writeUint(uint64(len(ids)))
	for _, id := range ids {
		writeUint(uint64(id))
		neighbors := a.Adjacency[id]
		writeUint(uint64(len(neighbors)))
		for _, n := range neighbors {
			writeUint(uint64(n))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
