// Package region segments a stitch pattern into maximal 4-connected
// same-color regions with stable identities, adjacency, and label anchors.
package region

import (
	"sort"

	"stitch-mapper/internal/pattern"
	"stitch-mapper/pkg/geometry"
)

// NoRegion is the PixelRegionID sentinel for fabric/background cells.
const NoRegion uint32 = 0

// Region is one maximal 4-connected set of same-colorKey stitches.
type Region struct {
	ID         uint32 `json:"id"`
	ColorIndex int    `json:"colorIndex"`
	ColorKey   string `json:"colorKey"`
	Area       int    `json:"area"`
}

// Artifact is the derived region graph for one pattern state. It is a pure
// derivation: rebuild it whenever the pattern changes, and drop any
// bookkeeping keyed to it when LockHash changes.
type Artifact struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// PixelRegionID maps every grid cell to its region id, row-major.
	// NoRegion marks background.
	PixelRegionID []uint32 `json:"pixelRegionId"`

	// Regions are ordered by ascending ColorIndex, then by the raster
	// position of each region's first pixel. IDs are 1..len(Regions).
	Regions []Region `json:"regions"`

	// RegionsByColor lists region ids (ascending) per color key.
	RegionsByColor map[string][]uint32 `json:"regionsByColor"`

	// Adjacency maps each region id to its sorted, deduplicated neighbor
	// ids. Symmetric by construction.
	Adjacency map[uint32][]uint32 `json:"adjacency"`

	// LabelPoints holds, for every region, a cell guaranteed to be interior
	// to it — a safe anchor for an on-canvas label.
	LabelPoints map[uint32]geometry.GridPoint `json:"labelPoints"`

	// LockHash fingerprints the whole structure. Two structurally identical
	// artifacts hash identically regardless of input stitch order.
	LockHash string `json:"lockHash"`
}

// RegionByID returns the region with the given id, if any.
func (a *Artifact) RegionByID(id uint32) (Region, bool) {
	idx := int(id) - 1
	if idx < 0 || idx >= len(a.Regions) {
		return Region{}, false
	}
	return a.Regions[idx], true
}

// component is a provisional region found during the flood fill.
type component struct {
	colorIndex int
	start      int   // raster index of the first-encountered pixel
	cells      []int // raster indices, in BFS discovery order
}

// Build derives the region graph from a pattern. It is a pure function: no
// I/O, no hidden state, and it never fails — an all-fabric grid produces an
// artifact with zero regions and an all-NoRegion pixel grid. The result is
// independent of the order of pattern.Stitches.
func Build(p *pattern.Pattern) *Artifact {
	width, height := p.Width, p.Height
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height

	artifact := &Artifact{
		Width:          width,
		Height:         height,
		PixelRegionID:  make([]uint32, size),
		RegionsByColor: make(map[string][]uint32),
		Adjacency:      make(map[uint32][]uint32),
		LabelPoints:    make(map[uint32]geometry.GridPoint),
	}
	if size == 0 {
		artifact.LockHash = hashArtifact(artifact)
		return artifact
	}

	colorKeys, keyIndex := p.Palette()

	// Color index per cell, -1 for fabric. Built from grid positions so
	// stitch slice order cannot leak into the result.
	colorGrid := make([]int, size)
	for i := range colorGrid {
		colorGrid[i] = -1
	}
	for _, s := range p.Grid() {
		if s == nil || s.IsFabric() {
			continue
		}
		colorGrid[s.Y*width+s.X] = keyIndex[s.ColorKey()]
	}

	comps := floodFill(colorGrid, width, height)

	// Ordering rule: ascending color index, then raster order of the first
	// pixel. Final ids are 1..N in that order.
	sort.Slice(comps, func(i, j int) bool {
		if comps[i].colorIndex != comps[j].colorIndex {
			return comps[i].colorIndex < comps[j].colorIndex
		}
		return comps[i].start < comps[j].start
	})

	artifact.Regions = make([]Region, len(comps))
	for i, c := range comps {
		id := uint32(i + 1)
		key := colorKeys[c.colorIndex]
		artifact.Regions[i] = Region{
			ID:         id,
			ColorIndex: c.colorIndex,
			ColorKey:   key,
			Area:       len(c.cells),
		}
		artifact.RegionsByColor[key] = append(artifact.RegionsByColor[key], id)
		for _, cell := range c.cells {
			artifact.PixelRegionID[cell] = id
		}
	}

	buildAdjacency(artifact)

	for i, c := range comps {
		id := artifact.Regions[i].ID
		artifact.LabelPoints[id] = labelPoint(artifact.PixelRegionID, width, height, id, c.cells)
	}

	artifact.LockHash = hashArtifact(artifact)
	return artifact
}

// floodFill groups same-color cells into 4-connected components, scanning
// in canonical raster order so each component's start is its minimal raster
// index.
func floodFill(colorGrid []int, width, height int) []component {
	size := width * height
	visited := make([]bool, size)
	var comps []component
	queue := make([]int, 0, 64)

	for start := 0; start < size; start++ {
		colorIndex := colorGrid[start]
		if colorIndex < 0 || visited[start] {
			continue
		}

		c := component{colorIndex: colorIndex, start: start}
		visited[start] = true
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			idx := queue[0]
			queue = queue[1:]
			c.cells = append(c.cells, idx)

			x := idx % width
			y := idx / width

			if x > 0 && !visited[idx-1] && colorGrid[idx-1] == colorIndex {
				visited[idx-1] = true
				queue = append(queue, idx-1)
			}
			if x+1 < width && !visited[idx+1] && colorGrid[idx+1] == colorIndex {
				visited[idx+1] = true
				queue = append(queue, idx+1)
			}
			if y > 0 && !visited[idx-width] && colorGrid[idx-width] == colorIndex {
				visited[idx-width] = true
				queue = append(queue, idx-width)
			}
			if y+1 < height && !visited[idx+width] && colorGrid[idx+width] == colorIndex {
				visited[idx+width] = true
				queue = append(queue, idx+width)
			}
		}

		comps = append(comps, c)
	}

	return comps
}

// buildAdjacency records an undirected edge for every 4-neighbor cell pair
// with differing nonzero region ids, then sorts and deduplicates each
// neighbor list.
func buildAdjacency(a *Artifact) {
	neighborSets := make(map[uint32]map[uint32]struct{})
	link := func(p, q uint32) {
		if neighborSets[p] == nil {
			neighborSets[p] = make(map[uint32]struct{})
		}
		neighborSets[p][q] = struct{}{}
	}

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			idx := y*a.Width + x
			id := a.PixelRegionID[idx]
			if id == NoRegion {
				continue
			}
			if x+1 < a.Width {
				if right := a.PixelRegionID[idx+1]; right != NoRegion && right != id {
					link(id, right)
					link(right, id)
				}
			}
			if y+1 < a.Height {
				if down := a.PixelRegionID[idx+a.Width]; down != NoRegion && down != id {
					link(id, down)
					link(down, id)
				}
			}
		}
	}

	for id, set := range neighborSets {
		neighbors := make([]uint32, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
		a.Adjacency[id] = neighbors
	}
}

// labelPoint picks a cell guaranteed interior to the region. The bounding
// centroid is tried first; when it falls outside the region (annular and
// other non-convex shapes) the fallback is the member cell farthest from the
// region boundary, computed with a multi-source BFS from the boundary cells.
// Ties pick the smallest raster index, keeping the result deterministic.
func labelPoint(pixelRegionID []uint32, width, height int, id uint32, cells []int) geometry.GridPoint {
	var sumX, sumY int
	for _, idx := range cells {
		sumX += idx % width
		sumY += idx / width
	}
	n := len(cells)
	cx := sumX / n
	cy := sumY / n
	if candidate := cy*width + cx; candidate >= 0 && candidate < len(pixelRegionID) &&
		pixelRegionID[candidate] == id {
		return geometry.GridPoint{X: cx, Y: cy}
	}

	// Distance-to-boundary via BFS seeded with the region's boundary cells.
	dist := make(map[int]int, n)
	var queue []int
	for _, idx := range cells {
		if isBoundaryCell(pixelRegionID, width, height, id, idx) {
			dist[idx] = 1
			queue = append(queue, idx)
		}
	}
	sort.Ints(queue)

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		d := dist[idx]
		x := idx % width
		y := idx / width

		visit := func(nb int) {
			if pixelRegionID[nb] != id {
				return
			}
			if _, seen := dist[nb]; seen {
				return
			}
			dist[nb] = d + 1
			queue = append(queue, nb)
		}
		if x > 0 {
			visit(idx - 1)
		}
		if x+1 < width {
			visit(idx + 1)
		}
		if y > 0 {
			visit(idx - width)
		}
		if y+1 < height {
			visit(idx + width)
		}
	}

	best := cells[0]
	bestDist := 0
	for _, idx := range cells {
		d := dist[idx]
		if d > bestDist || (d == bestDist && idx < best) {
			best = idx
			bestDist = d
		}
	}

	return geometry.GridPoint{X: best % width, Y: best / width}
}

// isBoundaryCell reports whether a member cell touches the grid edge or a
// cell outside the region.
func isBoundaryCell(pixelRegionID []uint32, width, height int, id uint32, idx int) bool {
	x := idx % width
	y := idx / width
	if x == 0 || y == 0 || x+1 >= width || y+1 >= height {
		return true
	}
	return pixelRegionID[idx-1] != id ||
		pixelRegionID[idx+1] != id ||
		pixelRegionID[idx-width] != id ||
		pixelRegionID[idx+width] != id
}
