/*
Package maze generates rectangular tile labyrinths with randomized
Kruskal spanning trees.

Cells of the maze lattice live at odd grid coordinates; the even
coordinates between them hold the walls the carver knocks down. Edges
between adjacent cells are shuffled and applied through a disjoint set,
so the carved passages form a spanning tree: fully connected and
acyclic. The geometric-center cell becomes the goal, each border side
gets at most one entrance restricted to its central band, leftover walls
are probabilistically recolored into decorative terrain, and a final
pass restores the wall/path-only border before the grid is rendered as
an ASCII string.
*/
package maze

import (
	"errors"
	"math/rand"
)

// Generation errors. All are reported before the grid is allocated, so
// a failed call never produces a partial layout.
var (
	ErrInvalidDimension     = errors.New("width and height must be at least 3")
	ErrInvalidEntranceCount = errors.New("at least one entrance is required")
	ErrUnsupportedGridSize  = errors.New("grid too small to hold a maze cell")
)

const (
	minDimension = 3

	// Decoration probabilities for tiles still walls after carving.
	waterProb       = 0.05
	undergrowthProb = 0.30
)

// edge is an unordered pair of adjacent cell ids.
type edge struct {
	a int
	b int
}

// generator owns the grid and lattice geometry for one Generate call.
type generator struct {
	grid       *grid
	rng        *rand.Rand
	cellWidth  int
	cellHeight int
}

// Validate checks generation parameters without allocating anything.
// It returns the same error Generate would.
func Validate(width, height, entrances int) error {
	if width < minDimension || height < minDimension {
		return ErrInvalidDimension
	}
	if entrances < 1 {
		return ErrInvalidEntranceCount
	}
	if (width-1)/2 <= 0 || (height-1)/2 <= 0 {
		return ErrUnsupportedGridSize
	}
	return nil
}

// Generate produces a width×height labyrinth with up to entrances border
// openings, using rng as the only source of randomness. The output has
// exactly height lines of width characters each, in the #.H;~ alphabet.
// Identical parameters and an identically seeded rng yield byte-identical
// output.
func Generate(width, height, entrances int, rng *rand.Rand) (string, error) {
	if err := Validate(width, height, entrances); err != nil {
		return "", err
	}

	g := &generator{
		grid:       newGrid(width, height),
		rng:        rng,
		cellWidth:  (width - 1) / 2,
		cellHeight: (height - 1) / 2,
	}

	g.carveCellCenters()
	g.carvePassages()
	g.markGoal()
	g.placeEntrances(entrances)
	g.decorate()
	g.enforceBorder()

	return g.grid.String(), nil
}

// cellCenter maps lattice cell (cx, cy) to its grid coordinate.
func cellCenter(cx, cy int) (int, int) {
	return 2*cx + 1, 2*cy + 1
}

func (g *generator) cellID(cx, cy int) int {
	return cy*g.cellWidth + cx
}

func (g *generator) carveCellCenters() {
	for cy := 0; cy < g.cellHeight; cy++ {
		for cx := 0; cx < g.cellWidth; cx++ {
			x, y := cellCenter(cx, cy)
			g.grid.set(x, y, Path)
		}
	}
}

// carvePassages runs randomized Kruskal over the cell lattice. The edge
// list holds each cell's right and down neighbor once, is shuffled
// uniformly, and every union of two components knocks down the wall tile
// midway between the two cell centers. Exactly cellWidth·cellHeight−1
// walls fall regardless of shuffle order.
func (g *generator) carvePassages() {
	edges := make([]edge, 0, g.cellWidth*(g.cellHeight-1)+(g.cellWidth-1)*g.cellHeight)
	for cy := 0; cy < g.cellHeight; cy++ {
		for cx := 0; cx < g.cellWidth; cx++ {
			if cx+1 < g.cellWidth {
				edges = append(edges, edge{a: g.cellID(cx, cy), b: g.cellID(cx+1, cy)})
			}
			if cy+1 < g.cellHeight {
				edges = append(edges, edge{a: g.cellID(cx, cy), b: g.cellID(cx, cy+1)})
			}
		}
	}

	g.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	sets := NewDisjointSet(g.cellWidth * g.cellHeight)
	for _, e := range edges {
		if !sets.Union(e.a, e.b) {
			continue
		}
		ax, ay := cellCenter(e.a%g.cellWidth, e.a/g.cellWidth)
		bx, by := cellCenter(e.b%g.cellWidth, e.b/g.cellWidth)
		g.grid.set((ax+bx)/2, (ay+by)/2, Path)
	}
}

// markGoal promotes the geometric-center cell to the goal. A center that
// is not a path tile is left untouched; Goal never overwrites anything
// but Path.
func (g *generator) markGoal() {
	x, y := cellCenter(g.cellWidth/2, g.cellHeight/2)
	if g.grid.at(x, y) == Path {
		g.grid.set(x, y, Goal)
	}
}

// side describes one border edge: whether entrance positions vary along
// x or y, the fixed border row/column, and the row/column one step
// toward the interior.
type side struct {
	horizontal bool
	fixed      int
	inward     int
}

// placeEntrances opens min(entrances, sides-with-candidates) border
// tiles, at most one per side, each picked uniformly from that side's
// candidate band.
func (g *generator) placeEntrances(entrances int) {
	allSides := []side{
		{horizontal: true, fixed: 0, inward: 1},
		{horizontal: true, fixed: g.grid.height - 1, inward: g.grid.height - 2},
		{horizontal: false, fixed: 0, inward: 1},
		{horizontal: false, fixed: g.grid.width - 1, inward: g.grid.width - 2},
	}

	var groups [][]int
	var groupSides []side
	for _, s := range allSides {
		if cands := g.entranceCandidates(s); len(cands) > 0 {
			groups = append(groups, cands)
			groupSides = append(groupSides, s)
		}
	}

	g.rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
		groupSides[i], groupSides[j] = groupSides[j], groupSides[i]
	})

	picks := entrances
	if picks > len(groups) {
		picks = len(groups)
	}
	for i := 0; i < picks; i++ {
		pos := groups[i][g.rng.Intn(len(groups[i]))]
		if groupSides[i].horizontal {
			g.grid.set(pos, groupSides[i].fixed, Path)
		} else {
			g.grid.set(groupSides[i].fixed, pos, Path)
		}
	}
}

// entranceCandidates restricts openings on one side to its central band:
// a quarter of the side length is trimmed from each end, clamped to the
// interior. An empty band falls back to the full interior span. A
// position qualifies only if the tile one step inward is walkable.
func (g *generator) entranceCandidates(s side) []int {
	length := g.grid.width
	if !s.horizontal {
		length = g.grid.height
	}

	margin := length / 4
	lo, hi := margin, length-1-margin
	if lo < 1 {
		lo = 1
	}
	if hi > length-2 {
		hi = length - 2
	}
	if lo > hi {
		lo, hi = 1, length-2
	}

	var cands []int
	for pos := lo; pos <= hi; pos++ {
		var inward Tile
		if s.horizontal {
			inward = g.grid.at(pos, s.inward)
		} else {
			inward = g.grid.at(s.inward, pos)
		}
		if inward.Walkable() {
			cands = append(cands, pos)
		}
	}
	return cands
}

// decorate recolors tiles still walls after carving, goal marking and
// entrance placement. Path and goal tiles are never visited.
func (g *generator) decorate() {
	for i, t := range g.grid.tiles {
		if t != Wall {
			continue
		}
		switch r := g.rng.Float64(); {
		case r < waterProb:
			g.grid.tiles[i] = Water
		case r < waterProb+undergrowthProb:
			g.grid.tiles[i] = Undergrowth
		}
	}
}

// enforceBorder forces every non-path border tile back to wall. This
// strips any decoration the previous pass placed on the outer ring, so
// the border ends up holding only walls and the carved entrances.
func (g *generator) enforceBorder() {
	w, h := g.grid.width, g.grid.height
	for x := 0; x < w; x++ {
		if g.grid.at(x, 0) != Path {
			g.grid.set(x, 0, Wall)
		}
		if g.grid.at(x, h-1) != Path {
			g.grid.set(x, h-1, Wall)
		}
	}
	for y := 0; y < h; y++ {
		if g.grid.at(0, y) != Path {
			g.grid.set(0, y, Wall)
		}
		if g.grid.at(w-1, y) != Path {
			g.grid.set(w-1, y, Wall)
		}
	}
}
