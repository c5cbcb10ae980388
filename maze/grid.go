package maze

import "strings"

// grid is a width×height tile buffer with row-major addressing. It is
// owned by a single generation call and never escapes it; callers only
// ever see the serialized copy.
type grid struct {
	width  int
	height int
	tiles  []Tile
}

func newGrid(width, height int) *grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall
	}
	return &grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

func (g *grid) at(x, y int) Tile {
	return g.tiles[y*g.width+x]
}

func (g *grid) set(x, y int, t Tile) {
	g.tiles[y*g.width+x] = t
}

// String renders the grid row by row, rows joined by a single newline
// with no trailing newline after the last row.
func (g *grid) String() string {
	var b strings.Builder
	b.Grow(g.height*(g.width+1) - 1)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			b.WriteByte(byte(g.at(x, y)))
		}
	}
	return b.String()
}
