package maze

// Tile is one terrain unit of the generated grid. The values are the
// characters of the serialized form.
type Tile byte

const (
	// Wall is impassable terrain.
	Wall Tile = '#'
	// Path is walkable terrain carved by the generator.
	Path Tile = '.'
	// Goal marks the walkable center cell of the labyrinth.
	Goal Tile = 'H'
	// Undergrowth is impassable decorative terrain.
	Undergrowth Tile = ';'
	// Water is impassable decorative terrain.
	Water Tile = '~'
)

// Walkable reports whether an agent can stand on the tile.
func (t Tile) Walkable() bool {
	return t == Path || t == Goal
}
