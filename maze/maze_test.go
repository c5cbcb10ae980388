package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGenerate(t *testing.T, width, height, entrances int, seed int64) []string {
	t.Helper()
	out, err := Generate(width, height, entrances, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return strings.Split(out, "\n")
}

// cellDims mirrors the lattice geometry of the generator.
func cellDims(width, height int) (int, int) {
	return (width - 1) / 2, (height - 1) / 2
}

func walkable(c byte) bool {
	return c == '.' || c == 'H'
}

// floodFrom counts the walkable tiles 4-directionally reachable from
// (x, y).
func floodFrom(rows []string, x, y int) int {
	type point struct{ x, y int }
	seen := map[point]struct{}{{x, y}: {}}
	stack := []point{{x, y}}
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, d := range []point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := point{p.x + d.x, p.y + d.y}
			if n.y < 0 || n.y >= len(rows) || n.x < 0 || n.x >= len(rows[n.y]) {
				continue
			}
			if _, ok := seen[n]; ok || !walkable(rows[n.y][n.x]) {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return count
}

func countWalkable(rows []string) (total int, goalX, goalY int) {
	goalX, goalY = -1, -1
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if walkable(row[x]) {
				total++
			}
			if row[x] == 'H' {
				goalX, goalY = x, y
			}
		}
	}
	return total, goalX, goalY
}

func TestGenerate_OutputShape(t *testing.T) {
	dims := []struct{ w, h int }{
		{3, 3}, {5, 5}, {9, 7}, {8, 6}, {21, 31},
	}
	for _, d := range dims {
		rows := mustGenerate(t, d.w, d.h, 1, 11)
		require.Len(t, rows, d.h)
		for _, row := range rows {
			assert.Len(t, row, d.w)
			for i := 0; i < len(row); i++ {
				assert.Contains(t, "#.H;~", string(row[i]))
			}
		}

		// Exactly one goal, sitting on the center cell.
		cw, ch := cellDims(d.w, d.h)
		_, gx, gy := countWalkable(rows)
		assert.Equal(t, 2*(cw/2)+1, gx)
		assert.Equal(t, 2*(ch/2)+1, gy)
		assert.Equal(t, 1, strings.Count(strings.Join(rows, ""), "H"))
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("width too small", func(t *testing.T) {
		_, err := Generate(2, 5, 1, rng)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("height too small", func(t *testing.T) {
		_, err := Generate(5, 2, 1, rng)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("no entrances", func(t *testing.T) {
		_, err := Generate(5, 5, 0, rng)
		assert.ErrorIs(t, err, ErrInvalidEntranceCount)
	})
}

func TestGenerate_SpanningTreeSize(t *testing.T) {
	// Cell centers plus carved connectors form a spanning tree, so the
	// interior holds exactly 2·cw·ch−1 walkable tiles no matter the seed.
	for _, d := range []struct{ w, h int }{{5, 5}, {11, 9}, {8, 6}, {17, 17}} {
		for seed := int64(0); seed < 5; seed++ {
			rows := mustGenerate(t, d.w, d.h, 1, seed)
			cw, ch := cellDims(d.w, d.h)

			interior := 0
			for y := 1; y < d.h-1; y++ {
				for x := 1; x < d.w-1; x++ {
					if walkable(rows[y][x]) {
						interior++
					}
				}
			}
			assert.Equal(t, 2*cw*ch-1, interior, "w=%d h=%d seed=%d", d.w, d.h, seed)
		}
	}
}

func TestGenerate_Connectivity(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rows := mustGenerate(t, 15, 13, 3, seed)
		total, gx, gy := countWalkable(rows)
		require.NotEqual(t, -1, gx)
		assert.Equal(t, total, floodFrom(rows, gx, gy), "seed=%d", seed)
	}
}

func TestGenerate_BorderInvariant(t *testing.T) {
	check := func(t *testing.T, w, h, entrances, wantOpenings int, seed int64) {
		rows := mustGenerate(t, w, h, entrances, seed)

		sideOpenings := map[string]int{}
		onBorder := func(name string, c byte) {
			assert.True(t, c == '#' || c == '.', "border tile %q on %s side", c, name)
			if c == '.' {
				sideOpenings[name]++
			}
		}
		for x := 0; x < w; x++ {
			onBorder("top", rows[0][x])
			onBorder("bottom", rows[h-1][x])
		}
		for y := 1; y < h-1; y++ {
			onBorder("left", rows[y][0])
			onBorder("right", rows[y][w-1])
		}

		total := 0
		for name, n := range sideOpenings {
			assert.LessOrEqual(t, n, 1, "%s side", name)
			total += n
		}
		assert.Equal(t, wantOpenings, total)
	}

	t.Run("odd dimensions have all four sides", func(t *testing.T) {
		for seed := int64(0); seed < 5; seed++ {
			check(t, 11, 9, 4, 4, seed)
			check(t, 11, 9, 2, 2, seed)
			check(t, 11, 9, 9, 4, seed) // more entrances than sides
		}
	})

	t.Run("even dimensions lose the far sides", func(t *testing.T) {
		// With an even width the right border's inward column holds no
		// walkable tile, same for the bottom with an even height.
		for seed := int64(0); seed < 5; seed++ {
			check(t, 8, 6, 4, 2, seed)
			check(t, 8, 9, 4, 3, seed)
		}
	})
}

func TestGenerate_Determinism(t *testing.T) {
	first, err := Generate(31, 25, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := Generate(31, 25, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := Generate(31, 25, 3, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestGenerate_DecorationNeverTouchesCarvedTiles(t *testing.T) {
	rows := mustGenerate(t, 21, 21, 2, 7)
	cw, ch := cellDims(21, 21)

	// Every cell center must still be walkable after decoration.
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			assert.True(t, walkable(rows[2*cy+1][2*cx+1]), "cell (%d,%d)", cx, cy)
		}
	}
}

func TestGenerate_SmallScenario(t *testing.T) {
	rows := mustGenerate(t, 5, 5, 1, 42)

	openings := 0
	var ex, ey int
	for x := 0; x < 5; x++ {
		for _, y := range []int{0, 4} {
			require.True(t, rows[y][x] == '#' || rows[y][x] == '.')
			if rows[y][x] == '.' {
				openings++
				ex, ey = x, y
			}
		}
	}
	for y := 1; y < 4; y++ {
		for _, x := range []int{0, 4} {
			require.True(t, rows[y][x] == '#' || rows[y][x] == '.')
			if rows[y][x] == '.' {
				openings++
				ex, ey = x, y
			}
		}
	}
	require.Equal(t, 1, openings)

	// The goal must be reachable from the single entrance.
	total, _, _ := countWalkable(rows)
	assert.Equal(t, total, floodFrom(rows, ex, ey))
	assert.Equal(t, byte('H'), rows[3][3])
}
