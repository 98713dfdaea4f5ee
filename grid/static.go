package grid

import (
	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

// GenerateStaticSprites merges contiguous same-type cells into rectangles and
// returns one immovable sprite per rectangle, in row-major discovery order.
// One-way runs never merge vertically. Rectangles touching the grid boundary
// extend offscreen so nothing leaks out of the world, except one-way tops.
func (g *Grid) GenerateStaticSprites() []*components.Sprite {
	types := make([]CellType, len(g.V))
	for i, v := range g.V {
		types[i] = CellPhysics[v]
	}

	tile := cfg.Grid.TileSize
	ext := cfg.Physics.EdgeExtension

	var sprites []*components.Sprite
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := types[y*g.W+x]
			if t == CellVacant {
				continue
			}

			w := 1
			for x+w < g.W && types[y*g.W+x+w] == t {
				w++
			}
			h := 1
			if t != CellOneway {
				for y+h < g.H && rowMatches(types, g.W, x, y+h, w, t) {
					h++
				}
			}
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					types[yy*g.W+xx] = CellVacant
				}
			}

			r := components.Rect{
				X: float64(x) * tile,
				Y: float64(y) * tile,
				W: float64(w) * tile,
				H: float64(h) * tile,
			}
			if x == 0 {
				r.X -= ext
				r.W += ext
			}
			if x+w == g.W {
				r.W += ext
			}
			if y == 0 && t != CellOneway {
				r.Y -= ext
				r.H += ext
			}
			if y+h == g.H {
				r.H += ext
			}

			s := &components.Sprite{Kind: tags.KindStatic, X: r.X, Y: r.Y}
			body := components.PrepareSprite(s, 0, 0, r.W, r.H, 0)
			body.Role = t.Role()
			sprites = append(sprites, s)
		}
	}
	return sprites
}

func rowMatches(types []CellType, stride, x, y, w int, t CellType) bool {
	for i := x; i < x+w; i++ {
		if types[y*stride+i] != t {
			return false
		}
	}
	return true
}
