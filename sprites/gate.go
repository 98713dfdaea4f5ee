package sprites

import (
	"image/color"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

var gateColor = color.RGBA{R: 0x80, G: 0x60, B: 0xa0, A: 0xff}

// Gate is a solid column that opens while its key is set in either the
// transient or the permanent state.
type Gate struct {
	components.Sprite
	world World
	key   string
	body  *components.Body
}

func NewGate(world World, x, y, h float64, key string) *Gate {
	g := &Gate{
		Sprite: components.Sprite{Kind: tags.KindGate, X: x, Y: y},
		world:  world,
		key:    key,
	}
	w := cfg.Grid.TileSize
	g.body = components.PrepareSprite(&g.Sprite, 0, 0, w, h, 0)
	g.body.Role = tags.RoleSolid
	g.VW, g.VH = w, h
	g.sync(false)
	return g
}

// Open reports whether the gate currently lets sprites through.
func (g *Gate) Open() bool {
	return g.Body == nil
}

func (g *Gate) OnTransientState(key string, _ int) {
	if key == g.key {
		g.sync(true)
	}
}

func (g *Gate) OnPermanentState(key string, _ int) {
	if key == g.key {
		g.sync(true)
	}
}

func (g *Gate) sync(announce bool) {
	open := g.world.TransientState().Get(g.key) != 0 || g.world.PermanentState().Get(g.key) != 0
	if open == g.Open() {
		return
	}
	if open {
		g.Body = nil
	} else {
		g.Body = g.body
		box := g.HitBox()
		g.body.PVX, g.body.PVY = box.X, box.Y
	}
	if announce {
		g.world.PlaySFX(cfg.SoundGate)
	}
}

func (g *Gate) Render(c components.Canvas, _ components.Rect) {
	if g.Open() {
		return
	}
	c.FillRect(g.HitBox(), gateColor)
}
