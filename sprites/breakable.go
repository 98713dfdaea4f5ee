package sprites

import (
	"image/color"
	"math"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

var breakableColor = color.RGBA{R: 0xa0, G: 0x80, B: 0x50, A: 0xff}

// Breakable is a solid tile that shatters under a heavy enough landing.
type Breakable struct {
	components.Sprite
	world World
}

func NewBreakable(world World, x, y float64) *Breakable {
	b := &Breakable{
		Sprite: components.Sprite{Kind: tags.KindBreakable, X: x, Y: y},
		world:  world,
	}
	ts := cfg.Grid.TileSize
	body := components.PrepareSprite(&b.Sprite, 0, 0, ts, ts, 0)
	body.Role = tags.RoleSolid
	b.VW, b.VH = ts, ts
	return b
}

func (b *Breakable) OnCannonball(fallen float64) {
	if fallen < cfg.Breakable.MinFall {
		return
	}
	cx, cy := b.HitBox().Center()
	b.world.RemoveSprite(b)

	n := cfg.Breakable.FragmentCount
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		vx := math.Cos(angle) * cfg.Breakable.FragmentSpeed
		vy := math.Sin(angle) * cfg.Breakable.FragmentSpeed
		b.world.AddSprite(NewFragment(b.world, cx, cy, vx, vy))
	}
	b.world.PlaySFX(cfg.SoundBreak)
}

func (b *Breakable) Render(c components.Canvas, _ components.Rect) {
	c.FillRect(b.HitBox(), breakableColor)
}
