package sprites

import (
	"image/color"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var fragmentColor = color.RGBA{R: 0xa0, G: 0x80, B: 0x50}

// Fragment is a decorative shard with no physics. It flies ballistically and
// fades out, then removes itself.
type Fragment struct {
	components.Sprite
	world  World
	vx, vy float64
	fade   *gween.Tween
	alpha  float32
}

func NewFragment(world World, x, y, vx, vy float64) *Fragment {
	return &Fragment{
		Sprite: components.Sprite{
			Kind: tags.KindFragment,
			X:    x, Y: y,
			VX: -2, VY: -2, VW: 4, VH: 4,
		},
		world: world,
		vx:    vx,
		vy:    vy,
		fade:  gween.New(1, 0, float32(cfg.Breakable.FragmentLifetime), ease.Linear),
		alpha: 1,
	}
}

// Alpha is the current opacity, 1 at spawn and 0 when expired.
func (f *Fragment) Alpha() float32 { return f.alpha }

func (f *Fragment) Update(elapsed float64, _ components.Input) {
	alpha, done := f.fade.Update(float32(elapsed))
	f.alpha = alpha
	if done {
		f.world.RemoveSprite(f)
		return
	}
	f.vy += cfg.Breakable.FragmentGravity * elapsed
	f.X += f.vx * elapsed
	f.Y += f.vy * elapsed
}

func (f *Fragment) Render(c components.Canvas, _ components.Rect) {
	clr := fragmentColor
	clr.A = uint8(f.alpha * 0xff)
	// Premultiplied.
	clr.R = uint8(float32(clr.R) * f.alpha)
	clr.G = uint8(float32(clr.G) * f.alpha)
	clr.B = uint8(float32(clr.B) * f.alpha)
	c.FillRect(f.RenderBounds(), clr)
}
