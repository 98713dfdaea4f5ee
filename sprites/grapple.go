package sprites

import (
	"image/color"
	"math"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
	"github.com/solarlune/resolv"
)

const hookSize = 4

var (
	hookColor = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	ropeColor = color.RGBA{R: 0x90, G: 0x70, B: 0x40, A: 0xff}
)

// Grapple is a hook fired from the hero. It flies until it strikes terrain or
// runs out of rope, then reels the hero in while ACTION is held.
type Grapple struct {
	components.Sprite
	world World
	hero  *Hero

	dirX, dirY float64
	length     float64
	probe      *resolv.Object
	latched    bool
	done       bool
}

func NewGrapple(w World, hero *Hero, dx, dy float64) *Grapple {
	cx, cy := hero.HitBox().Center()
	n := math.Hypot(dx, dy)
	g := &Grapple{
		Sprite: components.Sprite{
			Kind: tags.KindGrapple,
			X:    cx, Y: cy,
			VX: -hookSize / 2, VY: -hookSize / 2, VW: hookSize, VH: hookSize,
		},
		world: w,
		hero:  hero,
		dirX:  dx / n,
		dirY:  dy / n,
	}
	g.probe = resolv.NewObject(cx-hookSize/2, cy-hookSize/2, hookSize, hookSize, tags.ResolvProbe)
	g.probe.SetShape(resolv.NewRectangle(0, 0, hookSize, hookSize))
	w.Terrain().Add(g.probe)
	return g
}

func (g *Grapple) Latched() bool { return g.latched }

func (g *Grapple) Done() bool { return g.done }

func (g *Grapple) Update(elapsed float64, in components.Input) {
	if g.done {
		return
	}
	if !in.Pressed(cfg.ButtonAction) {
		g.Release()
		return
	}

	if !g.latched {
		g.fly(elapsed)
		return
	}
	if g.hero.Pull(g.X, g.Y, elapsed) <= cfg.Grapple.ArriveDist {
		g.Release()
	}
}

func (g *Grapple) fly(elapsed float64) {
	step := cfg.Grapple.HookSpeed * elapsed
	mx, my := g.dirX*step, g.dirY*step

	if c := g.probe.Check(mx, my, tags.ResolvSolid); c != nil {
		g.latch(c.Objects[0], mx, my)
		return
	}

	g.X += mx
	g.Y += my
	g.probe.X += mx
	g.probe.Y += my
	g.probe.Update()

	g.length += step
	if g.length >= cfg.Grapple.MaxLength {
		g.Release()
	}
}

// latch advances the hook up to the face of the struck block and holds it
// there.
func (g *Grapple) latch(hit *resolv.Object, mx, my float64) {
	px, py := g.probe.X, g.probe.Y
	// Entry time along each axis the hook is still clear of the block on.
	var t float64
	switch {
	case mx > 0 && px+hookSize <= hit.X:
		t = max(t, (hit.X-(px+hookSize))/mx)
	case mx < 0 && px >= hit.X+hit.W:
		t = max(t, (hit.X+hit.W-px)/mx)
	}
	switch {
	case my > 0 && py+hookSize <= hit.Y:
		t = max(t, (hit.Y-(py+hookSize))/my)
	case my < 0 && py >= hit.Y+hit.H:
		t = max(t, (hit.Y+hit.H-py)/my)
	}
	t = min(t, 1)

	g.X += mx * t
	g.Y += my * t
	g.probe.X += mx * t
	g.probe.Y += my * t
	g.probe.Update()
	g.latched = true
}

// Release retracts the hook. It is safe to call more than once.
func (g *Grapple) Release() {
	if g.done {
		return
	}
	g.done = true
	g.world.Terrain().Remove(g.probe)
	g.world.RemoveSprite(g)
	if g.latched {
		g.hero.Body.Gravity = true
	}
}

func (g *Grapple) Render(c components.Canvas, _ components.Rect) {
	hx, hy := g.hero.HitBox().Center()
	const links = 8
	for i := 1; i < links; i++ {
		f := float64(i) / links
		x := hx + (g.X-hx)*f
		y := hy + (g.Y-hy)*f
		c.FillRect(components.Rect{X: x - 1, Y: y - 1, W: 2, H: 2}, ropeColor)
	}
	c.FillRect(g.RenderBounds(), hookColor)
}
