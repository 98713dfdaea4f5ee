package systems

import (
	"math"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Camera derives the viewport from the tracked sprite. Position is the
// viewport's top-left corner in world pixels.
type Camera struct {
	Position dmath.Vec2

	worldW, worldH float64
	target         dmath.Vec2
	primed         bool
	lagging        bool
}

func NewCamera(worldW, worldH float64) *Camera {
	return &Camera{worldW: worldW, worldH: worldH}
}

// Cut makes the next Update snap to its target.
func (c *Camera) Cut() {
	c.primed = false
	c.lagging = false
}

// Lagging reports whether the camera is easing toward a distant target.
func (c *Camera) Lagging() bool {
	return c.lagging
}

// Update recomputes the viewport around focus, normally the hero.
func (c *Camera) Update(focus *components.Sprite) {
	if focus == nil {
		return
	}
	target := c.clampedTarget(focus.X, focus.Y-cfg.Camera.FocusOffsetY)

	if !c.primed {
		c.primed = true
		c.Position = target
		c.target = target
		return
	}

	jump := math.Abs(target.X-c.target.X) + math.Abs(target.Y-c.target.Y)
	c.target = target
	if jump > cfg.Camera.JumpThreshold {
		c.lagging = true
	}

	if !c.lagging {
		c.Position = target
		return
	}

	dx, dy := target.X-c.Position.X, target.Y-c.Position.Y
	dist := math.Hypot(dx, dy)
	if dist <= cfg.Camera.LagSpeed {
		c.Position = target
		c.lagging = false
		return
	}
	step := cfg.Camera.LagSpeed / dist
	c.Position = dmath.Vec2{X: c.Position.X + dx*step, Y: c.Position.Y + dy*step}
}

// clampedTarget returns the top-left corner of a viewport centered on (x, y)
// that stays inside the world; a world smaller than the viewport is centered.
func (c *Camera) clampedTarget(x, y float64) dmath.Vec2 {
	w, h := cfg.Camera.Width, cfg.Camera.Height
	return dmath.Vec2{
		X: clampAxis(x-w/2, w, c.worldW),
		Y: clampAxis(y-h/2, h, c.worldH),
	}
}

func clampAxis(pos, view, world float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	return max(0, min(pos, world-view))
}

// WorldBounds returns the viewport rectangle in world pixels.
func (c *Camera) WorldBounds() components.Rect {
	return components.Rect{
		X: c.Position.X,
		Y: c.Position.Y,
		W: cfg.Camera.Width,
		H: cfg.Camera.Height,
	}
}
