package sprites

import (
	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

// mover drives a sprite back and forth along one axis and reverses when the
// sprite has barely moved over a sampling window.
type mover struct {
	horizontal bool
	min, max   float64
	dir        float64
	rail       float64 // Fixed off-axis coordinate

	sample    float64
	sampleAge float64
}

// pin puts s back on its rail after riders have pushed it off-axis.
func (m *mover) pin(s *components.Sprite) {
	if m.horizontal {
		s.Y = m.rail
	} else {
		s.X = m.rail
	}
}

func (m *mover) pos(s *components.Sprite) float64 {
	if m.horizontal {
		return s.X
	}
	return s.Y
}

// delta returns the (dx, dy) for a step of size step in the current direction.
func (m *mover) delta(step float64) (float64, float64) {
	if m.horizontal {
		return m.dir * step, 0
	}
	return 0, m.dir * step
}

// bounce reverses at the ends of the travel range and restarts sampling.
func (m *mover) bounce(pos float64) {
	switch {
	case pos >= m.max && m.dir > 0:
		m.dir = -1
	case pos <= m.min && m.dir < 0:
		m.dir = 1
	default:
		return
	}
	m.sample = pos
	m.sampleAge = 0
}

// stuck samples pos every StuckWindow and reports a window with less net
// displacement than StuckThreshold.
func (m *mover) stuck(pos, elapsed float64) bool {
	m.sampleAge += elapsed
	if m.sampleAge < cfg.Platform.StuckWindow {
		return false
	}
	moved := abs(pos - m.sample)
	m.sample = pos
	m.sampleAge = 0
	return moved < cfg.Platform.StuckThreshold
}

// carryRiders translates every active sprite resting on top of s by (dx, dy).
// Sprites touching the sides are left alone.
func carryRiders(s *components.Sprite, dx, dy float64) {
	top := s.HitBox().Y
	for _, r := range s.Body.Collisions {
		if r.Body == nil || !r.Body.Active() || r == s {
			continue
		}
		if r.HitBox().Bottom() > top+cfg.Platform.RiderTolerance {
			continue
		}
		r.X += dx
		r.Y += dy
	}
}

// Platform is a moving platform that carries what stands on it.
type Platform struct {
	components.Sprite
	world World
	move  mover
}

// NewPlatform creates a platform of width w at (x, y) travelling span pixels
// right or down from there.
func NewPlatform(world World, x, y, w float64, horizontal bool, span float64, oneway bool) *Platform {
	p := &Platform{
		Sprite: components.Sprite{Kind: tags.KindPlatform, X: x, Y: y},
		world:  world,
	}
	h := cfg.Grid.TileSize / 2
	body := components.PrepareSprite(&p.Sprite, 0, 0, w, h, cfg.Platform.InvMass)
	body.TrackCollisions = true
	body.Role = tags.RoleSolid
	if oneway {
		body.Role = tags.RoleOneway
	}
	p.VW, p.VH = w, h

	p.move = mover{horizontal: horizontal, dir: 1, rail: x}
	if horizontal {
		p.move.rail = y
	}
	p.move.min = p.move.pos(&p.Sprite)
	p.move.max = p.move.min + span
	p.move.sample = p.move.min
	return p
}

func (p *Platform) Update(elapsed float64, _ components.Input) {
	if p.world.TransientState().Get(cfg.ItemStopwatch) != 0 {
		return
	}
	p.move.pin(&p.Sprite)
	pos := p.move.pos(&p.Sprite)
	p.move.bounce(pos)
	if p.move.stuck(pos, elapsed) {
		p.move.dir = -p.move.dir
	}

	dx, dy := p.move.delta(cfg.Platform.Speed * elapsed)
	carryRiders(&p.Sprite, dx, dy)
	p.X += dx
	p.Y += dy
}

type crusherPhase int

const (
	crusherWaiting crusherPhase = iota
	crusherDropping
	crusherRising
)

// Crusher drops quickly until it hits something or reaches the end of its
// travel, rises slowly back, waits, and repeats.
type Crusher struct {
	components.Sprite
	world World
	move  mover
	phase crusherPhase
	wait  float64
}

func NewCrusher(world World, x, y, w, h, span float64) *Crusher {
	c := &Crusher{
		Sprite: components.Sprite{Kind: tags.KindCrusher, X: x, Y: y},
		world:  world,
		phase:  crusherWaiting,
		wait:   cfg.Crusher.WaitTime,
	}
	body := components.PrepareSprite(&c.Sprite, 0, 0, w, h, cfg.Platform.InvMass)
	body.Role = tags.RoleSolid
	body.TrackCollisions = true
	c.VW, c.VH = w, h

	c.move = mover{min: y, max: y + span, dir: 1, rail: x, sample: y}
	return c
}

func (c *Crusher) Update(elapsed float64, _ components.Input) {
	if c.world.TransientState().Get(cfg.ItemStopwatch) != 0 {
		return
	}
	c.move.pin(&c.Sprite)

	switch c.phase {
	case crusherWaiting:
		c.wait -= elapsed
		if c.wait <= 0 {
			c.phase = crusherDropping
			c.move.dir = 1
			c.move.sample = c.Y
			c.move.sampleAge = 0
		}
	case crusherDropping:
		if c.Y >= c.move.max || c.move.stuck(c.Y, elapsed) {
			c.phase = crusherRising
			c.move.dir = -1
			return
		}
		c.Y = min(c.move.max, c.Y+cfg.Crusher.DropSpeed*elapsed)
	case crusherRising:
		if c.Y <= c.move.min {
			c.Y = c.move.min
			c.phase = crusherWaiting
			c.wait = cfg.Crusher.WaitTime
			return
		}
		step := max(-cfg.Crusher.RiseSpeed*elapsed, c.move.min-c.Y)
		carryRiders(&c.Sprite, 0, step)
		c.Y += step
	}
}
