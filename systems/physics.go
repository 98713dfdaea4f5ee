package systems

import (
	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

// ContactEpsilon is how close two faces must be to count as touching.
const ContactEpsilon = 0.01

// Space is what the engine needs from the scene that owns it.
type Space interface {
	// Sprites returns every sprite in insertion order.
	Sprites() []*components.Sprite
	WorldSize() (w, h float64)
}

// Physics resolves sprite hit-boxes once per tick. It is O(n²) in the number
// of physics sprites and keeps no state between frames besides the bodies'
// own persistent fields.
type Physics struct {
	space   Space
	active  []*components.Sprite
	passive []*components.Sprite
}

func NewPhysics(space Space) *Physics {
	return &Physics{space: space}
}

// MeasureFreedom returns how far s can move along (dx, dy) before touching
// another physics sprite or, when s.Body.Edges is set, the world edge. Exactly
// one of dx and dy must be nonzero. The result never exceeds limit.
func (p *Physics) MeasureFreedom(s *components.Sprite, dx, dy, limit float64) float64 {
	if s.Body == nil {
		return limit
	}
	box := s.HitBox()
	freedom := limit

	if s.Body.Edges {
		w, h := p.space.WorldSize()
		switch {
		case dx < 0:
			freedom = min(freedom, box.X)
		case dx > 0:
			freedom = min(freedom, w-box.Right())
		case dy < 0:
			freedom = min(freedom, box.Y)
		case dy > 0:
			freedom = min(freedom, h-box.Bottom())
		}
		if freedom <= 0 {
			return 0
		}
	}

	for _, o := range p.space.Sprites() {
		if o == s || o.Body == nil {
			continue
		}
		ob := o.HitBox()
		if o.Body.Role == tags.RoleOneway {
			if dy <= 0 || s.Body.OnewayBypass || box.Bottom() > ob.Y+cfg.Physics.OnewayTolerance {
				continue
			}
		}

		var lead, far float64
		if dx != 0 {
			if box.Y >= ob.Bottom() || ob.Y >= box.Bottom() {
				continue
			}
			if dx < 0 {
				lead, far = box.X-ob.Right(), box.X-ob.X
			} else {
				lead, far = ob.X-box.Right(), ob.Right()-box.Right()
			}
		} else {
			if box.X >= ob.Right() || ob.X >= box.Right() {
				continue
			}
			if dy < 0 {
				lead, far = box.Y-ob.Bottom(), box.Y-ob.Y
			} else {
				lead, far = ob.Y-box.Bottom(), ob.Bottom()-box.Bottom()
			}
		}
		if lead < 0 {
			// Already overlapping: block only if the obstacle reaches further
			// along the direction of travel than s does.
			if far <= 0 {
				continue
			}
			lead = 0
		}
		if lead < freedom {
			freedom = lead
		}
		if freedom <= 0 {
			return 0
		}
	}
	return freedom
}

// TestSpritePosition estimates how badly s overlaps the world at its current
// position: the out-of-bounds proportion per axis (when Edges is set) plus the
// fraction of its own area covered by each other physics sprite, clamped to 1.
func (p *Physics) TestSpritePosition(s *components.Sprite) float64 {
	if s.Body == nil {
		return 0
	}
	box := s.HitBox()
	if box.W <= 0 || box.H <= 0 {
		return 0
	}

	var total float64
	if s.Body.Edges {
		w, h := p.space.WorldSize()
		var ox, oy float64
		if box.X < 0 {
			ox += -box.X
		}
		if box.Right() > w {
			ox += box.Right() - w
		}
		if box.Y < 0 {
			oy += -box.Y
		}
		if box.Bottom() > h {
			oy += box.Bottom() - h
		}
		total += clampUnit(ox/box.W) + clampUnit(oy/box.H)
	}

	area := box.W * box.H
	for _, o := range p.space.Sprites() {
		if o == s || o.Body == nil || o.Body.Role == tags.RoleOneway {
			continue
		}
		total += box.OverlapArea(o.HitBox()) / area
		if total >= 1 {
			return 1
		}
	}
	return clampUnit(total)
}

// Touching returns the physics sprites in contact with the side of s facing
// (dx, dy), excluding one-way platforms unless looking down.
func (p *Physics) Touching(s *components.Sprite, dx, dy float64) []*components.Sprite {
	if s.Body == nil {
		return nil
	}
	box := s.HitBox()
	var out []*components.Sprite
	for _, o := range p.space.Sprites() {
		if o == s || o.Body == nil {
			continue
		}
		if o.Body.Role == tags.RoleOneway && dy <= 0 {
			continue
		}
		ob := o.HitBox()
		var gap float64
		switch {
		case dx < 0:
			if box.Y >= ob.Bottom() || ob.Y >= box.Bottom() {
				continue
			}
			gap = box.X - ob.Right()
		case dx > 0:
			if box.Y >= ob.Bottom() || ob.Y >= box.Bottom() {
				continue
			}
			gap = ob.X - box.Right()
		case dy < 0:
			if box.X >= ob.Right() || ob.X >= box.Right() {
				continue
			}
			gap = box.Y - ob.Bottom()
		default:
			if box.X >= ob.Right() || ob.X >= box.Right() {
				continue
			}
			gap = ob.Y - box.Bottom()
		}
		if gap >= -ContactEpsilon && gap <= ContactEpsilon {
			out = append(out, o)
		}
	}
	return out
}

// ContactCoverage returns the fraction of the side of s facing dx that is
// covered by touching sprites.
func (p *Physics) ContactCoverage(s *components.Sprite, dx float64) float64 {
	box := s.HitBox()
	if box.H <= 0 {
		return 0
	}
	var covered float64
	for _, o := range p.Touching(s, dx, 0) {
		ob := o.HitBox()
		covered += min(box.Bottom(), ob.Bottom()) - max(box.Y, ob.Y)
	}
	return clampUnit(covered / box.H)
}

// Update runs the per-frame pass: gravity, edge clamping, passive then active
// resolution in reverse insertion order, and ground detection.
func (p *Physics) Update(elapsed float64) {
	sprites := p.space.Sprites()

	p.active = p.active[:0]
	p.passive = p.passive[:0]
	for _, s := range sprites {
		b := s.Body
		if b == nil {
			continue
		}
		b.Adjusted = false
		if b.TrackCollisions {
			b.Collisions = b.Collisions[:0]
		}
		if b.Active() {
			p.active = append(p.active, s)
		} else {
			p.passive = append(p.passive, s)
		}
	}

	for _, s := range p.active {
		p.applyGravity(s, elapsed)
	}

	// Reverse order is load-bearing for determinism.
	for i := len(p.active) - 1; i >= 0; i-- {
		a := p.active[i]
		if a.Body.Edges {
			p.clampToEdges(a)
		}
		for _, b := range p.passive {
			p.CollideSprites(a, b)
		}
		for _, b := range p.active {
			if b != a {
				p.CollideSprites(a, b)
			}
		}
	}

	for _, s := range p.active {
		if s.Body.Gravity && p.MeasureFreedom(s, 0, 1, cfg.Physics.GroundProbe) == 0 {
			s.Body.GravityRate = 0
		}
	}

	for _, s := range sprites {
		if s.Body == nil {
			continue
		}
		box := s.HitBox()
		s.Body.PVX, s.Body.PVY = box.X, box.Y
	}
}

func (p *Physics) applyGravity(s *components.Sprite, elapsed float64) {
	b := s.Body
	if !b.Gravity {
		return
	}
	limit := cfg.Physics.GravityMax
	if b.GravityLimit > 0 {
		limit = b.GravityLimit
	}
	rate := max(b.GravityRate, cfg.Physics.GravityMin)
	rate = min(rate+cfg.Physics.GravityAcceleration*elapsed, limit)
	b.GravityRate = rate
	s.Y += rate * elapsed
	b.Adjusted = true
}

func (p *Physics) clampToEdges(s *components.Sprite) {
	w, h := p.space.WorldSize()
	box := s.HitBox()
	x := max(0, min(box.X, w-box.W))
	y := max(0, min(box.Y, h-box.H))
	if x != box.X || y != box.Y {
		s.SetHitBoxPosition(x, y)
		s.Body.Adjusted = true
	}
}

type escapeDir int

const (
	escapeLeft escapeDir = iota
	escapeRight
	escapeTop
	escapeBottom
)

// CollideSprites separates a and b if their hit-boxes overlap. Against an
// immovable body the mover snaps exactly to the shared edge; otherwise the
// escapement is split by inverse mass.
func (p *Physics) CollideSprites(a, b *components.Sprite) {
	ab, bb := a.Body, b.Body
	if a == b || ab == nil || bb == nil {
		return
	}
	if !ab.Active() && !bb.Active() {
		return
	}
	ra, rb := a.HitBox(), b.HitBox()
	if !ra.Overlaps(rb) {
		return
	}

	escLeft := ra.Right() - rb.X
	escRight := rb.Right() - ra.X
	escTop := ra.Bottom() - rb.Y
	escBottom := rb.Bottom() - ra.Y

	var dir escapeDir
	var esc float64
	switch {
	case bb.Role == tags.RoleOneway:
		if !catchesOneway(a, rb) {
			return
		}
		dir, esc = escapeTop, escTop
	case ab.Role == tags.RoleOneway:
		if !catchesOneway(b, ra) {
			return
		}
		dir, esc = escapeBottom, escBottom
	case escLeft <= escRight && escLeft <= escTop && escLeft <= escBottom:
		dir, esc = escapeLeft, escLeft
	case escRight <= escLeft && escRight <= escTop && escRight <= escBottom:
		dir, esc = escapeRight, escRight
	case escTop <= escLeft && escTop <= escRight && escTop <= escBottom:
		dir, esc = escapeTop, escTop
	default:
		dir, esc = escapeBottom, escBottom
	}

	recordCollision(a, b)
	recordCollision(b, a)

	switch {
	case !bb.Active():
		switch dir {
		case escapeLeft:
			a.SetHitBoxPosition(rb.X-ra.W, ra.Y)
		case escapeRight:
			a.SetHitBoxPosition(rb.Right(), ra.Y)
		case escapeTop:
			a.SetHitBoxPosition(ra.X, rb.Y-ra.H)
		case escapeBottom:
			a.SetHitBoxPosition(ra.X, rb.Bottom())
		}
		ab.Adjusted = true
	case !ab.Active():
		switch dir {
		case escapeLeft:
			b.SetHitBoxPosition(ra.Right(), rb.Y)
		case escapeRight:
			b.SetHitBoxPosition(ra.X-rb.W, rb.Y)
		case escapeTop:
			b.SetHitBoxPosition(rb.X, ra.Bottom())
		case escapeBottom:
			b.SetHitBoxPosition(rb.X, ra.Y-rb.H)
		}
		bb.Adjusted = true
	default:
		ux, uy := dir.unit()
		wa := ab.InvMass / (ab.InvMass + bb.InvMass)
		wb := bb.InvMass / (ab.InvMass + bb.InvMass)
		a.X += ux * esc * wa
		a.Y += uy * esc * wa
		b.X -= ux * esc * wb
		b.Y -= uy * esc * wb
		ab.Adjusted = true
		bb.Adjusted = true
	}
}

func (d escapeDir) unit() (float64, float64) {
	switch d {
	case escapeLeft:
		return -1, 0
	case escapeRight:
		return 1, 0
	case escapeTop:
		return 0, -1
	default:
		return 0, 1
	}
}

// catchesOneway reports whether a one-way top at platform should stop rider:
// the rider must have been above it last frame and not be dropping through.
func catchesOneway(rider *components.Sprite, platform components.Rect) bool {
	if rider.Body.OnewayBypass {
		return false
	}
	return rider.Body.PVY+rider.Body.H <= platform.Y+cfg.Physics.OnewayTolerance
}

func recordCollision(s, other *components.Sprite) {
	b := s.Body
	if !b.TrackCollisions {
		return
	}
	for _, c := range b.Collisions {
		if c == other {
			return
		}
	}
	b.Collisions = append(b.Collisions, other)
}

func clampUnit(v float64) float64 {
	return max(0, min(v, 1))
}
