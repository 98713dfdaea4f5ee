package components

// Body is a sprite's physics block. The hit-box position is never stored: it
// is derived from the owning sprite's anchor plus (PLeft, PTop) on every query.
type Body struct {
	InvMass     float64 // 0 = passive (immovable), >0 = active
	PLeft, PTop float64 // Hit-box offset from the sprite anchor
	W, H        float64

	Edges        bool // Clamp the hit-box into the world
	Gravity      bool
	GravityRate  float64 // px/s, reset to 0 on ground contact
	GravityLimit float64 // Overrides the engine's cap when > 0

	// Previous frame's derived hit-box position
	PVX, PVY float64

	// Set when collision resolution or gravity moved the sprite this frame
	Adjusted bool

	Role string

	// When set, Collisions lists the sprites touched during the last pass
	TrackCollisions bool
	Collisions      []*Sprite

	// Pass through one-way platforms
	OnewayBypass bool
}

// Active reports whether the body can be moved by resolution.
func (b *Body) Active() bool {
	return b.InvMass > 0
}

// Sprite is the base entity owned by a scene.
type Sprite struct {
	ID   int
	Kind string

	// Authoritative world anchor
	X, Y float64

	Body *Body

	// Render pass-through
	VX, VY, VW, VH float64
	SrcX, SrcY     int
	Flop           bool
}

// Base returns s. Concrete sprites embed Sprite and inherit this.
func (s *Sprite) Base() *Sprite {
	return s
}

// PrepareSprite attaches a fresh physics block to s.
func PrepareSprite(s *Sprite, pleft, ptop, w, h, invmass float64) *Body {
	s.Body = &Body{
		InvMass: invmass,
		PLeft:   pleft,
		PTop:    ptop,
		W:       w,
		H:       h,
		PVX:     s.X + pleft,
		PVY:     s.Y + ptop,
	}
	return s.Body
}

// HitBox returns the physical box at the sprite's current anchor. Sprites
// without a body have an empty box at their anchor.
func (s *Sprite) HitBox() Rect {
	if s.Body == nil {
		return Rect{X: s.X, Y: s.Y}
	}
	return Rect{X: s.X + s.Body.PLeft, Y: s.Y + s.Body.PTop, W: s.Body.W, H: s.Body.H}
}

// SetHitBoxPosition moves the anchor so the hit-box's top-left lands on (x, y).
func (s *Sprite) SetHitBoxPosition(x, y float64) {
	s.X = x - s.Body.PLeft
	s.Y = y - s.Body.PTop
}

// RenderBounds returns the rectangle the renderer draws into.
func (s *Sprite) RenderBounds() Rect {
	return Rect{X: s.X + s.VX, Y: s.Y + s.VY, W: s.VW, H: s.VH}
}

// HasRole reports whether s has a physics block with the given role.
func (s *Sprite) HasRole(role string) bool {
	return s.Body != nil && s.Body.Role == role
}
