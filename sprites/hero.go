package sprites

import (
	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

type jumpKind int

const (
	jumpNone jumpKind = iota
	jumpNormal
	jumpWall
	jumpLong
)

// Hero is the player sprite. Its anchor is the bottom center of the hit-box.
type Hero struct {
	components.Sprite
	world World

	input components.Input
	clock float64

	facing   float64
	lastDir  float64
	walkVX   float64
	residual float64

	// Dash stroke history
	strokeDir        float64
	strokePressedAt  float64
	strokeReleasedAt float64
	strokeHold       float64
	strokeReleased   bool

	started      bool
	grounded     bool
	airTime      float64
	footTime     float64
	fallStartY   float64
	jumpedInAir  bool
	jump         jumpKind
	jumpTier     int
	jumpSequence int
	jumpDuration float64
	jumpVX       float64
	jumpVY       float64

	ducking     bool
	cannonball  bool
	wallSliding bool
	bypassTimer float64

	entryX, entryY   float64
	reviveX, reviveY float64
	hadInput         bool
	immortal         float64
	Deaths           int

	selected    string
	item        string
	itemTimer   float64
	vacuumStuck bool
	grapple     *Grapple
}

func NewHero(w World, x, y float64) *Hero {
	h := &Hero{
		Sprite: components.Sprite{Kind: tags.KindHero, X: x, Y: y},
		world:  w,
		facing: cfg.DirectionRight,
		entryX: x, entryY: y,
		reviveX: x, reviveY: y,
		fallStartY: y,
	}
	hc := cfg.Hero
	body := components.PrepareSprite(&h.Sprite, -hc.Width/2, -hc.Height, hc.Width, hc.Height, hc.InvMass)
	body.Role = tags.RoleFragile
	body.Edges = true
	body.Gravity = true
	body.TrackCollisions = true

	h.VX, h.VY, h.VW, h.VH = -8, -24, 16, 24

	if owned := h.ownedItems(); len(owned) > 0 {
		h.selected = owned[0]
	}
	return h
}

// Facing is -1 or 1.
func (h *Hero) Facing() float64 { return h.facing }

func (h *Hero) Grounded() bool { return h.grounded }

func (h *Hero) Ducking() bool { return h.ducking }

func (h *Hero) WallSliding() bool { return h.wallSliding }

// Item returns the item in progress, or "".
func (h *Hero) Item() string { return h.item }

// SelectedItem returns the item ACTION will use.
func (h *Hero) SelectedItem() string { return h.selected }

func (h *Hero) RevivePoint() (float64, float64) { return h.reviveX, h.reviveY }

// Update runs the hero's state machines for one tick. It only sets up
// positions and physics flags; the scene's physics pass runs afterwards.
func (h *Hero) Update(elapsed float64, in components.Input) {
	h.clock += elapsed
	h.input = in
	if in.Any() {
		h.hadInput = true
	}
	h.tickTimers(elapsed)

	if h.checkDeath() {
		return
	}

	h.updateGround(elapsed)
	h.updateItemSelection()
	h.updateItems(elapsed)
	h.updateDuck()
	h.updateJump(elapsed)
	h.updateWalk(elapsed)
	h.updateWallSlide()
	h.updateGravityLimit()
	h.updateRevivePoint()
}

func (h *Hero) tickTimers(elapsed float64) {
	if h.immortal > 0 {
		h.immortal = max(0, h.immortal-elapsed)
	}
	if h.bypassTimer > 0 {
		h.bypassTimer -= elapsed
		if h.bypassTimer <= 0 {
			h.bypassTimer = 0
			h.Body.OnewayBypass = false
		}
	}
}

// checkDeath handles hazard contact and crushing. It reports whether the hero
// was revived this tick.
func (h *Hero) checkDeath() bool {
	if h.immortal > 0 {
		return false
	}
	if !h.touchingHazard() && h.world.Physics().TestSpritePosition(&h.Sprite) < cfg.Hero.CrushOverlap {
		return false
	}
	h.die()
	return true
}

// touchingHazard reports hazards the hero overlapped during the last physics
// pass or is flush against now.
func (h *Hero) touchingHazard() bool {
	for _, c := range h.Body.Collisions {
		if c.HasRole(tags.RoleHazard) {
			return true
		}
	}
	p := h.world.Physics()
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		for _, c := range p.Touching(&h.Sprite, d[0], d[1]) {
			if c.HasRole(tags.RoleHazard) {
				return true
			}
		}
	}
	return false
}

func (h *Hero) die() {
	h.world.PlaySFX(cfg.SoundDie)
	h.Deaths++

	x, y := h.reviveX, h.reviveY
	if !h.hadInput {
		x, y = h.entryX, h.entryY
	}
	h.endItem()
	h.resetMotion()
	h.X, h.Y = x, y
	h.fallStartY = y
	h.Body.PVX, h.Body.PVY = h.HitBox().X, h.HitBox().Y
	h.Body.Collisions = h.Body.Collisions[:0]
	h.immortal = cfg.Hero.ImmortalTime

	h.world.PlaySFX(cfg.SoundRevive)
}

func (h *Hero) resetMotion() {
	h.walkVX = 0
	h.residual = 0
	h.jump = jumpNone
	h.jumpSequence = 0
	h.cannonball = false
	h.wallSliding = false
	h.bypassTimer = 0
	h.setDuck(false)
	b := h.Body
	b.Gravity = true
	b.GravityRate = 0
	b.GravityLimit = 0
	b.OnewayBypass = false
}

func (h *Hero) updateGround(elapsed float64) {
	p := h.world.Physics()
	grounded := p.MeasureFreedom(&h.Sprite, 0, 1, 1) == 0
	if !h.started {
		h.started = true
		h.grounded = grounded
		h.footTime = cfg.Hero.TripleJumpFootTime + elapsed
		return
	}

	switch {
	case grounded && !h.grounded:
		h.land()
	case !grounded && h.grounded:
		h.airTime = 0
		h.fallStartY = h.Y
		if h.jump == jumpNone {
			// Walked off a ledge.
			h.jumpSequence = 0
		}
	}
	h.grounded = grounded

	if grounded {
		h.footTime += elapsed
	} else {
		h.airTime += elapsed
		h.fallStartY = min(h.fallStartY, h.Y)
	}
}

func (h *Hero) land() {
	fallen := h.Y - h.fallStartY
	below := h.world.Physics().Touching(&h.Sprite, 0, 1)

	switch {
	case h.cannonball && fallen >= cfg.Hero.CannonballMinFall:
		h.world.PlaySFX(cfg.SoundCannonballLand)
		h.notifyCannonball(below, fallen)
	case h.item == cfg.ItemBoots && fallen >= cfg.Items.BootsStompFall:
		h.world.PlaySFX(cfg.SoundBoots)
		h.notifyCannonball(below, fallen)
	default:
		h.world.PlaySFX(cfg.SoundLand)
	}

	h.cannonball = false
	h.footTime = 0
	h.jumpedInAir = false
	if h.jump == jumpWall || h.jump == jumpLong {
		h.endJump()
	}
}

func (h *Hero) notifyCannonball(below []*components.Sprite, fallen float64) {
	for _, s := range below {
		if r, ok := h.world.EntityByID(s.ID).(components.CannonballReactive); ok {
			r.OnCannonball(fallen)
		}
	}
}

// updateRevivePoint records the last safe position: grounded, at rest, and
// touching nothing but static solids.
func (h *Hero) updateRevivePoint() {
	if !h.grounded || h.jump != jumpNone || h.walkVX != 0 || h.residual != 0 || h.item != "" {
		return
	}
	for _, c := range h.Body.Collisions {
		if c.Kind != tags.KindStatic || !c.HasRole(tags.RoleSolid) {
			return
		}
	}
	h.reviveX, h.reviveY = h.X, h.Y
}

func (h *Hero) updateGravityLimit() {
	b := h.Body
	switch {
	case h.cannonball:
		b.GravityLimit = cfg.Hero.CannonballSpeed
	case h.item == cfg.ItemUmbrella:
		b.GravityLimit = cfg.Items.UmbrellaGravity
	case h.wallSliding:
		b.GravityLimit = cfg.Hero.WallSlideGravity
	default:
		b.GravityLimit = 0
	}
}

// allows reports whether the item in progress permits a basic move.
func (h *Hero) allows(move func(cfg.ItemRules) bool) bool {
	if h.item == "" {
		return true
	}
	return move(cfg.Items.Rules[h.item])
}

func canWalk(r cfg.ItemRules) bool { return r.Walk }
func canJump(r cfg.ItemRules) bool { return r.Jump }
func canDuck(r cfg.ItemRules) bool { return r.Duck }

// moveBy moves the hero along one axis as far as physics allows, returning the
// distance actually covered.
func (h *Hero) moveBy(dx, dy float64) float64 {
	dist := abs(dx) + abs(dy)
	if dist == 0 {
		return 0
	}
	free := h.world.Physics().MeasureFreedom(&h.Sprite, sign(dx), sign(dy), dist)
	step := min(dist, free)
	h.X += sign(dx) * step
	h.Y += sign(dy) * step
	return step
}
