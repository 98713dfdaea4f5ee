package sprites

import (
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/systems"
	"github.com/automoto/sweeper/tags"
)

func (h *Hero) setDuck(duck bool) {
	if h.ducking == duck {
		return
	}
	height := cfg.Hero.Height
	if duck {
		height = cfg.Hero.DuckHeight
	}
	h.Body.PTop = -height
	h.Body.H = height
	h.ducking = duck
}

func (h *Hero) updateDuck() {
	in := h.input
	want := in.Pressed(cfg.ButtonDown) && h.allows(canDuck)

	if want && !h.ducking {
		h.setDuck(true)
		h.jumpSequence = 0
		if !h.grounded && in.JustPressed(cfg.ButtonDown) {
			h.startCannonball()
		}
		return
	}
	if !want && h.ducking {
		h.tryStand()
	}
}

// tryStand restores full height if there is headroom.
func (h *Hero) tryStand() bool {
	need := cfg.Hero.Height - cfg.Hero.DuckHeight
	if h.world.Physics().MeasureFreedom(&h.Sprite, 0, -1, need) < need {
		return false
	}
	h.setDuck(false)
	return true
}

func (h *Hero) startCannonball() {
	p := h.world.Physics()
	if h.cannonball || p.MeasureFreedom(&h.Sprite, 0, 1, cfg.Hero.CannonballMinRoom) < cfg.Hero.CannonballMinRoom {
		return
	}
	if h.jump != jumpNone {
		h.endJump()
	}
	h.cannonball = true
	h.Body.Gravity = true
	h.Body.GravityRate = cfg.Hero.CannonballSpeed
	h.world.PlaySFX(cfg.SoundCannonball)
}

func (h *Hero) updateJump(elapsed float64) {
	in := h.input

	if in.JustPressed(cfg.ButtonJump) {
		switch {
		case !h.allows(canJump):
		case in.Pressed(cfg.ButtonDown) && h.grounded && h.dropThrough():
		case h.jump == jumpNone && h.ducking && h.grounded && h.walkDir() != 0:
			h.startLongJump()
		case h.jump == jumpNone && h.canGroundJump():
			h.startJump()
		case !h.grounded && h.wallDir() != 0:
			h.startWallJump(h.wallDir())
		}
	}

	switch h.jump {
	case jumpNormal:
		h.stepJump(elapsed)
	case jumpWall, jumpLong:
		h.step2DJump(elapsed)
	}
}

func (h *Hero) canGroundJump() bool {
	if h.ducking {
		return false
	}
	if h.grounded {
		return true
	}
	return !h.jumpedInAir && h.airTime <= cfg.Hero.CoyoteTime
}

func (h *Hero) startJump() {
	tier := 0
	if h.footTime <= cfg.Hero.TripleJumpFootTime {
		tier = h.jumpSequence
	}
	h.jumpTier = tier
	h.jumpSequence = (tier + 1) % len(cfg.Hero.JumpLimitTime)
	h.jump = jumpNormal
	h.jumpDuration = 0
	h.jumpedInAir = true
	h.Body.Gravity = false
	h.Body.GravityRate = 0
	h.world.PlaySFX(cfg.SoundJump)
}

// stepJump ascends with linearly decreasing speed until JUMP is released, the
// tier's time limit passes, or the hero bumps into a ceiling.
func (h *Hero) stepJump(elapsed float64) {
	limit := cfg.Hero.JumpLimitTime[h.jumpTier]
	if !h.input.Pressed(cfg.ButtonJump) || h.jumpDuration >= limit {
		h.endJump()
		return
	}

	speed := (limit - h.jumpDuration) * cfg.Hero.JumpSpeedMax[h.jumpTier] / limit
	h.jumpDuration += elapsed
	want := speed * elapsed
	if h.moveBy(0, -want) < want {
		h.endJump()
	}
}

func (h *Hero) startWallJump(wall float64) {
	h.jumpSequence = 0
	h.wallSliding = false
	h.startJump2D(jumpWall, -wall*cfg.Hero.WallJumpSpeedX, -cfg.Hero.WallJumpSpeedY)
	h.facing = -wall
	h.world.PlaySFX(cfg.SoundWallJump)
}

func (h *Hero) startLongJump() {
	if !h.tryStand() {
		return
	}
	h.jumpSequence = 0
	h.startJump2D(jumpLong, h.walkDir()*cfg.Hero.LongJumpSpeedX, -cfg.Hero.LongJumpSpeedY)
	h.world.PlaySFX(cfg.SoundLongJump)
}

func (h *Hero) startJump2D(kind jumpKind, vx, vy float64) {
	h.jump = kind
	h.jumpVX, h.jumpVY = vx, vy
	h.jumpedInAir = true
	h.walkVX = 0
	h.residual = 0
	h.Body.Gravity = false
	h.Body.GravityRate = 0
}

// step2DJump integrates a wall or long jump. Each axis decays linearly at its
// own rate; once vertical speed turns downward, gravity takes over and the
// horizontal speed carries on as walk residual.
func (h *Hero) step2DJump(elapsed float64) {
	decayX, decayY := cfg.Hero.WallJumpDecayX, cfg.Hero.WallJumpDecayY
	if h.jump == jumpLong {
		decayX, decayY = cfg.Hero.LongJumpDecayX, cfg.Hero.LongJumpDecayY
	}

	if h.jumpVX != 0 {
		want := abs(h.jumpVX) * elapsed
		if h.moveBy(h.jumpVX*elapsed, 0) < want {
			h.jumpVX = 0
		}
	}
	if h.jumpVY < 0 {
		want := -h.jumpVY * elapsed
		if h.moveBy(0, h.jumpVY*elapsed) < want {
			h.jumpVY = 0
		}
	}

	h.jumpVX = sign(h.jumpVX) * max(0, abs(h.jumpVX)-decayX*elapsed)
	h.jumpVY += decayY * elapsed
	if h.jumpVY >= 0 {
		h.residual = h.jumpVX
		h.endJump()
	}
}

func (h *Hero) endJump() {
	h.jump = jumpNone
	h.jumpVX, h.jumpVY = 0, 0
	h.Body.Gravity = !h.itemSuspendsGravity()
	h.Body.GravityRate = 0
}

// dropThrough lets the hero fall through the one-way platforms under the
// hero. It reports false when anything else is underfoot.
func (h *Hero) dropThrough() bool {
	below := h.world.Physics().Touching(&h.Sprite, 0, 1)
	if len(below) == 0 {
		return false
	}
	for _, s := range below {
		if !s.HasRole(tags.RoleOneway) {
			return false
		}
	}
	h.Body.OnewayBypass = true
	h.bypassTimer = cfg.Hero.OnewayBypassTime
	h.jumpSequence = 0
	return true
}

// walkDir is the held horizontal direction: -1, 0 or 1.
func (h *Hero) walkDir() float64 {
	var dir float64
	if h.input.Pressed(cfg.ButtonLeft) {
		dir--
	}
	if h.input.Pressed(cfg.ButtonRight) {
		dir++
	}
	return dir
}

// wallDir returns the side the hero is pushing into a wall on, or 0.
func (h *Hero) wallDir() float64 {
	dir := h.walkDir()
	if dir == 0 {
		return 0
	}
	if h.world.Physics().ContactCoverage(&h.Sprite, dir) > 0 {
		return dir
	}
	return 0
}

func (h *Hero) updateWalk(elapsed float64) {
	dir := h.walkDir()
	if !h.allows(canWalk) || h.jump == jumpWall || h.jump == jumpLong || (h.ducking && h.grounded) {
		dir = 0
	}

	if dir != 0 {
		if h.lastDir != 0 && dir != h.lastDir {
			h.jumpSequence = 0
		}
		h.lastDir = dir
		h.facing = dir
	}

	if dashDir := h.trackStrokes(); dashDir != 0 && dir == dashDir {
		h.dash(dashDir)
	}

	speed := cfg.Hero.WalkSpeed
	if h.item == cfg.ItemBroom {
		speed = cfg.Items.BroomSpeed
	}
	target := dir * speed
	step := cfg.Hero.WalkAcceleration * elapsed
	switch {
	case h.walkVX < target:
		h.walkVX = min(target, h.walkVX+step)
	case h.walkVX > target:
		h.walkVX = max(target, h.walkVX-step)
	}
	if dir == 0 {
		h.walkVX = 0
	}

	if h.residual != 0 {
		h.residual = sign(h.residual) * max(0, abs(h.residual)-cfg.Hero.WalkResidualDecay*elapsed)
	}

	vx := h.walkVX + h.residual
	if vx == 0 {
		return
	}
	want := abs(vx) * elapsed
	if h.moveBy(vx*elapsed, 0) < want {
		h.walkVX = 0
		h.residual = 0
	}
}

// trackStrokes records press/release history of the direction buttons and
// returns the direction of a completed double-tap, or 0.
func (h *Hero) trackStrokes() float64 {
	in := h.input
	var dash float64
	for _, b := range []struct {
		button cfg.Button
		dir    float64
	}{{cfg.ButtonLeft, -1}, {cfg.ButtonRight, 1}} {
		if in.JustReleased(b.button) && b.dir == h.strokeDir {
			h.strokeHold = h.clock - h.strokePressedAt
			h.strokeReleasedAt = h.clock
			h.strokeReleased = true
		}
		if in.JustPressed(b.button) {
			if b.dir == h.strokeDir && h.strokeReleased &&
				h.strokeHold < cfg.Hero.DashStrokeTime &&
				h.clock-h.strokeReleasedAt < cfg.Hero.DashStrokeTime {
				dash = b.dir
			}
			h.strokeDir = b.dir
			h.strokePressedAt = h.clock
			h.strokeReleased = false
		}
	}
	if dash != 0 {
		h.strokeDir = 0
	}
	return dash
}

// dash teleports the hero DashDistance along dir. A blocked or overlapping
// landing spot falls back to the free distance; no room at all rejects it.
func (h *Hero) dash(dir float64) {
	p := h.world.Physics()
	free := p.MeasureFreedom(&h.Sprite, dir, 0, cfg.Hero.DashDistance)
	x0 := h.X

	h.X += dir * cfg.Hero.DashDistance
	if free < cfg.Hero.DashDistance || p.TestSpritePosition(&h.Sprite) >= cfg.Hero.DashRejectOverlap {
		h.X = x0
		if free < systems.ContactEpsilon {
			h.world.PlaySFX(cfg.SoundDashReject)
			return
		}
		h.X += dir * free
	}
	h.jumpSequence = 0
	h.world.PlaySFX(cfg.SoundDash)
}

func (h *Hero) updateWallSlide() {
	dir := h.walkDir()
	sliding := !h.grounded && h.jump == jumpNone && !h.cannonball && h.item == "" && dir != 0 &&
		h.world.Physics().ContactCoverage(&h.Sprite, dir) >= cfg.Hero.WallSlideCoverage

	if sliding && !h.wallSliding {
		h.jumpSequence = 0
		h.world.PlaySFX(cfg.SoundWallSlide)
	}
	h.wallSliding = sliding
}
