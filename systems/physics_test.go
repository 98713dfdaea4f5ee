package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

type testSpace struct {
	sprites []*components.Sprite
	w, h    float64
}

func (s *testSpace) Sprites() []*components.Sprite { return s.sprites }
func (s *testSpace) WorldSize() (float64, float64) { return s.w, s.h }

func newBox(x, y, w, h, invmass float64) *components.Sprite {
	s := &components.Sprite{X: x, Y: y}
	components.PrepareSprite(s, 0, 0, w, h, invmass)
	return s
}

func newPhysics(sprites ...*components.Sprite) *Physics {
	return NewPhysics(&testSpace{sprites: sprites, w: 1000, h: 1000})
}

func TestMeasureFreedomToWall(t *testing.T) {
	mover := newBox(0, 0, 10, 10, 1)
	wall := newBox(30, 0, 10, 10, 0)
	p := newPhysics(mover, wall)

	assert.Equal(t, 20.0, p.MeasureFreedom(mover, 1, 0, 50))
	assert.Equal(t, 5.0, p.MeasureFreedom(mover, 1, 0, 5))
	assert.GreaterOrEqual(t, p.MeasureFreedom(mover, -1, 0, 50), 50.0, "nothing to the left")
	assert.GreaterOrEqual(t, p.MeasureFreedom(mover, 0, 1, 50), 50.0, "wall is beside, not below")
}

func TestMeasureFreedomSkipsSelfAndBodiless(t *testing.T) {
	mover := newBox(0, 0, 10, 10, 1)
	ghost := &components.Sprite{X: 15, Y: 0}
	p := newPhysics(mover, ghost)

	assert.Equal(t, 40.0, p.MeasureFreedom(mover, 1, 0, 40))
}

func TestMeasureFreedomContactIsZero(t *testing.T) {
	mover := newBox(0, 0, 10, 10, 1)
	floor := newBox(-20, 10, 100, 10, 0)
	p := newPhysics(mover, floor)

	assert.Equal(t, 0.0, p.MeasureFreedom(mover, 0, 1, cfg.Physics.GroundProbe))
	assert.Equal(t, 40.0, p.MeasureFreedom(mover, 0, -1, 40), "floor does not block upward")
}

func TestMeasureFreedomWorldEdges(t *testing.T) {
	mover := newBox(10, 10, 10, 10, 1)
	mover.Body.Edges = true
	p := NewPhysics(&testSpace{sprites: []*components.Sprite{mover}, w: 100, h: 50})

	assert.Equal(t, 80.0, p.MeasureFreedom(mover, 1, 0, 999))
	assert.Equal(t, 10.0, p.MeasureFreedom(mover, -1, 0, 999))
	assert.Equal(t, 30.0, p.MeasureFreedom(mover, 0, 1, 999))
}

func TestMeasureFreedomOneway(t *testing.T) {
	mover := newBox(0, 0, 10, 10, 1)
	ledge := newBox(0, 20, 10, 4, 0)
	ledge.Body.Role = tags.RoleOneway
	ceiling := newBox(0, -30, 10, 4, 0)
	ceiling.Body.Role = tags.RoleOneway
	p := newPhysics(mover, ledge, ceiling)

	assert.Equal(t, 10.0, p.MeasureFreedom(mover, 0, 1, 999), "one-way tops stop downward motion")
	assert.Equal(t, 50.0, p.MeasureFreedom(mover, 0, -1, 50), "one-way never blocks upward motion")

	mover.Body.OnewayBypass = true
	assert.Equal(t, 50.0, p.MeasureFreedom(mover, 0, 1, 50))
}

func TestCollideSpritesEqualMassSplitsEscapement(t *testing.T) {
	a := newBox(0, 0, 10, 10, 1)
	b := newBox(8, 0, 10, 10, 1)
	p := newPhysics(a, b)

	p.CollideSprites(a, b)

	assert.InDelta(t, -1.0, a.X, 1e-9)
	assert.InDelta(t, 9.0, b.X, 1e-9)
	assert.False(t, a.HitBox().Overlaps(b.HitBox()))
	assert.True(t, a.Body.Adjusted)
	assert.True(t, b.Body.Adjusted)
}

func TestCollideSpritesWeightedByInvMass(t *testing.T) {
	a := newBox(0, 0, 10, 10, 0.75)
	b := newBox(6, 0, 10, 10, 0.25)
	p := newPhysics(a, b)

	p.CollideSprites(a, b)

	assert.InDelta(t, -3.0, a.X, 1e-9)
	assert.InDelta(t, 7.0, b.X, 1e-9)
}

func TestCollideSpritesPassiveSnaps(t *testing.T) {
	a := newBox(0, 0, 10, 10, 1)
	wall := newBox(8, 0, 10, 10, 0)
	p := newPhysics(a, wall)

	p.CollideSprites(a, wall)
	assert.Equal(t, -2.0, a.X)
	assert.Equal(t, 8.0, wall.X)

	// Passive first argument moves the other side instead.
	mover := newBox(15, 0, 10, 10, 1)
	p.CollideSprites(wall, mover)
	assert.Equal(t, 8.0, wall.X)
	assert.Equal(t, 18.0, mover.X)
}

func TestCollideSpritesTieBreakPrefersLeft(t *testing.T) {
	a := newBox(20, 20, 10, 10, 1)
	b := newBox(20, 20, 10, 10, 0)
	p := newPhysics(a, b)

	p.CollideSprites(a, b)

	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 20.0, a.Y)
}

func TestCollideSpritesTieBreakTopBeforeBottom(t *testing.T) {
	// Wide boxes so horizontal escapes are the larger ones.
	a := newBox(0, 0, 100, 10, 1)
	b := newBox(0, 0, 100, 10, 0)
	p := newPhysics(a, b)

	p.CollideSprites(a, b)

	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, -10.0, a.Y)
}

func TestCollideSpritesRecordsCollisions(t *testing.T) {
	a := newBox(0, 0, 10, 10, 1)
	a.Body.TrackCollisions = true
	b := newBox(5, 0, 10, 10, 0)
	b.Body.TrackCollisions = true
	p := newPhysics(a, b)

	p.CollideSprites(a, b)
	p.CollideSprites(a, b)

	assert.Equal(t, []*components.Sprite{b}, a.Body.Collisions)
	assert.Equal(t, []*components.Sprite{a}, b.Body.Collisions)
}

func TestCollideSpritesOneway(t *testing.T) {
	ledge := newBox(0, 20, 30, 4, 0)
	ledge.Body.Role = tags.RoleOneway

	t.Run("caught from above", func(t *testing.T) {
		s := newBox(0, 0, 10, 10, 1)
		s.Body.PVY = 9
		s.Y = 12
		p := newPhysics(s, ledge)

		p.CollideSprites(s, ledge)
		assert.Equal(t, 10.0, s.Y)
	})

	t.Run("passes from below", func(t *testing.T) {
		s := newBox(0, 0, 10, 10, 1)
		s.Body.PVY = 22
		s.Y = 16
		p := newPhysics(s, ledge)

		p.CollideSprites(s, ledge)
		assert.Equal(t, 16.0, s.Y)
	})

	t.Run("bypass drops through", func(t *testing.T) {
		s := newBox(0, 0, 10, 10, 1)
		s.Body.PVY = 10
		s.Y = 12
		s.Body.OnewayBypass = true
		p := newPhysics(s, ledge)

		p.CollideSprites(s, ledge)
		assert.Equal(t, 12.0, s.Y)
	})
}

func TestPassiveSpritesNeverMove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		var sprites []*components.Sprite
		var passive []*components.Sprite
		var before []components.Rect
		for i := 0; i < 12; i++ {
			invmass := 0.0
			if rng.Intn(2) == 0 {
				invmass = rng.Float64()*0.9 + 0.1
			}
			s := newBox(rng.Float64()*80, rng.Float64()*80, rng.Float64()*30+2, rng.Float64()*30+2, invmass)
			s.Body.Gravity = invmass > 0 && rng.Intn(2) == 0
			sprites = append(sprites, s)
			if invmass == 0 {
				passive = append(passive, s)
				before = append(before, s.HitBox())
			}
		}
		p := NewPhysics(&testSpace{sprites: sprites, w: 200, h: 200})

		for i := 0; i < 5; i++ {
			p.Update(frame)
		}
		for i, s := range passive {
			require.Equal(t, before[i], s.HitBox(), "round %d passive sprite %d moved", round, i)
		}
	}
}

func TestGravityRateIsCapped(t *testing.T) {
	s := newBox(0, 0, 10, 10, 1)
	s.Body.Gravity = true
	p := NewPhysics(&testSpace{sprites: []*components.Sprite{s}, w: 100, h: 100000})

	for i := 0; i < 600; i++ {
		p.Update(frame)
		require.LessOrEqual(t, s.Body.GravityRate, cfg.Physics.GravityMax)
	}
	assert.Equal(t, cfg.Physics.GravityMax, s.Body.GravityRate)
}

func TestGravityLimitOverridesCap(t *testing.T) {
	s := newBox(0, 0, 10, 10, 1)
	s.Body.Gravity = true
	s.Body.GravityLimit = 60
	p := NewPhysics(&testSpace{sprites: []*components.Sprite{s}, w: 100, h: 100000})

	for i := 0; i < 120; i++ {
		p.Update(frame)
	}
	assert.Equal(t, 60.0, s.Body.GravityRate)
}

func TestGravityResetsOnLanding(t *testing.T) {
	s := newBox(0, 0, 10, 10, 1)
	s.Body.Gravity = true
	floor := newBox(-50, 50, 200, 16, 0)
	p := newPhysics(s, floor)

	landed := false
	for i := 0; i < 120; i++ {
		p.Update(frame)
		if p.MeasureFreedom(s, 0, 1, cfg.Physics.GroundProbe) == 0 {
			landed = true
			assert.Equal(t, 0.0, s.Body.GravityRate)
		}
	}
	require.True(t, landed)
	assert.Equal(t, 50.0, s.HitBox().Bottom())
}

func TestUpdateClampsToEdges(t *testing.T) {
	s := newBox(-5, 95, 10, 10, 1)
	s.Body.Edges = true
	p := NewPhysics(&testSpace{sprites: []*components.Sprite{s}, w: 100, h: 100})

	p.Update(frame)

	assert.Equal(t, components.Rect{X: 0, Y: 90, W: 10, H: 10}, s.HitBox())
}

func TestUpdateRecordsPreviousPosition(t *testing.T) {
	s := newBox(5, 5, 10, 10, 1)
	p := newPhysics(s)

	s.X = 12
	p.Update(frame)

	assert.Equal(t, 12.0, s.Body.PVX)
	assert.Equal(t, 5.0, s.Body.PVY)
}

func TestTestSpritePosition(t *testing.T) {
	s := newBox(0, 0, 10, 10, 1)
	half := newBox(5, 0, 10, 10, 0)
	ledge := newBox(0, 0, 10, 10, 0)
	ledge.Body.Role = tags.RoleOneway
	p := newPhysics(s, half, ledge)

	assert.InDelta(t, 0.5, p.TestSpritePosition(s), 1e-9)

	s.Body.Edges = true
	s.X = -5
	// Half out of the world on x and clear of the half box.
	assert.InDelta(t, 0.5, p.TestSpritePosition(s), 1e-9)

	s.X = 5
	assert.Equal(t, 1.0, p.TestSpritePosition(s))
}

func TestContactCoverage(t *testing.T) {
	s := newBox(0, 0, 10, 20, 1)
	wall := newBox(10, 10, 10, 40, 0)
	p := newPhysics(s, wall)

	assert.InDelta(t, 0.5, p.ContactCoverage(s, 1), 1e-9)
	assert.Equal(t, 0.0, p.ContactCoverage(s, -1))

	s.Y = 10
	assert.InDelta(t, 1.0, p.ContactCoverage(s, 1), 1e-9)
}
