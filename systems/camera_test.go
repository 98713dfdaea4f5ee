package systems

import (
	"testing"

	"github.com/automoto/sweeper/components"
	"github.com/stretchr/testify/assert"
)

func TestCameraSnapsOnFirstUpdate(t *testing.T) {
	c := NewCamera(1000, 500)
	hero := &components.Sprite{X: 500, Y: 216}

	c.Update(hero)

	assert.Equal(t, components.Rect{X: 340, Y: 120, W: 320, H: 160}, c.WorldBounds())
	assert.False(t, c.Lagging())
}

func TestCameraClampsToWorld(t *testing.T) {
	c := NewCamera(1000, 500)

	c.Update(&components.Sprite{X: 10, Y: 10})
	assert.Equal(t, 0.0, c.Position.X)
	assert.Equal(t, 0.0, c.Position.Y)

	c.Cut()
	c.Update(&components.Sprite{X: 990, Y: 499})
	assert.Equal(t, 680.0, c.Position.X)
	assert.Equal(t, 340.0, c.Position.Y)
}

func TestCameraCentersSmallWorld(t *testing.T) {
	c := NewCamera(160, 500)

	c.Update(&components.Sprite{X: 80, Y: 100})

	assert.Equal(t, -80.0, c.Position.X)
}

func TestCameraTracksSmallMoves(t *testing.T) {
	c := NewCamera(1000, 500)
	hero := &components.Sprite{X: 500, Y: 216}
	c.Update(hero)

	hero.X += 5
	c.Update(hero)

	assert.Equal(t, 345.0, c.Position.X)
	assert.False(t, c.Lagging())
}

func TestCameraLagsOnLargeJump(t *testing.T) {
	c := NewCamera(1000, 500)
	hero := &components.Sprite{X: 500, Y: 216}
	c.Update(hero)

	hero.X += 40
	c.Update(hero)
	assert.True(t, c.Lagging())
	assert.Equal(t, 348.0, c.Position.X)

	frames := 1
	for c.Lagging() {
		c.Update(hero)
		frames++
		assert.Less(t, frames, 10)
	}
	assert.Equal(t, 380.0, c.Position.X)
	assert.Equal(t, 5, frames)
}

func TestCameraCutSnaps(t *testing.T) {
	c := NewCamera(1000, 500)
	hero := &components.Sprite{X: 500, Y: 216}
	c.Update(hero)

	hero.X = 800
	c.Cut()
	c.Update(hero)

	assert.Equal(t, 640.0, c.Position.X)
	assert.False(t, c.Lagging())
}
