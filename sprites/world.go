// Package sprites holds the concrete sprite types a level is built from: the
// hero and the auxiliary physics sprites that interact with the hero.
package sprites

import (
	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/systems"
	"github.com/automoto/sweeper/tags"
	"github.com/solarlune/resolv"
)

// World is the scene as seen from a sprite. Sprites never hold each other
// directly; they look each other up by kind through the world.
type World interface {
	Physics() *systems.Physics
	Camera() *systems.Camera
	// Terrain is a probe space over the static solid geometry.
	Terrain() *resolv.Space
	WorldSize() (w, h float64)

	FindByKind(kind string) []components.Entity
	// EntityByID returns the entity owning the sprite with id, or nil.
	EntityByID(id int) components.Entity
	AddSprite(e components.Entity)
	RemoveSprite(e components.Entity)

	TransientState() *systems.StateMap
	PermanentState() *systems.StateMap

	PlaySFX(id cfg.SoundID)
}

// FindHero returns the world's hero, or nil.
func FindHero(w World) *Hero {
	for _, e := range w.FindByKind(tags.KindHero) {
		if h, ok := e.(*Hero); ok {
			return h
		}
	}
	return nil
}

func sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
