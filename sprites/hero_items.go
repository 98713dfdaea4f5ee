package sprites

import (
	"math"
	"strings"

	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/systems"
)

const itemKeyPrefix = "item."

// ItemKey is the permanent state key recording that an item is owned.
func ItemKey(name string) string {
	return itemKeyPrefix + name
}

func (h *Hero) ownedItems() []string {
	perm := h.world.PermanentState()
	var owned []string
	for _, name := range cfg.ItemOrder {
		if perm.Get(ItemKey(name)) != 0 {
			owned = append(owned, name)
		}
	}
	return owned
}

// updateItemSelection cycles through owned items on UP while no item is in
// progress and ACTION is not held.
func (h *Hero) updateItemSelection() {
	in := h.input
	if h.item != "" || !in.JustPressed(cfg.ButtonUp) || in.Pressed(cfg.ButtonAction) {
		return
	}
	owned := h.ownedItems()
	if len(owned) == 0 {
		return
	}
	next := owned[0]
	for i, name := range owned {
		if name == h.selected {
			next = owned[(i+1)%len(owned)]
			break
		}
	}
	if next != h.selected {
		h.selected = next
		h.world.PlaySFX(cfg.SoundItemSelect)
	}
}

func (h *Hero) OnTransientState(string, int) {}

// OnPermanentState selects the first item the hero picks up.
func (h *Hero) OnPermanentState(key string, value int) {
	if h.selected != "" || value == 0 || !strings.HasPrefix(key, itemKeyPrefix) {
		return
	}
	h.selected = strings.TrimPrefix(key, itemKeyPrefix)
}

func (h *Hero) updateItems(elapsed float64) {
	in := h.input
	if h.item == "" {
		if in.JustPressed(cfg.ButtonAction) && h.selected != "" {
			h.startItem(h.selected)
		}
		return
	}

	switch h.item {
	case cfg.ItemBroom:
		h.itemTimer -= elapsed
		if h.itemTimer <= 0 || in.JustPressed(cfg.ButtonAction) {
			h.endItem()
			return
		}
		var climb float64
		if in.Pressed(cfg.ButtonUp) {
			climb--
		}
		if in.Pressed(cfg.ButtonDown) {
			climb++
		}
		h.moveBy(0, climb*cfg.Items.BroomClimbRate*elapsed)
	case cfg.ItemVacuum:
		if !in.Pressed(cfg.ButtonAction) {
			h.endItem()
			return
		}
		h.stepVacuum(elapsed)
	case cfg.ItemUmbrella:
		if !in.Pressed(cfg.ButtonAction) {
			h.endItem()
		}
	case cfg.ItemBoots:
		if in.JustPressed(cfg.ButtonAction) {
			h.endItem()
		}
	case cfg.ItemGrapple:
		if h.grapple == nil || h.grapple.Done() || in.JustPressed(cfg.ButtonJump) {
			h.endItem()
		}
	case cfg.ItemBell, cfg.ItemStopwatch:
		h.itemTimer -= elapsed
		if h.itemTimer <= 0 {
			h.endItem()
		}
	}
}

func (h *Hero) startItem(name string) {
	transient := h.world.TransientState()
	switch name {
	case cfg.ItemBroom:
		if h.jump != jumpNone {
			h.endJump()
		}
		h.itemTimer = cfg.Items.BroomTime
		h.Body.Gravity = false
		h.Body.GravityRate = 0
		h.world.PlaySFX(cfg.SoundBroom)
	case cfg.ItemVacuum:
		h.vacuumStuck = false
		h.world.PlaySFX(cfg.SoundVacuum)
	case cfg.ItemUmbrella:
		h.world.PlaySFX(cfg.SoundUmbrella)
	case cfg.ItemBoots:
		h.Body.InvMass = cfg.Items.BootsInvMass
		h.world.PlaySFX(cfg.SoundBoots)
	case cfg.ItemGrapple:
		h.grapple = NewGrapple(h.world, h, h.facing, -1)
		h.world.AddSprite(h.grapple)
		h.world.PlaySFX(cfg.SoundGrapple)
	case cfg.ItemBell:
		h.itemTimer = cfg.Items.BellTime
		transient.Set(cfg.ItemBell, 1)
		h.world.PlaySFX(cfg.SoundBell)
	case cfg.ItemStopwatch:
		h.itemTimer = cfg.Items.StopwatchTime
		transient.Set(cfg.ItemStopwatch, 1)
		h.world.PlaySFX(cfg.SoundStopwatch)
	case cfg.ItemCamera:
		// Instantaneous: bump a counter so observers see a change every shot.
		transient.Set(cfg.ItemCamera, transient.Get(cfg.ItemCamera)+1)
		h.world.PlaySFX(cfg.SoundCamera)
		return
	default:
		return
	}
	h.item = name
}

func (h *Hero) endItem() {
	transient := h.world.TransientState()
	switch h.item {
	case "":
		return
	case cfg.ItemBoots:
		h.Body.InvMass = cfg.Hero.InvMass
	case cfg.ItemBell:
		transient.Set(cfg.ItemBell, 0)
	case cfg.ItemStopwatch:
		transient.Set(cfg.ItemStopwatch, 0)
	case cfg.ItemGrapple:
		if h.grapple != nil {
			h.grapple.Release()
			h.grapple = nil
		}
	}
	h.item = ""
	h.itemTimer = 0
	h.vacuumStuck = false
	if h.jump == jumpNone {
		h.Body.Gravity = true
	}
}

// itemSuspendsGravity reports whether the item in progress holds the hero up.
func (h *Hero) itemSuspendsGravity() bool {
	switch h.item {
	case cfg.ItemBroom:
		return true
	case cfg.ItemVacuum:
		return h.vacuumStuck
	case cfg.ItemGrapple:
		return h.grapple != nil && h.grapple.Latched()
	}
	return false
}

// stepVacuum pulls the hero toward the nearest surface in the held direction.
// The pull falls off with the square of the normalized distance and stops
// gravity once the hero is stuck.
func (h *Hero) stepVacuum(elapsed float64) {
	dx, dy := h.walkDir(), 0.0
	switch {
	case h.input.Pressed(cfg.ButtonUp):
		dx, dy = 0, -1
	case dx == 0:
		dx = h.facing
	}

	rng := cfg.Items.VacuumRange
	dist := h.world.Physics().MeasureFreedom(&h.Sprite, dx, dy, rng)
	switch {
	case dist >= rng:
		h.vacuumStuck = false
		h.Body.Gravity = h.jump == jumpNone
	case dist < systems.ContactEpsilon:
		h.vacuumStuck = true
		h.Body.Gravity = false
		h.Body.GravityRate = 0
	default:
		n := dist / rng
		pull := cfg.Items.VacuumForce * (1 - n*n) * elapsed
		h.vacuumStuck = false
		h.Body.Gravity = h.jump == jumpNone
		h.moveBy(dx*pull, dy*pull)
	}
}

// Pull moves the hero toward (tx, ty) with a spring-like speed and returns the
// remaining distance from the hero's center.
func (h *Hero) Pull(tx, ty, elapsed float64) float64 {
	cx, cy := h.HitBox().Center()
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0
	}
	if h.jump != jumpNone {
		h.endJump()
	}
	h.Body.Gravity = false
	h.Body.GravityRate = 0

	speed := min(cfg.Grapple.Spring*dist, cfg.Grapple.MaxPull)
	step := min(speed*elapsed, dist)
	h.moveBy(dx/dist*step, 0)
	h.moveBy(0, dy/dist*step)

	cx, cy = h.HitBox().Center()
	return math.Hypot(tx-cx, ty-cy)
}
