package sprites

import (
	"fmt"
	"image/color"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
)

// SwitchMode selects how a switch writes its key.
type SwitchMode string

const (
	// SwitchTreadle holds the transient key at 1 while something stands on it.
	SwitchTreadle SwitchMode = "treadle"
	// SwitchStompbox toggles the transient key on every press.
	SwitchStompbox SwitchMode = "stompbox"
	// SwitchOnce latches the permanent key to 1 on the first press.
	SwitchOnce SwitchMode = "once"
)

func ParseSwitchMode(s string) (SwitchMode, error) {
	switch m := SwitchMode(s); m {
	case SwitchTreadle, SwitchStompbox, SwitchOnce:
		return m, nil
	}
	return "", fmt.Errorf("unknown switch mode %q", s)
}

const switchPlateHeight = 4

var (
	switchUpColor   = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}
	switchDownColor = color.RGBA{R: 0x40, G: 0xc0, B: 0x40, A: 0xff}
)

// Switch is a floor plate that writes a shared state key when pressed. The
// plate has a one-way top, so walking onto it steps up instead of stopping.
type Switch struct {
	components.Sprite
	world World
	mode  SwitchMode
	key   string

	pressed bool
}

// NewSwitch places a plate along the bottom of the tile whose top-left
// corner is (x, y).
func NewSwitch(world World, x, y float64, mode SwitchMode, key string) *Switch {
	ts := cfg.Grid.TileSize
	s := &Switch{
		Sprite: components.Sprite{Kind: tags.KindSwitch, X: x, Y: y + ts - switchPlateHeight},
		world:  world,
		mode:   mode,
		key:    key,
	}
	body := components.PrepareSprite(&s.Sprite, 0, 0, ts, switchPlateHeight, 0)
	body.Role = tags.RoleOneway
	body.TrackCollisions = true
	s.VW, s.VH = ts, switchPlateHeight
	return s
}

func (s *Switch) Key() string { return s.key }

// On reports whether the switch's key is currently set.
func (s *Switch) On() bool {
	if s.mode == SwitchOnce {
		return s.world.PermanentState().Get(s.key) != 0
	}
	return s.world.TransientState().Get(s.key) != 0
}

func (s *Switch) Update(_ float64, _ components.Input) {
	occupied := false
	for _, c := range s.Body.Collisions {
		if c.Body != nil && c.Body.Active() {
			occupied = true
			break
		}
	}
	pressed := occupied && !s.pressed
	s.pressed = occupied

	transient := s.world.TransientState()
	switch s.mode {
	case SwitchTreadle:
		v := 0
		if occupied {
			v = 1
		}
		if transient.Get(s.key) != v {
			transient.Set(s.key, v)
			s.world.PlaySFX(cfg.SoundSwitch)
		}
	case SwitchStompbox:
		if pressed {
			transient.Set(s.key, 1-min(1, transient.Get(s.key)))
			s.world.PlaySFX(cfg.SoundSwitch)
		}
	case SwitchOnce:
		perm := s.world.PermanentState()
		if pressed && perm.Get(s.key) == 0 {
			perm.Set(s.key, 1)
			s.world.PlaySFX(cfg.SoundSwitch)
		}
	}
}

func (s *Switch) Render(c components.Canvas, _ components.Rect) {
	clr := switchUpColor
	if s.On() {
		clr = switchDownColor
	}
	c.FillRect(s.HitBox(), clr)
}
