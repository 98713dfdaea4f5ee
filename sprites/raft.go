package sprites

import (
	"fmt"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/tags"
	"github.com/solarlune/resolv"
)

type raftState int

const (
	raftIdle raftState = iota
	raftGrowing
	raftDone
)

// ParseDirection turns "left"/"right" into -1/1.
func ParseDirection(s string) (float64, error) {
	switch s {
	case "left":
		return cfg.DirectionLeft, nil
	case "right":
		return cfg.DirectionRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Raft is a one-way plank that starts growing once the hero boards it. It
// stops at its maximum length, when its leading edge meets terrain, or when
// the hero presses ACTION.
type Raft struct {
	components.Sprite
	world World
	dir   float64
	maxW  float64
	state raftState
	probe *resolv.Object
}

// NewRaft creates a one-tile raft in the tile whose top-left corner is (x, y),
// growing toward dir up to maxW pixels.
func NewRaft(world World, x, y, dir, maxW float64) *Raft {
	ts := cfg.Grid.TileSize
	th := cfg.Raft.Thickness
	r := &Raft{
		Sprite: components.Sprite{Kind: tags.KindRaft, X: x, Y: y},
		world:  world,
		dir:    dir,
		maxW:   max(ts, maxW),
	}
	pleft := 0.0
	if dir < 0 {
		r.X = x + ts
		pleft = -ts
	}
	body := components.PrepareSprite(&r.Sprite, pleft, 0, ts, th, 0)
	body.Role = tags.RoleOneway
	body.TrackCollisions = true
	r.syncRender()

	edge := r.leadingEdge()
	r.probe = resolv.NewObject(edge, y, 1, th, tags.ResolvProbe)
	r.probe.SetShape(resolv.NewRectangle(0, 0, 1, th))
	world.Terrain().Add(r.probe)
	return r
}

// Growing reports whether the raft is currently extending.
func (r *Raft) Growing() bool { return r.state == raftGrowing }

// Length is the raft's current width in pixels.
func (r *Raft) Length() float64 { return r.Body.W }

// leadingEdge is the x of the raft's outermost pixel column in its growth
// direction.
func (r *Raft) leadingEdge() float64 {
	box := r.HitBox()
	if r.dir > 0 {
		return box.Right() - 1
	}
	return box.X
}

func (r *Raft) Update(elapsed float64, in components.Input) {
	switch r.state {
	case raftIdle:
		for _, c := range r.Body.Collisions {
			if c.Kind == tags.KindHero {
				r.state = raftGrowing
				break
			}
		}
	case raftGrowing:
		if in.JustPressed(cfg.ButtonAction) {
			r.stop()
			return
		}
		step := min(cfg.Raft.GrowSpeed*elapsed, r.maxW-r.Body.W)
		if step <= 0 || r.probe.Check(r.dir*step, 0, tags.ResolvSolid) != nil {
			r.stop()
			return
		}
		r.Body.W += step
		if r.dir < 0 {
			r.Body.PLeft -= step
		}
		r.probe.X = r.leadingEdge()
		r.probe.Update()
		r.syncRender()
		if r.Body.W >= r.maxW {
			r.stop()
		}
	}
}

func (r *Raft) stop() {
	r.state = raftDone
	r.world.Terrain().Remove(r.probe)
}

func (r *Raft) syncRender() {
	r.VX, r.VY, r.VW, r.VH = r.Body.PLeft, 0, r.Body.W, r.Body.H
}
