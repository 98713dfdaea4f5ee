package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/grid"
	"github.com/automoto/sweeper/sprites"
	"github.com/automoto/sweeper/systems"
	"github.com/automoto/sweeper/systems/factory"
	"github.com/automoto/sweeper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Options configures a new Scene.
type Options struct {
	// Permanent is the saved state the scene starts from.
	Permanent map[string]int
	// Store receives the permanent state after every change. May be nil.
	Store systems.ItemStore
	// Sound is called with the name of every effect played. May be nil.
	Sound func(name string)
}

// Scene owns one loaded level: its sprites, physics, camera and shared state.
type Scene struct {
	grid           *grid.Grid
	worldW, worldH float64

	entities []components.Entity
	bases    []*components.Sprite
	byID     map[int]components.Entity
	nextID   int
	cursor   int

	physics *systems.Physics
	camera  *systems.Camera
	terrain *resolv.Space

	events    donburi.World
	transient *systems.StateMap
	permanent *systems.StateMap

	input components.Input
	sound func(name string)
}

// NewScene builds a scene from a decoded grid. Malformed level commands are
// reported here, before the scene is usable.
func NewScene(g *grid.Grid, opts Options) (*Scene, error) {
	ts := cfg.Grid.TileSize
	s := &Scene{
		grid:   g,
		worldW: float64(g.W) * ts,
		worldH: float64(g.H) * ts,
		byID:   map[int]components.Entity{},
		cursor: -1,
		sound:  opts.Sound,
	}
	s.physics = systems.NewPhysics(s)
	s.camera = systems.NewCamera(s.worldW, s.worldH)
	s.terrain = resolv.NewSpace(int(s.worldW), int(s.worldH), int(ts), int(ts))

	s.events = donburi.NewWorld()
	s.transient = systems.NewStateMap(s.events, systems.TransientStateChanged, nil)
	s.permanent = systems.NewStateMap(s.events, systems.PermanentStateChanged, opts.Permanent)
	if opts.Store != nil {
		store := opts.Store
		s.permanent.OnChange = func(values map[string]int) {
			if err := systems.SavePermanentState(store, values); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
	}
	s.transient.Subscribe(func(c systems.StateChange) {
		s.broadcast(func(o components.StateObserver) { o.OnTransientState(c.Key, c.Value) })
	})
	s.permanent.Subscribe(func(c systems.StateChange) {
		s.broadcast(func(o components.StateObserver) { o.OnPermanentState(c.Key, c.Value) })
	})

	statics := g.GenerateStaticSprites()
	for _, st := range statics {
		s.AddSprite(st)
		if st.HasRole(tags.RoleSolid) {
			s.addTerrain(st.HitBox())
		}
	}

	if err := factory.Populate(s, g); err != nil {
		return nil, fmt.Errorf("populating level: %w", err)
	}

	log.Printf("scene: %dx%d px, %d static sprites, %d sprites total",
		int(s.worldW), int(s.worldH), len(statics), len(s.entities))

	s.camera.Update(s.heroBase())
	return s, nil
}

// addTerrain mirrors a static solid into the probe space, clipped to the
// world so edge extensions stay inside the space's cell grid.
func (s *Scene) addTerrain(r components.Rect) {
	x0, y0 := max(0, r.X), max(0, r.Y)
	x1, y1 := min(s.worldW, r.Right()), min(s.worldH, r.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	obj := resolv.NewObject(x0, y0, x1-x0, y1-y0, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, x1-x0, y1-y0))
	s.terrain.Add(obj)
}

func (s *Scene) broadcast(fn func(components.StateObserver)) {
	// Observers may add or remove sprites while being notified.
	for _, e := range append([]components.Entity(nil), s.entities...) {
		if o, ok := e.(components.StateObserver); ok {
			fn(o)
		}
	}
}

// Update runs one tick: every sprite's update in list order, then a single
// physics pass, then the camera.
func (s *Scene) Update(elapsed float64, buttons cfg.Button) {
	s.input = s.input.Next(buttons)

	for s.cursor = 0; s.cursor < len(s.entities); s.cursor++ {
		if u, ok := s.entities[s.cursor].(components.Updatable); ok {
			u.Update(elapsed, s.input)
		}
	}
	s.cursor = -1

	s.physics.Update(elapsed)
	s.camera.Update(s.heroBase())
}

func (s *Scene) heroBase() *components.Sprite {
	if h := sprites.FindHero(s); h != nil {
		return &h.Sprite
	}
	return nil
}

// Hero returns the scene's hero, or nil.
func (s *Scene) Hero() *sprites.Hero {
	return sprites.FindHero(s)
}

// AddSprite appends e and assigns its sprite a fresh ID.
func (s *Scene) AddSprite(e components.Entity) {
	s.nextID++
	base := e.Base()
	base.ID = s.nextID
	s.entities = append(s.entities, e)
	s.bases = append(s.bases, base)
	s.byID[base.ID] = e
}

// RemoveSprite removes the first occurrence of e. It is safe to call from any
// sprite's update, including e's own.
func (s *Scene) RemoveSprite(e components.Entity) {
	for i, x := range s.entities {
		if x != e {
			continue
		}
		s.entities = append(s.entities[:i], s.entities[i+1:]...)
		s.bases = append(s.bases[:i], s.bases[i+1:]...)
		delete(s.byID, e.Base().ID)
		if s.cursor >= 0 && i <= s.cursor {
			s.cursor--
		}
		return
	}
}

func (s *Scene) EntityByID(id int) components.Entity {
	return s.byID[id]
}

func (s *Scene) FindByKind(kind string) []components.Entity {
	var out []components.Entity
	for i, b := range s.bases {
		if b.Kind == kind {
			out = append(out, s.entities[i])
		}
	}
	return out
}

// Entities returns the scene's entities in list order.
func (s *Scene) Entities() []components.Entity { return s.entities }

func (s *Scene) Sprites() []*components.Sprite { return s.bases }

func (s *Scene) WorldSize() (float64, float64) { return s.worldW, s.worldH }

func (s *Scene) Grid() *grid.Grid { return s.grid }

func (s *Scene) Physics() *systems.Physics { return s.physics }

func (s *Scene) Camera() *systems.Camera { return s.camera }

func (s *Scene) Terrain() *resolv.Space { return s.terrain }

func (s *Scene) TransientState() *systems.StateMap { return s.transient }

func (s *Scene) PermanentState() *systems.StateMap { return s.permanent }

// PlaySFX forwards a sound effect by name. Unmapped IDs are logged and
// ignored.
func (s *Scene) PlaySFX(id cfg.SoundID) {
	name, ok := cfg.SoundNames[id]
	if !ok {
		log.Printf("scene: no sound mapped for id %d", id)
		return
	}
	if s.sound != nil {
		s.sound(name)
	}
}

var (
	solidColor   = color.RGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
	onewayColor  = color.RGBA{R: 0x70, G: 0x90, B: 0x70, A: 0xff}
	hazardColor  = color.RGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
	heroColor    = color.RGBA{R: 0xf0, G: 0xc0, B: 0x40, A: 0xff}
	defaultColor = color.RGBA{R: 0x60, G: 0x80, B: 0xc0, A: 0xff}
)

// Render draws every sprite inside the camera view, then the post-render
// pass. Sprites without their own Render are drawn as a flat box.
func (s *Scene) Render(c components.Canvas) {
	view := s.camera.WorldBounds()
	for i, e := range s.entities {
		if r, ok := e.(components.Renderable); ok {
			r.Render(c, view)
			continue
		}
		b := s.bases[i]
		box := b.RenderBounds()
		if b.Body != nil && (b.Kind == tags.KindStatic || box.W == 0) {
			box = b.HitBox()
		}
		if !box.Overlaps(view) {
			continue
		}
		c.FillRect(box, spriteColor(b))
	}
	for _, e := range s.entities {
		if p, ok := e.(components.PostRenderable); ok {
			p.PostRender(c, view)
		}
	}
}

func spriteColor(b *components.Sprite) color.Color {
	switch {
	case b.Kind == tags.KindHero:
		return heroColor
	case b.HasRole(tags.RoleOneway):
		return onewayColor
	case b.HasRole(tags.RoleHazard):
		return hazardColor
	case b.HasRole(tags.RoleSolid):
		return solidColor
	}
	return defaultColor
}
