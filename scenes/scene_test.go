package scenes

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"

	"github.com/automoto/sweeper/components"
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/grid"
	"github.com/automoto/sweeper/sprites"
	"github.com/automoto/sweeper/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func mustScene(t *testing.T, level string, opts Options) *Scene {
	t.Helper()
	g, err := grid.Decode(level)
	require.NoError(t, err)
	s, err := NewScene(g, opts)
	require.NoError(t, err)
	return s
}

type counter struct {
	components.Sprite
	updates  int
	onUpdate func()
}

func (c *counter) Update(float64, components.Input) {
	c.updates++
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

type observer struct {
	components.Sprite
	transient []change
	permanent []change
}

type change struct {
	key   string
	value int
}

func (o *observer) OnTransientState(key string, value int) {
	o.transient = append(o.transient, change{key, value})
}

func (o *observer) OnPermanentState(key string, value int) {
	o.permanent = append(o.permanent, change{key, value})
}

type memStore struct {
	items   map[string][]byte
	saveErr error
	saves   int
}

func (m *memStore) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStore) SaveItem(key string, data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

type recordingCanvas struct {
	rects []components.Rect
}

func (c *recordingCanvas) FillRect(r components.Rect, _ color.Color) {
	c.rects = append(c.rects, r)
}

const roomLevel = `0000000000000000000000000000000000000000
0000000000000000000000000000000000000000
0000000000000000000000000000000000000000
0000000000000000000000000000000000000000
0000000000000000000000000000000000000000
0101010101010101010101010101010101010101

hero 3 4
gate 12 3 2 door
breakable 15 4
teleporter 1 1   # not a thing
`

func TestNewScene(t *testing.T) {
	s := mustScene(t, roomLevel, Options{})

	w, h := s.WorldSize()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 96.0, h)

	hero := s.Hero()
	require.NotNil(t, hero)
	assert.Equal(t, 56.0, hero.X)
	assert.Equal(t, 80.0, hero.Y)

	assert.Len(t, s.FindByKind(tags.KindStatic), 1)
	assert.Len(t, s.FindByKind(tags.KindGate), 1)
	assert.Len(t, s.FindByKind(tags.KindBreakable), 1)
	assert.Len(t, s.Entities(), 4)

	// IDs are unique and resolve back to their entity.
	seen := map[int]bool{}
	for _, e := range s.Entities() {
		id := e.Base().ID
		assert.False(t, seen[id])
		seen[id] = true
		assert.Same(t, e, s.EntityByID(id))
	}

	// The floor is mirrored into the probe space, clipped to the world.
	objs := s.Terrain().Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, 0.0, objs[0].X)
	assert.Equal(t, 80.0, objs[0].Y)
	assert.Equal(t, 320.0, objs[0].W)
	assert.Equal(t, 16.0, objs[0].H)
}

func TestNewSceneRejectsMalformedCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"missing args", "hero 3"},
		{"bad number", "hero x 4"},
		{"bad axis", "platform 1 1 2 z 3"},
		{"zero width", "crusher 1 1 0 1 3"},
		{"bad mode", "switch 1 1 sometimes door"},
		{"bad direction", "raft 1 1 up 3"},
		{"unknown item", "item spoon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.Decode("0000\n0101\n\n" + tt.command + "\n")
			require.NoError(t, err)

			s, err := NewScene(g, Options{})
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestRemoveSpriteDuringUpdate(t *testing.T) {
	s := mustScene(t, "0000\n", Options{})

	a, b, c, d := &counter{}, &counter{}, &counter{}, &counter{}
	late := &counter{}
	a.onUpdate = func() { s.RemoveSprite(a) }
	c.onUpdate = func() { s.RemoveSprite(b) }
	d.onUpdate = func() {
		if late.updates == 0 && late.Base().ID == 0 {
			s.AddSprite(late)
		}
	}
	for _, e := range []*counter{a, b, c, d} {
		s.AddSprite(e)
	}

	s.Update(frame, 0)

	assert.Equal(t, 1, a.updates)
	assert.Equal(t, 1, b.updates)
	assert.Equal(t, 1, c.updates)
	assert.Equal(t, 1, d.updates)
	assert.Equal(t, 1, late.updates, "sprites added mid-tick run in the same tick")
	assert.Equal(t, []components.Entity{c, d, late}, s.Entities())
	assert.Nil(t, s.EntityByID(a.ID))

	s.Update(frame, 0)
	assert.Equal(t, 1, a.updates)
	assert.Equal(t, 2, c.updates)
	assert.Equal(t, 2, d.updates)
	assert.Equal(t, 2, late.updates)
}

func TestRemoveSpriteOnlyRemovesFirstMatch(t *testing.T) {
	s := mustScene(t, "0000\n", Options{})
	a := &counter{}
	s.AddSprite(a)
	s.entities = append(s.entities, a)
	s.bases = append(s.bases, a.Base())

	s.RemoveSprite(a)

	assert.Len(t, s.Entities(), 1)
}

func TestStateBroadcastReachesObservers(t *testing.T) {
	s := mustScene(t, roomLevel, Options{})
	o := &observer{}
	s.AddSprite(o)

	gate := s.FindByKind(tags.KindGate)[0].(*sprites.Gate)
	assert.False(t, gate.Open())

	s.TransientState().Set("door", 1)
	assert.True(t, gate.Open())
	assert.Equal(t, []change{{"door", 1}}, o.transient)
	assert.Empty(t, o.permanent)

	s.TransientState().Set("door", 0)
	assert.False(t, gate.Open())

	s.PermanentState().Set("door", 1)
	assert.True(t, gate.Open())
	assert.Equal(t, []change{{"door", 1}}, o.permanent)
}

func TestPermanentStateIsSaved(t *testing.T) {
	store := &memStore{items: map[string][]byte{}}
	s := mustScene(t, "0000\n0101\n\nitem bell\n", Options{
		Permanent: map[string]int{"door": 1},
		Store:     store,
	})

	assert.Equal(t, 1, s.PermanentState().Get("door"))
	assert.Equal(t, 1, s.PermanentState().Get(sprites.ItemKey(cfg.ItemBell)))

	var saved map[string]int
	require.NoError(t, json.Unmarshal(store.items["permanent"], &saved))
	assert.Equal(t, map[string]int{"door": 1, "item.bell": 1}, saved)
}

func TestFailedSaveKeepsPermanentState(t *testing.T) {
	store := &memStore{items: map[string][]byte{}, saveErr: errors.New("read-only")}
	s := mustScene(t, "0000\n0101\n\n", Options{Store: store})

	s.PermanentState().Set("door", 1)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, s.PermanentState().Get("door"))
	assert.Empty(t, store.items)
}

func TestPlaySFX(t *testing.T) {
	var played []string
	s := mustScene(t, "0000\n", Options{Sound: func(name string) { played = append(played, name) }})

	s.PlaySFX(cfg.SoundJump)
	s.PlaySFX(cfg.SoundNone)
	s.PlaySFX(cfg.SoundID(999))

	assert.Equal(t, []string{"jump"}, played)
}

func TestStandingHeroStaysPut(t *testing.T) {
	s := mustScene(t, roomLevel, Options{})
	hero := s.Hero()
	y := hero.Y

	for i := 0; i < 10; i++ {
		s.Update(frame, 0)
		assert.Equal(t, y, hero.Y, "frame %d", i)
		assert.Equal(t, 0.0, hero.Body.GravityRate, "frame %d", i)
		assert.True(t, hero.Grounded())
	}
}

func TestRenderDrawsVisibleSprites(t *testing.T) {
	s := mustScene(t, roomLevel, Options{})
	c := &recordingCanvas{}

	s.Render(c)

	// Floor, hero, gate and breakable are all inside the first screen.
	assert.Len(t, c.rects, 4)
	view := s.Camera().WorldBounds()
	for _, r := range c.rects {
		assert.True(t, r.Overlaps(view))
	}
}
