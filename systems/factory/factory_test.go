package factory_test

import (
	"strings"
	"testing"

	"github.com/automoto/sweeper/components"
	"github.com/automoto/sweeper/grid"
	"github.com/automoto/sweeper/scenes"
	"github.com/automoto/sweeper/sprites"
	"github.com/automoto/sweeper/systems/factory"
	"github.com/automoto/sweeper/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyMap = "0000000000000000\n0000000000000000\n0000000000000000\n0101010101010101\n"

func populate(t *testing.T, commands ...string) (*scenes.Scene, error) {
	t.Helper()
	s, err := scenes.NewScene(mustDecode(t, emptyMap), scenes.Options{})
	require.NoError(t, err)
	g := mustDecode(t, emptyMap+"\n"+strings.Join(commands, "\n")+"\n")
	return s, factory.Populate(s, g)
}

func mustDecode(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Decode(text)
	require.NoError(t, err)
	return g
}

func only(t *testing.T, s *scenes.Scene, kind string) components.Entity {
	t.Helper()
	found := s.FindByKind(kind)
	require.Len(t, found, 1)
	return found[0]
}

func TestPopulatePlacesSprites(t *testing.T) {
	s, err := populate(t,
		"item boots",
		"hero 2 1",
		"platform 1 0 2 y 3 oneway",
		"crusher 3 0 1 2 1",
		"switch 0 1 stompbox lamp",
		"gate 5 0 2 lamp",
		"breakable 6 2",
		"raft 6 1 left 3",
	)
	require.NoError(t, err)

	hero := only(t, s, tags.KindHero).(*sprites.Hero)
	assert.Equal(t, 40.0, hero.X)
	assert.Equal(t, 32.0, hero.Y)
	assert.Equal(t, "boots", hero.SelectedItem())
	assert.Equal(t, 1, s.PermanentState().Get(sprites.ItemKey("boots")))

	p := only(t, s, tags.KindPlatform).(*sprites.Platform)
	assert.Equal(t, components.Rect{X: 16, Y: 0, W: 32, H: 8}, p.HitBox())
	assert.True(t, p.HasRole(tags.RoleOneway))

	c := only(t, s, tags.KindCrusher).(*sprites.Crusher)
	assert.Equal(t, components.Rect{X: 48, Y: 0, W: 16, H: 32}, c.HitBox())

	sw := only(t, s, tags.KindSwitch).(*sprites.Switch)
	assert.Equal(t, "lamp", sw.Key())
	assert.Equal(t, components.Rect{X: 0, Y: 28, W: 16, H: 4}, sw.HitBox())

	gate := only(t, s, tags.KindGate).(*sprites.Gate)
	assert.Equal(t, components.Rect{X: 80, Y: 0, W: 16, H: 32}, gate.HitBox())
	assert.False(t, gate.Open())

	b := only(t, s, tags.KindBreakable)
	assert.Equal(t, components.Rect{X: 96, Y: 32, W: 16, H: 16}, b.Base().HitBox())

	r := only(t, s, tags.KindRaft).(*sprites.Raft)
	assert.Equal(t, components.Rect{X: 96, Y: 16, W: 16, H: 4}, r.HitBox())
}

func TestPopulateSkipsUnknownCommands(t *testing.T) {
	s, err := populate(t, "teleporter 1 1", "breakable 1 1")
	require.NoError(t, err)
	assert.Len(t, s.FindByKind(tags.KindBreakable), 1)
}

func TestPopulateErrors(t *testing.T) {
	tests := []struct {
		name     string
		commands []string
		want     string
	}{
		{"too few", []string{"hero 1"}, "command 1 (hero): want 2 arguments, got 1"},
		{"too many", []string{"breakable 1 1 1"}, "want 2 arguments, got 3"},
		{"optional range", []string{"platform 1 1"}, "want 5 to 6 arguments, got 2"},
		{"not a number", []string{"crusher 1 1 wide 1 1"}, "width"},
		{"zero size", []string{"gate 1 1 0 k"}, "height must be at least 1, got 0"},
		{"bad axis", []string{"platform 1 1 2 z 3"}, `axis must be x or y, got "z"`},
		{"zero range", []string{"platform 1 1 2 x 0"}, "range must be at least 1, got 0"},
		{"negative range", []string{"platform 1 1 2 y -2"}, "range must be at least 1, got -2"},
		{"bad flag", []string{"platform 1 1 2 x 3 sticky"}, `unknown platform flag "sticky"`},
		{"bad mode", []string{"switch 1 1 often k"}, `unknown switch mode "often"`},
		{"bad direction", []string{"raft 1 1 up 2"}, `unknown direction "up"`},
		{"bad item", []string{"item spoon"}, `unknown item "spoon"`},
		{"reports position", []string{"breakable 1 1", "hero 1"}, "command 2 (hero)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := populate(t, tt.commands...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
