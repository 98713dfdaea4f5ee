package sprites_test

import (
	"slices"
	"strings"
	"testing"

	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/grid"
	"github.com/automoto/sweeper/scenes"
	"github.com/automoto/sweeper/sprites"
	"github.com/automoto/sweeper/tags"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

// Map legend for test levels.
var tiles = map[rune]string{
	'.': "00",
	'#': "01", // solid
	'-': "18", // one-way
	'^': "30", // hazard
}

// level turns an ASCII map plus level commands into grid text.
func level(rows []string, commands ...string) string {
	var sb strings.Builder
	for _, row := range rows {
		for _, r := range row {
			sb.WriteString(tiles[r])
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	for _, c := range commands {
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// room is an empty w×h map with a solid floor on the last row.
func room(w, h int) []string {
	rows := make([]string, h)
	for y := range rows {
		fill := "."
		if y == h-1 {
			fill = "#"
		}
		rows[y] = strings.Repeat(fill, w)
	}
	return rows
}

// put returns rows with the tile at (x, y) replaced.
func put(rows []string, x, y int, tile rune) []string {
	out := slices.Clone(rows)
	r := []rune(out[y])
	r[x] = tile
	out[y] = string(r)
	return out
}

type harness struct {
	t      *testing.T
	scene  *scenes.Scene
	sounds []string
}

func newHarness(t *testing.T, rows []string, commands ...string) *harness {
	t.Helper()
	h := &harness{t: t}
	g, err := grid.Decode(level(rows, commands...))
	require.NoError(t, err)
	h.scene, err = scenes.NewScene(g, scenes.Options{
		Sound: func(name string) { h.sounds = append(h.sounds, name) },
	})
	require.NoError(t, err)
	return h
}

func (h *harness) step(buttons cfg.Button) {
	h.scene.Update(frame, buttons)
}

func (h *harness) run(n int, buttons cfg.Button) {
	for i := 0; i < n; i++ {
		h.step(buttons)
	}
}

// runUntil steps with buttons until done reports true, at most n frames.
func (h *harness) runUntil(n int, buttons cfg.Button, done func() bool) bool {
	for i := 0; i < n; i++ {
		if done() {
			return true
		}
		h.step(buttons)
	}
	return done()
}

func (h *harness) hero() *sprites.Hero {
	hero := h.scene.Hero()
	require.NotNil(h.t, hero)
	return hero
}

func (h *harness) played(name string) bool {
	return slices.Contains(h.sounds, name)
}

func (h *harness) lastSound() string {
	if len(h.sounds) == 0 {
		return ""
	}
	return h.sounds[len(h.sounds)-1]
}

func (h *harness) probes() int {
	n := 0
	for _, obj := range h.scene.Terrain().Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			n++
		}
	}
	return n
}
