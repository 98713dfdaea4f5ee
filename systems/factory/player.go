package factory

import (
	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/sprites"
)

// CreateHero handles "hero col row". The hero stands on the bottom edge of
// the tile, centered.
func CreateHero(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 2, 2)
	col, row := a.int(0, "col"), a.int(1, "row")
	if a.err != nil {
		return a.err
	}
	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewHero(w, float64(col)*ts+ts/2, float64(row+1)*ts))
	return nil
}
