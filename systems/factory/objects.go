package factory

import (
	"fmt"
	"slices"

	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/sprites"
)

// CreateSwitch handles "switch col row treadle|stompbox|once key".
func CreateSwitch(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 4, 4)
	col, row := a.int(0, "col"), a.int(1, "row")
	if a.err != nil {
		return a.err
	}
	mode, err := sprites.ParseSwitchMode(a.str(2))
	if err != nil {
		return err
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewSwitch(w, float64(col)*ts, float64(row)*ts, mode, a.str(3)))
	return nil
}

// CreateGate handles "gate col row heightTiles key".
func CreateGate(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 4, 4)
	col, row := a.int(0, "col"), a.int(1, "row")
	height := a.positive(2, "height")
	if a.err != nil {
		return a.err
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewGate(w, float64(col)*ts, float64(row)*ts, float64(height)*ts, a.str(3)))
	return nil
}

// CreateBreakable handles "breakable col row".
func CreateBreakable(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 2, 2)
	col, row := a.int(0, "col"), a.int(1, "row")
	if a.err != nil {
		return a.err
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewBreakable(w, float64(col)*ts, float64(row)*ts))
	return nil
}

// CreateRaft handles "raft col row left|right maxTiles".
func CreateRaft(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 4, 4)
	col, row := a.int(0, "col"), a.int(1, "row")
	length := a.positive(3, "length")
	if a.err != nil {
		return a.err
	}
	dir, err := sprites.ParseDirection(a.str(2))
	if err != nil {
		return err
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewRaft(w, float64(col)*ts, float64(row)*ts, dir, float64(length)*ts))
	return nil
}

// GrantItem handles "item name" by marking the item as owned.
func GrantItem(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 1, 1)
	if a.err != nil {
		return a.err
	}
	name := a.str(0)
	if !slices.Contains(cfg.ItemOrder, name) {
		return fmt.Errorf("unknown item %q", name)
	}
	w.PermanentState().Set(sprites.ItemKey(name), 1)
	return nil
}
