package factory

import (
	"fmt"

	cfg "github.com/automoto/sweeper/config"
	"github.com/automoto/sweeper/sprites"
)

// CreatePlatform handles "platform col row widthTiles x|y rangeTiles [oneway]".
func CreatePlatform(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 5, 6)
	col, row := a.int(0, "col"), a.int(1, "row")
	width := a.positive(2, "width")
	axis := a.str(3)
	span := a.positive(4, "range")
	flag := a.str(5)
	if a.err != nil {
		return a.err
	}
	if axis != "x" && axis != "y" {
		return fmt.Errorf("axis must be x or y, got %q", axis)
	}
	if flag != "" && flag != "oneway" {
		return fmt.Errorf("unknown platform flag %q", flag)
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewPlatform(w,
		float64(col)*ts, float64(row)*ts, float64(width)*ts,
		axis == "x", float64(span)*ts, flag == "oneway"))
	return nil
}

// CreateCrusher handles "crusher col row widthTiles heightTiles rangeTiles".
func CreateCrusher(w sprites.World, tokens []string) error {
	a := newArgs(tokens, 5, 5)
	col, row := a.int(0, "col"), a.int(1, "row")
	width, height := a.positive(2, "width"), a.positive(3, "height")
	span := a.positive(4, "range")
	if a.err != nil {
		return a.err
	}

	ts := cfg.Grid.TileSize
	w.AddSprite(sprites.NewCrusher(w,
		float64(col)*ts, float64(row)*ts,
		float64(width)*ts, float64(height)*ts, float64(span)*ts))
	return nil
}
