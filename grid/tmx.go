package grid

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// tmxTileLayer is the preferred tile layer name in Tiled maps.
const tmxTileLayer = "tiles"

// LoadTMX converts a Tiled map into a Grid. Tile local IDs become cell values;
// every object becomes a command named after the object, followed by its tile
// column and row and the whitespace-separated "args" property. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width < 1 || levelMap.Height < 1 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	g := &Grid{
		W: levelMap.Width,
		H: levelMap.Height,
		V: make([]byte, levelMap.Width*levelMap.Height),
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tmxTileLayer {
			layer = l
			break
		}
	}
	if layer == nil && len(levelMap.Layers) > 0 {
		layer = levelMap.Layers[0]
	}
	if layer != nil {
		for i, tile := range layer.Tiles {
			if i >= len(g.V) {
				break
			}
			if tile == nil || tile.IsNil() {
				continue
			}
			if tile.ID > 0xff {
				return nil, fmt.Errorf("load TMX %s: tile %d at cell %d does not fit in a byte", tmxPath, tile.ID, i)
			}
			g.V[i] = byte(tile.ID)
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			if o.Name == "" {
				continue
			}
			tokens := []string{
				o.Name,
				strconv.Itoa(int(o.X / tileW)),
				strconv.Itoa(int(o.Y / tileH)),
			}
			tokens = append(tokens, strings.Fields(o.Properties.GetString("args"))...)
			g.Meta = append(g.Meta, tokens)
		}
	}

	return g, nil
}
