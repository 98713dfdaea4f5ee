// Package grid decodes the tile-grid level format and turns static tile
// geometry into merged physics rectangles.
package grid

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Grid is an immutable tile map plus the level's free-form commands.
type Grid struct {
	W, H int
	V    []byte     // Row-major tile IDs, 0 = vacant
	Meta [][]string // One token list per command line
}

// DecodeError reports malformed grid text.
type DecodeError struct {
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("grid: line %d: %s", e.Line, e.Msg)
}

// Decode parses serialized grid text. A partially valid grid is never returned.
func Decode(serial string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(serial, "\r\n", "\n"), "\n")

	g := &Grid{}
	row := 0
	for ; row < len(lines); row++ {
		line := strings.TrimRight(lines[row], " \t\r")
		if line == "" {
			break
		}
		if row == 0 {
			if len(line)%2 != 0 {
				return nil, &DecodeError{Line: 1, Msg: "odd number of hex digits"}
			}
			g.W = len(line) / 2
		}
		if len(line) != g.W*2 {
			return nil, &DecodeError{Line: row + 1, Msg: fmt.Sprintf("expected %d columns, found %d hex digits", g.W, len(line))}
		}
		cells, err := hex.DecodeString(line)
		if err != nil {
			return nil, &DecodeError{Line: row + 1, Msg: fmt.Sprintf("invalid hex: %v", err)}
		}
		g.V = append(g.V, cells...)
	}
	g.H = row
	if g.W < 1 || g.H < 1 {
		return nil, &DecodeError{Line: row + 1, Msg: "grid must have at least one row and one column"}
	}

	for _, line := range lines[row:] {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		g.Meta = append(g.Meta, tokens)
	}
	return g, nil
}

// Encode writes g in the format Decode reads.
func (g *Grid) Encode() string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.WriteString(hex.EncodeToString(g.V[y*g.W : (y+1)*g.W]))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	for _, tokens := range g.Meta {
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Cell returns the tile ID at (x, y), or 0 outside the grid.
func (g *Grid) Cell(x, y int) byte {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.V[y*g.W+x]
}

// Physics returns the physics type of the tile at (x, y).
func (g *Grid) Physics(x, y int) CellType {
	return CellPhysics[g.Cell(x, y)]
}

// Commands returns the meta commands whose first token is name.
func (g *Grid) Commands(name string) [][]string {
	var out [][]string
	for _, tokens := range g.Meta {
		if tokens[0] == name {
			out = append(out, tokens)
		}
	}
	return out
}
