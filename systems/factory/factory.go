// Package factory turns a level's meta commands into sprites.
package factory

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/automoto/sweeper/grid"
	"github.com/automoto/sweeper/sprites"
)

type createFunc func(w sprites.World, args []string) error

var commands = map[string]createFunc{
	"hero":      CreateHero,
	"platform":  CreatePlatform,
	"crusher":   CreateCrusher,
	"switch":    CreateSwitch,
	"gate":      CreateGate,
	"breakable": CreateBreakable,
	"raft":      CreateRaft,
	"item":      GrantItem,
}

// Populate adds a sprite for every recognised command in g, in command order.
// Unknown commands are logged and skipped. The first malformed command stops
// population and is returned.
func Populate(w sprites.World, g *grid.Grid) error {
	for i, tokens := range g.Meta {
		create, ok := commands[tokens[0]]
		if !ok {
			log.Printf("Warning: Unknown level command %q", strings.Join(tokens, " "))
			continue
		}
		if err := create(w, tokens[1:]); err != nil {
			return fmt.Errorf("command %d (%s): %w", i+1, tokens[0], err)
		}
	}
	return nil
}

// args reads positional command arguments. The first failed read sticks.
type args struct {
	tokens []string
	err    error
}

func newArgs(tokens []string, minCount, maxCount int) *args {
	a := &args{tokens: tokens}
	if len(tokens) < minCount || len(tokens) > maxCount {
		if minCount == maxCount {
			a.err = fmt.Errorf("want %d arguments, got %d", minCount, len(tokens))
		} else {
			a.err = fmt.Errorf("want %d to %d arguments, got %d", minCount, maxCount, len(tokens))
		}
	}
	return a
}

func (a *args) int(i int, name string) int {
	if a.err != nil {
		return 0
	}
	v, err := strconv.Atoi(a.tokens[i])
	if err != nil {
		a.err = fmt.Errorf("%s: %w", name, err)
		return 0
	}
	return v
}

// positive reads an int argument that must be at least 1.
func (a *args) positive(i int, name string) int {
	v := a.int(i, name)
	if a.err == nil && v < 1 {
		a.err = fmt.Errorf("%s must be at least 1, got %d", name, v)
	}
	return v
}

func (a *args) str(i int) string {
	if a.err != nil || i >= len(a.tokens) {
		return ""
	}
	return a.tokens[i]
}
