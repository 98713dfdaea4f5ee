// Package assets embeds the bundled levels and synthesizes the sound effects.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/sweeper/grid"
)

//go:embed all:levels
var assetFS embed.FS

const levelDir = "levels"

// LevelNames lists the bundled levels, without extension, sorted.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir(levelDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	seen := map[string]bool{}
	var names []string
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".txt" && ext != ".tmx") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel decodes the bundled level called name. Grid text (.txt) wins over
// a Tiled map (.tmx) of the same name.
func LoadLevel(name string) (*grid.Grid, error) {
	txt := path.Join(levelDir, name+".txt")
	data, err := assetFS.ReadFile(txt)
	if err == nil {
		g, err := grid.Decode(string(data))
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		return g, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	tmx := path.Join(levelDir, name+".tmx")
	if _, err := fs.Stat(assetFS, tmx); err != nil {
		return nil, fmt.Errorf("level %s: not found", name)
	}
	return grid.LoadTMX(assetFS, tmx)
}
