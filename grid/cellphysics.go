package grid

import "github.com/automoto/sweeper/tags"

// CellType is the physics type of a tile.
type CellType byte

const (
	CellVacant CellType = iota
	CellSolid
	CellOneway
	CellHazard
)

// Role returns the physics role static sprites of this type carry.
func (c CellType) Role() string {
	switch c {
	case CellSolid:
		return tags.RoleSolid
	case CellOneway:
		return tags.RoleOneway
	case CellHazard:
		return tags.RoleHazard
	default:
		return tags.RoleNone
	}
}

// CellPhysics maps tile IDs to physics types. It follows the tileset sheet
// layout (16 tiles per row) and must not be edited without re-checking every
// level.
var CellPhysics = [256]CellType{
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x00 ground
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, // 0x10 ground edges, ledges
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 0, 0, 0, 0, // 0x20 brick, shelves
	3, 3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30 spikes, weeds
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40 background wall
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50 background wall
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x60 stone
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 1, 1, 1, 1, // 0x70 stone trim, planks
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x80 furniture decals
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x90 furniture decals
	2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 0, 0, 0, 0, 0, // 0xa0 tables, bookshelves
	3, 3, 3, 3, 0, 0, 0, 0, 3, 3, 3, 3, 0, 0, 0, 0, // 0xb0 fire, water
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xc0 cave
	1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 3, 3, 3, 3, 3, 3, // 0xd0 cave, stalactites
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xe0 sky
	1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 0, 0, 0, 0, // 0xf0 editor swatches
}
