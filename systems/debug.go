package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/sweeper/components"
	"github.com/automoto/sweeper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/solarlune/resolv"
)

var (
	debugSolid   = color.RGBA{100, 100, 100, 255} // Grey
	debugOneway  = color.RGBA{0, 255, 0, 255}     // Green
	debugHazard  = color.RGBA{255, 0, 0, 255}     // Red
	debugActive  = color.RGBA{0, 0, 255, 255}     // Blue
	debugDefault = color.RGBA{0, 255, 255, 255}   // Cyan
	debugProbe   = color.RGBA{255, 0, 255, 255}   // Magenta
)

// DrawDebug outlines every physics hit-box and every resolv probe, then
// prints the tick's sprite count and camera position.
func DrawDebug(canvas *ScreenCanvas, space Space, terrain *resolv.Space) {
	sprites := space.Sprites()
	for _, s := range sprites {
		if s.Body == nil {
			continue
		}
		canvas.StrokeRect(s.HitBox(), debugColor(s))
	}

	if terrain != nil {
		for _, obj := range terrain.Objects() {
			if !obj.HasTags(tags.ResolvProbe) {
				continue
			}
			canvas.StrokeRect(components.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, debugProbe)
		}
	}

	ebitenutil.DebugPrint(canvas.Screen, fmt.Sprintf("sprites: %d\ncamera: %.0f,%.0f",
		len(sprites), canvas.View.X, canvas.View.Y))
}

func debugColor(s *components.Sprite) color.Color {
	switch {
	case s.HasRole(tags.RoleOneway):
		return debugOneway
	case s.HasRole(tags.RoleHazard):
		return debugHazard
	case s.Body.Active():
		return debugActive
	case s.HasRole(tags.RoleSolid):
		return debugSolid
	}
	return debugDefault
}
