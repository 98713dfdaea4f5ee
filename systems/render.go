package systems

import (
	"image/color"

	"github.com/automoto/sweeper/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas draws world-space rectangles onto an ebiten screen, offset by
// the camera view.
type ScreenCanvas struct {
	Screen *ebiten.Image
	View   components.Rect
}

// NewScreenCanvas returns a canvas for the camera's current view.
func NewScreenCanvas(screen *ebiten.Image, camera *Camera) *ScreenCanvas {
	return &ScreenCanvas{Screen: screen, View: camera.WorldBounds()}
}

func (c *ScreenCanvas) FillRect(r components.Rect, clr color.Color) {
	// Viewport culling
	if !r.Overlaps(c.View) {
		return
	}
	x := float32(r.X - c.View.X)
	y := float32(r.Y - c.View.Y)
	vector.FillRect(c.Screen, x, y, float32(r.W), float32(r.H), clr, false)
}

// StrokeRect draws a one pixel outline of r.
func (c *ScreenCanvas) StrokeRect(r components.Rect, clr color.Color) {
	if !r.Overlaps(c.View) {
		return
	}
	x := float32(r.X - c.View.X)
	y := float32(r.Y - c.View.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(c.Screen, x, y, w, 1, clr, false)     // Top
	vector.FillRect(c.Screen, x, y+h-1, w, 1, clr, false) // Bottom
	vector.FillRect(c.Screen, x, y, 1, h, clr, false)     // Left
	vector.FillRect(c.Screen, x+w-1, y, 1, h, clr, false) // Right
}
