package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin    = 4
	hudBoxWidth  = 76
	hudBoxHeight = 16
)

var (
	hudBackground = color.RGBA{40, 40, 40, 200}
	hudActive     = color.RGBA{40, 160, 40, 220}
)

// HUDStatus is what the HUD shows about the hero.
type HUDStatus struct {
	Selected string // Item ACTION will use, "" for none
	Active   bool   // Selected item is in progress
	Deaths   int
}

// Label returns the item box text.
func (s HUDStatus) Label() string {
	if s.Selected == "" {
		return "-"
	}
	return s.Selected
}

// DrawHUD renders the selected item box in the top-left corner and the death
// counter in the top-right one.
func DrawHUD(screen *ebiten.Image, status HUDStatus) {
	bg := hudBackground
	if status.Active {
		bg = hudActive
	}
	vector.FillRect(screen, hudMargin, hudMargin, hudBoxWidth, hudBoxHeight, bg, false)
	ebitenutil.DebugPrintAt(screen, status.Label(), hudMargin+4, hudMargin)

	if status.Deaths > 0 {
		text := fmt.Sprintf("x%d", status.Deaths)
		x := screen.Bounds().Dx() - hudMargin - 6*len(text)
		ebitenutil.DebugPrintAt(screen, text, x, hudMargin)
	}
}
