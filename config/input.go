package config

import "github.com/hajimehoshi/ebiten/v2"

// Button is a logical input button; a tick's input is a bitmask of these
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonJump
	ButtonAction
	ButtonPause
)

// Binding maps a button to keyboard keys and standard gamepad buttons
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all key bindings
type InputConfig struct {
	Bindings       map[Button]Binding
	AnalogDeadzone float64 // Left stick magnitude that counts as a direction
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[Button]Binding{
			ButtonLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ButtonRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ButtonUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ButtonDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ButtonJump: {
				Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ButtonAction: {
				Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeyShift},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ButtonPause: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
		AnalogDeadzone: 0.3,
	}
}
