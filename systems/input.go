package systems

import (
	cfg "github.com/automoto/sweeper/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollButtons reads the keyboard and every standard-layout gamepad into a
// button mask. Call it once per tick from the frame driver.
func PollButtons() cfg.Button {
	var mask cfg.Button
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for button, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				mask |= button
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					mask |= button
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		mask |= stickButtons(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		)
	}
	return mask
}

// stickButtons converts left stick axes to directional buttons past the
// deadzone.
func stickButtons(horizontal, vertical float64) cfg.Button {
	deadzone := cfg.Input.AnalogDeadzone
	var mask cfg.Button
	if horizontal < -deadzone {
		mask |= cfg.ButtonLeft
	}
	if horizontal > deadzone {
		mask |= cfg.ButtonRight
	}
	if vertical < -deadzone {
		mask |= cfg.ButtonUp
	}
	if vertical > deadzone {
		mask |= cfg.ButtonDown
	}
	return mask
}
