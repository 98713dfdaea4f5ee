package components

import cfg "github.com/automoto/sweeper/config"

// Input is one tick's button state plus the previous tick's, so presses and
// releases can be read as transitions.
type Input struct {
	Current  cfg.Button
	Previous cfg.Button
}

// Next returns the input for a new tick with buttons held.
func (in Input) Next(buttons cfg.Button) Input {
	return Input{Current: buttons, Previous: in.Current}
}

func (in Input) Pressed(b cfg.Button) bool {
	return in.Current&b != 0
}

func (in Input) JustPressed(b cfg.Button) bool {
	return in.Current&b != 0 && in.Previous&b == 0
}

func (in Input) JustReleased(b cfg.Button) bool {
	return in.Current&b == 0 && in.Previous&b != 0
}

// Any reports whether any button is held.
func (in Input) Any() bool {
	return in.Current != 0
}
