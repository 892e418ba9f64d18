package gpiolib

import (
	gpio "github.com/tinygo-org/espio/esp-gpio"
)

// Button reads an active-low push button, typically on a pad configured as
// a pull-up input. It arms the pad's falling-edge interrupt so presses are
// caught even between polls.
type Button struct {
	in   gpio.InputPin
	core gpio.CoreRole
}

// NewButton arms the pad and returns the button. core selects which CPU
// core's latched status Fell consumes.
func NewButton(in gpio.InputPin, core gpio.CoreRole) *Button {
	in.Listen(gpio.FallingEdge)
	return &Button{in: in, core: core}
}

// Pressed reports whether the button is held down right now.
func (b *Button) Pressed() bool {
	return !b.in.IsHigh()
}

// Fell reports whether the button went down since the last call, consuming
// the latched edge.
func (b *Button) Fell() bool {
	if !b.in.IsInterruptSet(b.core) {
		return false
	}
	b.in.ClearInterrupt()
	return true
}

// ClearEvent drops a latched press without reporting it.
func (b *Button) ClearEvent() {
	b.in.ClearInterrupt()
}
