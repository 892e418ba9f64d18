package gpiolib

import (
	"errors"

	gpio "github.com/tinygo-org/espio/esp-gpio"
)

// ShiftRegister drives a 74HC595-style serial-in parallel-out shift
// register over three pads: serial clock, serial data and the storage
// latch.
type ShiftRegister struct {
	clk   gpio.OutputPin
	data  gpio.OutputPin
	latch gpio.OutputPin
	bits  uint8
}

// NewShiftRegister takes the three pads, already configured as push-pull
// outputs, and the number of daisy-chained output bits.
func NewShiftRegister(clk, data, latch gpio.OutputPin, bits uint8) (*ShiftRegister, error) {
	if bits == 0 || bits > 32 {
		return nil, errors.New("gpiolib: shift register bits must be 1..32")
	}
	clk.Low()
	data.Low()
	latch.High()
	return &ShiftRegister{clk: clk, data: data, latch: latch, bits: bits}, nil
}

// Write clocks the low bits of v out, most significant first, and latches
// them onto the parallel outputs in one strobe.
func (s *ShiftRegister) Write(v uint32) {
	s.latch.Low()
	for i := int8(s.bits) - 1; i >= 0; i-- {
		s.clk.Low()
		s.data.Set(v>>uint8(i)&1 != 0)
		s.clk.High()
	}
	s.latch.High()
}
