//go:build esp32

package main

import (
	"time"

	gpio "github.com/tinygo-org/espio/esp-gpio"
	"tinygo.org/x/drivers"
)

// PCD8544 command bytes.
const (
	cmdFuncSet  = 0x20
	cmdExtended = 0x01
	cmdDisplay  = 0x08
	dispNormal  = 0x04
	cmdSetY     = 0x40
	cmdSetX     = 0x80
	cmdTemp     = 0x04
	cmdBias     = 0x10
	cmdVop      = 0x80
)

// PCD8544 drives the 84x48 monochrome display of Nokia 5110 boards over a
// bit-banged serial link.
type PCD8544 struct {
	// Pins
	clk gpio.OutputPin
	din gpio.OutputPin
	dc  gpio.OutputPin
	ce  gpio.OutputPin
	rst gpio.OutputPin

	// General Display Stuff
	width    int16
	height   int16
	rotation drivers.Rotation
}

func NewPCD8544(clk, din, dc, ce, rst gpio.OutputPin) *PCD8544 {
	return &PCD8544{
		clk: clk, din: din, dc: dc, ce: ce, rst: rst,
		width: 84, height: 48,
	}
}

// Configure resets the controller and programs bias and contrast.
func (d *PCD8544) Configure() {
	d.ce.High()
	d.rst.Low()
	time.Sleep(100 * time.Millisecond)
	d.rst.High()

	d.command(cmdFuncSet | cmdExtended)
	d.command(cmdVop | 0x3F)
	d.command(cmdTemp | 0x02)
	d.command(cmdBias | 0x03)
	d.command(cmdFuncSet)
	d.command(cmdDisplay | dispNormal)
}

func (d *PCD8544) SetRotation(rotation drivers.Rotation) {
	d.rotation = rotation
}

// Size returns the dimensions as seen under the current rotation.
func (d *PCD8544) Size() (w, h int16) {
	if d.rotation == drivers.Rotation90 || d.rotation == drivers.Rotation270 {
		return d.height, d.width
	}
	return d.width, d.height
}

// DrawBuffer sends a full 504-byte frame, one bit per pixel in column-banked
// order.
func (d *PCD8544) DrawBuffer(buf []byte) {
	d.command(cmdSetX)
	d.command(cmdSetY)
	d.dc.High()
	d.ce.Low()
	for _, b := range buf {
		d.writeByte(b)
	}
	d.ce.High()
}

func (d *PCD8544) command(c byte) {
	d.dc.Low()
	d.ce.Low()
	d.writeByte(c)
	d.ce.High()
}

func (d *PCD8544) writeByte(b byte) {
	for bit := 7; bit >= 0; bit-- {
		d.clk.Low()
		d.din.Set(b>>uint(bit)&1 != 0)
		d.clk.High()
	}
}
