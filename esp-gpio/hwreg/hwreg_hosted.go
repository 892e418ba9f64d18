//go:build !tinygo

package hwreg

import "unsafe"

// R32 is one 32-bit register cell backed by plain memory. The method set
// matches the baremetal build so the core compiles and tests identically.
type R32 struct {
	reg uint32
}

// Get returns the register value.
func (r *R32) Get() uint32 { return r.reg }

// Set writes the whole register.
func (r *R32) Set(v uint32) { r.reg = v }

// SetBits sets the bits in mask, leaving the rest untouched.
func (r *R32) SetBits(mask uint32) { r.reg |= mask }

// ClearBits clears the bits in mask, leaving the rest untouched.
func (r *R32) ClearBits(mask uint32) { r.reg &^= mask }

// HasBits reports whether any bit in mask is set.
func (r *R32) HasBits(mask uint32) bool { return r.reg&mask != 0 }

// ReplaceBits writes value into the field described by mask (unshifted) and
// pos, preserving all other bits.
func (r *R32) ReplaceBits(value, mask uint32, pos uint8) {
	r.reg = r.reg&^(mask<<pos) | value<<pos
}

// The cell must stay exactly one register wide for the array overlays.
var _ [4 - unsafe.Sizeof(R32{})]byte
var _ [unsafe.Sizeof(R32{}) - 4]byte
