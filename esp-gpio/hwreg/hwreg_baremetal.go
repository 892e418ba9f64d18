//go:build tinygo

package hwreg

import (
	"runtime/volatile"
	"unsafe"
)

// R32 is one 32-bit hardware register.
type R32 struct {
	reg volatile.Register32
}

// Get returns the register value.
func (r *R32) Get() uint32 { return r.reg.Get() }

// Set writes the whole register.
func (r *R32) Set(v uint32) { r.reg.Set(v) }

// SetBits sets the bits in mask, leaving the rest untouched.
func (r *R32) SetBits(mask uint32) { r.reg.SetBits(mask) }

// ClearBits clears the bits in mask, leaving the rest untouched.
func (r *R32) ClearBits(mask uint32) { r.reg.ClearBits(mask) }

// HasBits reports whether any bit in mask is set.
func (r *R32) HasBits(mask uint32) bool { return r.reg.HasBits(mask) }

// ReplaceBits writes value into the field described by mask (unshifted) and
// pos, preserving all other bits.
func (r *R32) ReplaceBits(value, mask uint32, pos uint8) {
	r.reg.ReplaceBits(value, mask, pos)
}

// The cell must stay exactly one register wide for the array overlays.
var _ [4 - unsafe.Sizeof(R32{})]byte
var _ [unsafe.Sizeof(R32{}) - 4]byte
