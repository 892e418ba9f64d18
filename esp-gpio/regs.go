package gpio

import (
	"unsafe"

	"github.com/tinygo-org/espio/esp-gpio/hwreg"
)

// bankRegs points at the word registers of one 32-pin register bank. Chips
// with more than 32 pins have a second bank for pins 32 and up; a pin's bit
// inside a bank word is always 1 << (number % 32).
//
// Level and enable changes go through the dedicated write-1-to-set and
// write-1-to-clear registers, never through read-modify-write of the shared
// word, so concurrent updates of different pins cannot race each other.
type bankRegs struct {
	out        *hwreg.R32 // output level readback
	outSet     *hwreg.R32 // output level, write 1 to set
	outClear   *hwreg.R32 // output level, write 1 to clear
	outEnSet   *hwreg.R32 // output driver enable, write 1 to set
	outEnClear *hwreg.R32 // output driver enable, write 1 to clear
	in         *hwreg.R32 // input level
	intClear   *hwreg.R32 // latched interrupt status, write 1 to clear
	status     coreStatus // per-core masked interrupt status for this bank
}

// CoreRole selects which CPU core's view of the interrupt status is read.
type CoreRole uint8

const (
	// PrimaryCore is the protocol core, the one that boots first.
	PrimaryCore CoreRole = iota
	// SecondaryCore is the application core of dual-core chips.
	SecondaryCore
)

// coreStatus answers the per-core masked interrupt status words of one bank.
// The hardware latches an event in a shared status register and then masks
// it per core; these registers are the post-mask views.
type coreStatus struct {
	intr    *hwreg.R32 // primary core, maskable
	nmi     *hwreg.R32 // primary core, non-maskable
	appIntr *hwreg.R32 // secondary core, maskable
	appNmi  *hwreg.R32 // secondary core, non-maskable
}

// dualCoreStatus binds distinct status registers for each core role.
func dualCoreStatus(intr, nmi, appIntr, appNmi *hwreg.R32) coreStatus {
	return coreStatus{intr: intr, nmi: nmi, appIntr: appIntr, appNmi: appNmi}
}

// singleCoreStatus aliases both roles to the primary-core registers.
// Single-core chips use it, as do dual-core chips whose status registers are
// shared between cores.
func singleCoreStatus(intr, nmi *hwreg.R32) coreStatus {
	return coreStatus{intr: intr, nmi: nmi, appIntr: intr, appNmi: nmi}
}

func (s coreStatus) maskable(role CoreRole) uint32 {
	if role == SecondaryCore {
		return s.appIntr.Get()
	}
	return s.intr.Get()
}

func (s coreStatus) nonMaskable(role CoreRole) uint32 {
	if role == SecondaryCore {
		return s.appNmi.Get()
	}
	return s.nmi.Get()
}

// regFile is the register-map view the core programs. A chip binding overlays
// it on the hardware blocks at their fixed physical addresses; tests allocate
// the arrays in RAM.
type regFile struct {
	bank0 bankRegs
	bank1 *bankRegs // nil on chips with 32 pins or fewer

	pin        []hwreg.R32  // per-pin configuration, indexed by pin number
	funcInSel  []hwreg.R32  // matrix input select, indexed by signal id
	funcOutSel []hwreg.R32  // matrix output select, indexed by pin number
	mux        []*hwreg.R32 // io-mux pad register, indexed by pin number
}

func (r *regFile) bankFor(index uint8) *bankRegs {
	if index == 0 {
		return &r.bank0
	}
	return r.bank1
}

// regAt overlays a register cell on a fixed physical address.
func regAt(addr uintptr) *hwreg.R32 {
	return (*hwreg.R32)(unsafe.Pointer(addr))
}

// regSlice overlays a register array of n cells starting at a fixed physical
// address.
func regSlice(addr uintptr, n int) []hwreg.R32 {
	return unsafe.Slice(regAt(addr), n)
}

// GPIO.PIN[n] register fields. The layout is the same across the family.
const (
	pinPadDriver    = 1 << 2 // open-drain output
	pinIntTypePos   = 7
	pinIntTypeMask  = 0x7
	pinWakeupEnable = 1 << 10
	pinIntEnaPos    = 13
	pinIntEnaMask   = 0x1F
)

// io-mux pad register fields. The layout is the same across the family; only
// which alternate function means "plain GPIO" differs per chip.
const (
	ioMuxMcuOE      = 1 << 0 // output enable during sleep
	ioMuxSlpSel     = 1 << 1 // take the sleep configuration
	ioMuxMcuWPD     = 1 << 2 // pull-down during sleep
	ioMuxMcuWPU     = 1 << 3 // pull-up during sleep
	ioMuxMcuIE      = 1 << 4 // input enable during sleep
	ioMuxFunWPD     = 1 << 7 // pull-down
	ioMuxFunWPU     = 1 << 8 // pull-up
	ioMuxFunIE      = 1 << 9 // input enable
	ioMuxFunDrvPos  = 10
	ioMuxFunDrvMask = 0x3
	ioMuxMcuSelPos  = 12
	ioMuxMcuSelMask = 0x7
)
