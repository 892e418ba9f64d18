// Package gpio is a register-level GPIO core for the ESP32 family.
//
// Each chip exposes one IO controller instance whose Pins collection hands
// out a typed handle per bonded pad. A handle's type carries the pad's
// capability class and its configured mode, so driving an input-only pad or
// reading an unconfigured one is a compile error rather than a runtime one.
// Mode changes go through the Into* transitions, which reprogram the pad and
// return a handle in the new mode; the erased InputPin and OutputPin views
// carry the capability proof into ordinary structs and APIs.
//
// Peripheral signals reach pads either through a dedicated io-mux function
// slot or through the routing matrix; the connect operations pick the direct
// path when they can and fall back to the matrix when an option demands it.
//
// All register access goes through hwreg, so on a host the whole core runs
// against RAM-backed register files under go test.
package gpio

// Panic messages for caller bugs and malformed chip tables.
const (
	badWakeEvent      = "wake from light sleep requires a level event"
	badInputSignal    = "input signal cannot be routed through the matrix"
	badWiringTable    = "malformed pin wiring table"
	holdUnimplemented = "pad hold is not implemented"
)

// ioCore is the chip-independent half of an IO controller instance. The
// chip files embed it next to their typed pin collection.
type ioCore struct {
	regs *regFile
	chip *chipProfile
}

// ConnectLowToPeripheral ties a peripheral input to constant zero through
// the matrix, without spending a pad on it.
func (io *ioCore) ConnectLowToPeripheral(sig InputSignal) {
	if uint16(sig) > io.chip.inputSignalMax {
		panic(badInputSignal)
	}
	io.regs.funcInSel[sig].Set(uint32(io.chip.zeroInput) | io.chip.matrixInRoute)
}

// ConnectHighToPeripheral ties a peripheral input to constant one through
// the matrix, without spending a pad on it.
func (io *ioCore) ConnectHighToPeripheral(sig InputSignal) {
	if uint16(sig) > io.chip.inputSignalMax {
		panic(badInputSignal)
	}
	io.regs.funcInSel[sig].Set(uint32(io.chip.oneInput) | io.chip.matrixInRoute)
}

// inputRouting decodes the matrix entry of a peripheral input: the selected
// source, whether the matrix drives the signal at all, and inversion.
func (io *ioCore) inputRouting(sig InputSignal) (src uint8, routed, inverted bool) {
	v := io.regs.funcInSel[sig].Get()
	src = uint8(v & io.chip.matrixInSelMask)
	return src, v&io.chip.matrixInRoute != 0, v&io.chip.matrixInInv != 0
}

// outputRouting decodes the selector entry of a pad: the signal id driving
// it and the matrix-side modifiers.
func (io *ioCore) outputRouting(num uint8) (sig OutputSignal, inverted, enInverted, enFromGPIO bool) {
	v := io.regs.funcOutSel[num].Get()
	sig = OutputSignal(v & io.chip.matrixOutSelMask)
	return sig, v&io.chip.matrixOutInv != 0,
		v&io.chip.matrixOutEnInv != 0, v&io.chip.matrixOutEnSel != 0
}
