package gpio

// InputSignal identifies a peripheral input in the routing matrix. The
// concrete values are chip specific and live next to the chip's wiring
// table. Ids above the chip's matrix range name dedicated io-mux inputs that
// can only travel the direct path.
type InputSignal uint16

// OutputSignal identifies a peripheral output in the routing matrix, with
// the same chip-specific split between matrix ids and dedicated io-mux ids.
type OutputSignal uint16

// No-signal sentinels for empty alternate function slots.
const (
	noInputSignal  InputSignal  = 0xFFFF
	noOutputSignal OutputSignal = 0xFFFF
)

// numAltFuncs is the number of io-mux function slots per pad.
const numAltFuncs = 6

// AlternateFunction selects one of the io-mux function slots of a pad.
type AlternateFunction uint8

const (
	Function0 AlternateFunction = iota
	Function1
	Function2
	Function3
	Function4
	Function5
)

// dedicatedInputFunc looks up the io-mux slot carrying sig on this pad.
func (l *pinLine) dedicatedInputFunc(sig InputSignal) (AlternateFunction, bool) {
	for slot, s := range l.afIn {
		if s == sig && s != noInputSignal {
			return AlternateFunction(slot), true
		}
	}
	return 0, false
}

// dedicatedOutputFunc looks up the io-mux slot carrying sig on this pad.
func (l *pinLine) dedicatedOutputFunc(sig OutputSignal) (AlternateFunction, bool) {
	for slot, s := range l.afOut {
		if s == sig && s != noOutputSignal {
			return AlternateFunction(slot), true
		}
	}
	return 0, false
}

// connectInput routes a peripheral input to this pad. If the pad has a
// dedicated io-mux slot for the signal and nothing rules the direct path
// out, the io-mux is switched to that slot and the matrix entry is left
// alone. Otherwise the pad goes through the matrix: inversion is only
// available there, so requesting it forces the routed path. A signal outside
// the matrix range with no dedicated slot is unroutable; that panics before
// any register is written.
func (l *pinLine) connectInput(sig InputSignal, invert, forceMatrix bool) {
	if af, ok := l.dedicatedInputFunc(sig); ok && !forceMatrix && !invert {
		l.setAltFunc(af)
		return
	}
	if uint16(sig) > l.chip.inputSignalMax {
		panic(badInputSignal)
	}
	l.setAltFunc(l.chip.gpioMuxFunc)
	v := uint32(l.num) | l.chip.matrixInRoute
	if invert {
		v |= l.chip.matrixInInv
	}
	l.regs.funcInSel[sig].Set(v)
}

// disconnectInput detaches a peripheral input from this pad. The io-mux goes
// back to the GPIO function; if the signal has a matrix entry its routing
// and inversion bits are dropped so the entry no longer selects a pad.
func (l *pinLine) disconnectInput(sig InputSignal) {
	l.setAltFunc(l.chip.gpioMuxFunc)
	if uint16(sig) <= l.chip.inputSignalMax {
		l.regs.funcInSel[sig].ClearBits(l.chip.matrixInRoute | l.chip.matrixInInv)
	}
}

// connectOutput routes a peripheral output to this pad. A dedicated io-mux
// slot is used when the plain routing is wanted; inversion and the
// output-enable overrides only exist in the matrix, so any of them forces
// the routed path. A signal outside the matrix range with no dedicated slot
// clips to the pad's own GPIO id, which routes the plain GPIO output
// instead.
func (l *pinLine) connectOutput(sig OutputSignal, invert, invertEnable, enableFromGPIO, forceMatrix bool) {
	if af, ok := l.dedicatedOutputFunc(sig); ok && !forceMatrix && !invert && !invertEnable && !enableFromGPIO {
		l.setAltFunc(af)
		return
	}
	id := uint32(sig)
	if id > uint32(l.chip.outputSignalMax) {
		id = uint32(l.chip.outputSignalMax)
	}
	l.setAltFunc(l.chip.gpioMuxFunc)
	v := id
	if invert {
		v |= l.chip.matrixOutInv
	}
	if invertEnable {
		v |= l.chip.matrixOutEnInv
	}
	if enableFromGPIO {
		v |= l.chip.matrixOutEnSel
	}
	l.regs.funcOutSel[l.num].Set(v)
}

// disconnectOutput detaches whatever peripheral output drives this pad. The
// io-mux goes back to the GPIO function and the pad's selector entry is
// rewritten to the plain GPIO id, which also drops any inversion or enable
// override left behind.
func (l *pinLine) disconnectOutput() {
	l.setAltFunc(l.chip.gpioMuxFunc)
	l.regs.funcOutSel[l.num].Set(uint32(l.chip.gpioOutSignal))
}
