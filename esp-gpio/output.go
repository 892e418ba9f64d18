package gpio

// DriveStrength selects the pad driver's current limit.
type DriveStrength uint8

const (
	Drive5mA  DriveStrength = 0
	Drive10mA DriveStrength = 1
	Drive20mA DriveStrength = 2
	Drive40mA DriveStrength = 3
)

// OutputPin is the erased output view of a pad. Like InputPin it drops the
// type parameters; the proof that the pad has an output driver happened at
// Output. The view is mode-agnostic on purpose, so a level can be preset
// before the pad is switched to an output mode and shows up glitch-free.
type OutputPin struct {
	line *pinLine
}

// Output derives the output view of a pin. Only pads with an output driver
// get one; for input-only pads this does not compile.
func Output[C OutputCapable, M Mode](p Pin[C, M]) OutputPin {
	return OutputPin{line: p.line}
}

// Number returns the pad's GPIO number.
func (p OutputPin) Number() uint8 { return p.line.num }

// High drives the pad high.
func (p OutputPin) High() {
	p.line.bank.outSet.Set(p.line.mask())
}

// Low drives the pad low.
func (p OutputPin) Low() {
	p.line.bank.outClear.Set(p.line.mask())
}

// Set drives the pad to the given level.
func (p OutputPin) Set(high bool) {
	if high {
		p.High()
	} else {
		p.Low()
	}
}

// Toggle flips the pad's output latch.
func (p OutputPin) Toggle() {
	if p.IsSetHigh() {
		p.Low()
	} else {
		p.High()
	}
}

// IsSetHigh reports the pad's output latch, not the wire. On an open-drain
// pad the two differ whenever another driver holds the released line low.
func (p OutputPin) IsSetHigh() bool {
	return p.line.bank.out.Get()&p.line.mask() != 0
}

// EnableOutput switches the pad's output driver on or off.
func (p OutputPin) EnableOutput(on bool) {
	if on {
		p.line.bank.outEnSet.Set(p.line.mask())
	} else {
		p.line.bank.outEnClear.Set(p.line.mask())
	}
}

// EnableOutputInSleepMode switches the output driver used while the pad is
// in sleep mode.
func (p OutputPin) EnableOutputInSleepMode(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxMcuOE)
	} else {
		p.line.mux.ClearBits(ioMuxMcuOE)
	}
}

// SetDriveStrength sets the pad driver's current limit.
func (p OutputPin) SetDriveStrength(ds DriveStrength) {
	p.line.mux.ReplaceBits(uint32(ds), ioMuxFunDrvMask, ioMuxFunDrvPos)
}

// EnableOpenDrain switches the pad between open-drain and push-pull.
func (p OutputPin) EnableOpenDrain(on bool) {
	if on {
		p.line.regs.pin[p.line.num].SetBits(pinPadDriver)
	} else {
		p.line.regs.pin[p.line.num].ClearBits(pinPadDriver)
	}
}

// InternalPullUp switches the pad's pull-up.
func (p OutputPin) InternalPullUp(on bool) {
	l := p.line
	if on {
		l.mux.SetBits(ioMuxFunWPU)
	} else {
		l.mux.ClearBits(ioMuxFunWPU)
	}
	if l.chip.pullFixup != nil {
		l.chip.pullFixup(l, on, l.mux.Get()&ioMuxFunWPD != 0)
	}
}

// InternalPullDown switches the pad's pull-down.
func (p OutputPin) InternalPullDown(on bool) {
	l := p.line
	if on {
		l.mux.SetBits(ioMuxFunWPD)
	} else {
		l.mux.ClearBits(ioMuxFunWPD)
	}
	if l.chip.pullFixup != nil {
		l.chip.pullFixup(l, l.mux.Get()&ioMuxFunWPU != 0, on)
	}
}

// InternalPullUpInSleepMode switches the pull-up used while the pad is in
// sleep mode.
func (p OutputPin) InternalPullUpInSleepMode(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxMcuWPU)
	} else {
		p.line.mux.ClearBits(ioMuxMcuWPU)
	}
}

// InternalPullDownInSleepMode switches the pull-down used while the pad is
// in sleep mode.
func (p OutputPin) InternalPullDownInSleepMode(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxMcuWPD)
	} else {
		p.line.mux.ClearBits(ioMuxMcuWPD)
	}
}

// ConnectPeripheral routes a peripheral output to this pad, preferring the
// pad's dedicated io-mux slot when the signal has one.
func (p OutputPin) ConnectPeripheral(sig OutputSignal) {
	p.line.connectOutput(sig, false, false, false, false)
}

// ConnectPeripheralWithOptions routes a peripheral output to this pad with
// matrix-only extras: inverting the signal, inverting the peripheral's
// output enable, taking the output enable from the GPIO enable register
// instead of the peripheral, or forcing the matrix even when a dedicated
// slot exists.
func (p OutputPin) ConnectPeripheralWithOptions(sig OutputSignal, invert, invertEnable, enableFromGPIO, forceViaMatrix bool) {
	p.line.connectOutput(sig, invert, invertEnable, enableFromGPIO, forceViaMatrix)
}

// DisconnectPeripheral detaches whatever peripheral output drives this pad.
func (p OutputPin) DisconnectPeripheral() {
	p.line.disconnectOutput()
}
