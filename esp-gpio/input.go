package gpio

// Event selects what a listening pad reports to the interrupt logic.
type Event uint8

const (
	RisingEdge  Event = 1
	FallingEdge Event = 2
	AnyEdge     Event = 3
	LowLevel    Event = 4
	HighLevel   Event = 5
)

// InputPin is the erased input view of a pad. It drops the type parameters
// so it can be stored in structs and passed across APIs; the proof that the
// pad can act as an input happened at Input. All input-side runtime
// operations, the interrupt controls among them, live here.
type InputPin struct {
	line *pinLine
}

// Input derives the input view of a pin. Only input-capable pads get one;
// for everything else this does not compile.
func Input[C InputCapable, M Mode](p Pin[C, M]) InputPin {
	return InputPin{line: p.line}
}

// Number returns the pad's GPIO number.
func (p InputPin) Number() uint8 { return p.line.num }

// IsHigh reports the level on the pad.
func (p InputPin) IsHigh() bool {
	return p.line.bank.in.Get()&p.line.mask() != 0
}

// EnableInput switches the pad's input path on or off.
func (p InputPin) EnableInput(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxFunIE)
	} else {
		p.line.mux.ClearBits(ioMuxFunIE)
	}
}

// EnableInputInSleepMode switches the input path used while the pad is in
// sleep mode.
func (p InputPin) EnableInputInSleepMode(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxMcuIE)
	} else {
		p.line.mux.ClearBits(ioMuxMcuIE)
	}
}

// Listen arms the pad's interrupt for the given event, delivered as a
// maskable interrupt.
func (p InputPin) Listen(event Event) {
	p.ListenWithOptions(event, true, false, false)
}

// ListenWithOptions arms the pad's interrupt for the given event with full
// control over delivery: maskable interrupt, non-maskable interrupt, and
// wake from light sleep. Waking is level-triggered hardware, so asking for
// it with an edge event panics before anything is written. The three
// delivery fields are rewritten as one unit; an earlier Listen does not
// shine through.
func (p InputPin) ListenWithOptions(event Event, intEnable, nmiEnable, wakeFromLightSleep bool) {
	if wakeFromLightSleep && event != LowLevel && event != HighLevel {
		panic(badWakeEvent)
	}
	v := uint32(p.line.chip.intrEnableBits(intEnable, nmiEnable))<<pinIntEnaPos |
		uint32(event)<<pinIntTypePos
	if wakeFromLightSleep {
		v |= pinWakeupEnable
	}
	const fields = pinIntEnaMask<<pinIntEnaPos | pinIntTypeMask<<pinIntTypePos | pinWakeupEnable
	r := &p.line.regs.pin[p.line.num]
	r.Set(r.Get()&^uint32(fields) | v)
}

// Unlisten disarms the pad's interrupt. The wake enable is left as
// configured.
func (p InputPin) Unlisten() {
	p.line.regs.pin[p.line.num].ClearBits(
		pinIntEnaMask<<pinIntEnaPos | pinIntTypeMask<<pinIntTypePos)
}

// ClearInterrupt acknowledges the pad's latched interrupt.
func (p InputPin) ClearInterrupt() {
	p.line.bank.intClear.Set(p.line.mask())
}

// IsInterruptSet reports whether the pad's interrupt is latched in the given
// core's maskable status register.
func (p InputPin) IsInterruptSet(core CoreRole) bool {
	return p.line.bank.status.maskable(core)&p.line.mask() != 0
}

// IsNonMaskableInterruptSet reports whether the pad's interrupt is latched
// in the given core's non-maskable status register.
func (p InputPin) IsNonMaskableInterruptSet(core CoreRole) bool {
	return p.line.bank.status.nonMaskable(core)&p.line.mask() != 0
}

// ConnectToPeripheral routes a peripheral input to this pad, preferring the
// pad's dedicated io-mux slot when the signal has one.
func (p InputPin) ConnectToPeripheral(sig InputSignal) {
	p.line.connectInput(sig, false, false)
}

// ConnectToPeripheralWithOptions routes a peripheral input to this pad with
// inversion, or forced through the matrix even when a dedicated slot
// exists.
func (p InputPin) ConnectToPeripheralWithOptions(sig InputSignal, invert, forceViaMatrix bool) {
	p.line.connectInput(sig, invert, forceViaMatrix)
}

// DisconnectFromPeripheral detaches a peripheral input from this pad.
func (p InputPin) DisconnectFromPeripheral(sig InputSignal) {
	p.line.disconnectInput(sig)
}
