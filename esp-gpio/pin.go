package gpio

import "github.com/tinygo-org/espio/esp-gpio/hwreg"

// Capability classes. Every bonded pad belongs to exactly one class, fixed by
// the chip's wiring table. The class is part of the pin handle's type, so an
// operation a class does not support does not compile; there is no runtime
// "unsupported pin" error anywhere in this package.
type (
	// InputOutput pads have an input path and an output driver.
	InputOutput struct{}

	// InputOnly pads have no output driver and no internal pull resistors.
	InputOnly struct{}

	// InputOutputAnalog pads are InputOutput pads with an analog path.
	InputOutputAnalog struct{}

	// InputOnlyAnalog pads are InputOnly pads with an analog path.
	InputOnlyAnalog struct{}
)

// Capability is the set of all capability classes.
type Capability interface {
	InputOutput | InputOnly | InputOutputAnalog | InputOnlyAnalog
}

// InputCapable pads can read levels, route input signals and raise
// interrupts. On this family that is every class.
type InputCapable interface {
	InputOutput | InputOnly | InputOutputAnalog | InputOnlyAnalog
}

// OutputCapable pads can drive levels and route output signals.
type OutputCapable interface {
	InputOutput | InputOutputAnalog
}

// AnalogCapable pads can hand the pad over to the analog domain.
type AnalogCapable interface {
	InputOutputAnalog | InputOnlyAnalog
}

// Pin modes. The current mode is part of the pin handle's type: there is no
// mode field to query, the type is the record. A transition reprograms the
// pad completely and returns a handle in the new mode.
type (
	// Unconfigured is the state of a pad as handed out by the collection;
	// nothing has been programmed yet.
	Unconfigured struct{}

	// FloatingInput is a high-impedance input with both pulls off.
	FloatingInput struct{}

	// PullUpInput is an input with the internal pull-up on.
	PullUpInput struct{}

	// PullDownInput is an input with the internal pull-down on.
	PullDownInput struct{}

	// PushPullOutput drives both levels.
	PushPullOutput struct{}

	// OpenDrainOutput drives low and releases the line for high. The input
	// path stays enabled so the wire level can be read back.
	OpenDrainOutput struct{}

	// Alternate1 routes the pad straight to its first profiled io-mux
	// function, bypassing the matrix.
	Alternate1 struct{}

	// Alternate2 routes the pad straight to its second profiled io-mux
	// function, bypassing the matrix.
	Alternate2 struct{}

	// Analog detaches the pad from the digital domain.
	Analog struct{}

	// RTCInput is an input owned by the low-power subsystem.
	RTCInput struct{}

	// RTCOutput is an output owned by the low-power subsystem.
	RTCOutput struct{}
)

// Mode is the set of pin modes.
type Mode interface {
	Unconfigured | FloatingInput | PullUpInput | PullDownInput |
		PushPullOutput | OpenDrainOutput | Alternate1 | Alternate2 |
		Analog | RTCInput | RTCOutput
}

// pinLine is the per-pad state all typed handles of one pad point at.
type pinLine struct {
	num  uint8
	bank *bankRegs
	chip *chipProfile
	regs *regFile
	mux  *hwreg.R32 // this pad's io-mux register

	// io-mux alternate function tables, indexed by function slot. Slots
	// without a peripheral hold the no-signal sentinel.
	afIn  [numAltFuncs]InputSignal
	afOut [numAltFuncs]OutputSignal
}

func (l *pinLine) mask() uint32 { return 1 << (l.num % 32) }

func (l *pinLine) setAltFunc(af AlternateFunction) {
	l.mux.ReplaceBits(uint32(af), ioMuxMcuSelMask, ioMuxMcuSelPos)
}

// initInput programs the pad as an input: output driver off, output selector
// parked on the plain GPIO id, open-drain off, pulls per the variant, io-mux
// routed to the GPIO function with the input path enabled and the sleep
// override off. Interrupt fields are a separate sub-state and are not
// touched.
func (l *pinLine) initInput(pullDown, pullUp bool) {
	l.bank.outEnClear.Set(l.mask())
	l.regs.funcOutSel[l.num].Set(uint32(l.chip.gpioOutSignal))
	l.regs.pin[l.num].ClearBits(pinPadDriver)
	if l.chip.pullFixup != nil {
		l.chip.pullFixup(l, pullUp, pullDown)
	}
	v := uint32(l.chip.gpioMuxFunc)<<ioMuxMcuSelPos | ioMuxFunIE
	if pullDown {
		v |= ioMuxFunWPD
	}
	if pullUp {
		v |= ioMuxFunWPU
	}
	l.mux.Set(v)
}

// initOutput programs the pad as an output on the given io-mux function:
// driver on, open-drain per the variant (with the input path following it so
// an open-drain wire can be read back), output selector parked on the plain
// GPIO id, pulls off, drive strength at the 20mA default, sleep override
// off.
func (l *pinLine) initOutput(af AlternateFunction, openDrain bool) {
	l.bank.outEnSet.Set(l.mask())
	if openDrain {
		l.regs.pin[l.num].SetBits(pinPadDriver)
	} else {
		l.regs.pin[l.num].ClearBits(pinPadDriver)
	}
	l.regs.funcOutSel[l.num].Set(uint32(l.chip.gpioOutSignal))
	v := uint32(af)<<ioMuxMcuSelPos | uint32(Drive20mA)<<ioMuxFunDrvPos
	if openDrain {
		v |= ioMuxFunIE
	}
	l.mux.Set(v)
}

// Pin is a typed handle to one pad. C is the pad's capability class and M its
// configured mode; both exist only in the type. A transition consumes the
// handle and returns one in the new mode. Handles are plain values: the
// collection yields each pad exactly once, and holding on to a stale copy
// after a transition is a caller bug the type system cannot see.
type Pin[C Capability, M Mode] struct {
	line *pinLine
}

// Number returns the pad's GPIO number.
func (p Pin[C, M]) Number() uint8 { return p.line.num }

// EnableSleepMode selects the pad's sleep configuration (the mcu_* fields)
// in place of the run configuration.
func (p Pin[C, M]) EnableSleepMode(on bool) {
	if on {
		p.line.mux.SetBits(ioMuxSlpSel)
	} else {
		p.line.mux.ClearBits(ioMuxSlpSel)
	}
}

// EnableHold freezes the pad in its current state across resets and deep
// sleep.
//
// Not implemented yet; panics.
func (p Pin[C, M]) EnableHold(on bool) {
	panic(holdUnimplemented)
}

// IntoFloatingInput reconfigures the pad as a high-impedance input.
func IntoFloatingInput[C InputCapable, M Mode](p Pin[C, M]) Pin[C, FloatingInput] {
	p.line.initInput(false, false)
	return Pin[C, FloatingInput]{line: p.line}
}

// IntoPullUpInput reconfigures the pad as an input with the pull-up on.
func IntoPullUpInput[C InputCapable, M Mode](p Pin[C, M]) Pin[C, PullUpInput] {
	p.line.initInput(false, true)
	return Pin[C, PullUpInput]{line: p.line}
}

// IntoPullDownInput reconfigures the pad as an input with the pull-down on.
func IntoPullDownInput[C InputCapable, M Mode](p Pin[C, M]) Pin[C, PullDownInput] {
	p.line.initInput(true, false)
	return Pin[C, PullDownInput]{line: p.line}
}

// IntoPushPullOutput reconfigures the pad as an output driving both levels.
func IntoPushPullOutput[C OutputCapable, M Mode](p Pin[C, M]) Pin[C, PushPullOutput] {
	p.line.initOutput(p.line.chip.gpioMuxFunc, false)
	return Pin[C, PushPullOutput]{line: p.line}
}

// IntoOpenDrainOutput reconfigures the pad as an open-drain output.
func IntoOpenDrainOutput[C OutputCapable, M Mode](p Pin[C, M]) Pin[C, OpenDrainOutput] {
	p.line.initOutput(p.line.chip.gpioMuxFunc, true)
	return Pin[C, OpenDrainOutput]{line: p.line}
}

// IntoAlternate1 hands the pad to its first profiled io-mux alternate
// function. The peripheral signal travels the dedicated path, not the
// matrix.
func IntoAlternate1[C OutputCapable, M Mode](p Pin[C, M]) Pin[C, Alternate1] {
	p.line.initOutput(p.line.chip.alternate1, false)
	return Pin[C, Alternate1]{line: p.line}
}

// IntoAlternate2 hands the pad to its second profiled io-mux alternate
// function.
func IntoAlternate2[C OutputCapable, M Mode](p Pin[C, M]) Pin[C, Alternate2] {
	p.line.initOutput(p.line.chip.alternate2, false)
	return Pin[C, Alternate2]{line: p.line}
}

// IntoAnalog detaches the pad from the digital domain through the chip's
// analog handover sequence.
func IntoAnalog[C AnalogCapable, M Mode](p Pin[C, M]) Pin[C, Analog] {
	p.line.chip.analogEntry(p.line)
	return Pin[C, Analog]{line: p.line}
}
