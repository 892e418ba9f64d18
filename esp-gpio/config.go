package gpio

// chipProfile captures everything that differs between family members:
// which io-mux function is the plain GPIO one, where the matrix id ranges
// end, how the per-pad matrix entries are laid out, and the hooks for quirks
// that only some chips have. The shared code never branches on a chip name,
// it only reads the profile.
type chipProfile struct {
	// Io-mux function carrying the plain GPIO path, and the matrix id that
	// selects the GPIO output register as a pad's source.
	gpioMuxFunc   AlternateFunction
	gpioOutSignal OutputSignal

	// Highest signal ids the matrix can route. Ids above these are
	// dedicated io-mux signals.
	inputSignalMax  uint16
	outputSignalMax uint16

	// Matrix entries that tie a peripheral input to constant zero or one.
	zeroInput uint8
	oneInput  uint8

	// Per-core enable bits of the pad interrupt enable field.
	intrMask uint8
	nmiMask  uint8

	// Field layout of the matrix selector entries.
	matrixInSelMask  uint32
	matrixInInv      uint32
	matrixInRoute    uint32
	matrixOutSelMask uint32
	matrixOutInv     uint32
	matrixOutEnSel   uint32
	matrixOutEnInv   uint32

	// Io-mux functions exposed as the two alternate modes.
	alternate1 AlternateFunction
	alternate2 AlternateFunction

	// pullFixup, when set, mirrors the pad's pull configuration into the
	// low-power domain after every pull change.
	pullFixup func(l *pinLine, pullUp, pullDown bool)

	// analogEntry hands a pad over to the analog domain.
	analogEntry func(l *pinLine)
}

func (c *chipProfile) intrEnableBits(intEnable, nmiEnable bool) uint8 {
	var b uint8
	if intEnable {
		b |= c.intrMask
	}
	if nmiEnable {
		b |= c.nmiMask
	}
	return b
}

// inputAF binds an io-mux function slot to the peripheral input it carries
// on one pad.
type inputAF struct {
	slot uint8
	sig  InputSignal
}

// outputAF binds an io-mux function slot to the peripheral output it
// carries on one pad.
type outputAF struct {
	slot uint8
	sig  OutputSignal
}

// pinEntry describes one bonded pad in a chip's wiring table.
type pinEntry struct {
	num  uint8
	bank uint8
	in   []inputAF
	out  []outputAF
}

// buildLines turns a chip's wiring table into live pad state. The table is
// authored by hand, so it is validated hard: numbers must be unique and
// covered by every register file slice, the bank column must agree with the
// number, slots must exist, and a second-bank pad needs a second bank.
// Violations are bugs in the chip file, not runtime conditions, and panic.
func buildLines(regs *regFile, chip *chipProfile, entries []pinEntry) []pinLine {
	if len(regs.funcInSel) <= int(chip.inputSignalMax) {
		panic(badWiringTable)
	}
	lines := make([]pinLine, len(entries))
	var seen uint64
	for i, e := range entries {
		if e.bank != e.num/32 {
			panic(badWiringTable)
		}
		if e.bank == 1 && regs.bank1 == nil {
			panic(badWiringTable)
		}
		if seen&(1<<e.num) != 0 {
			panic(badWiringTable)
		}
		seen |= 1 << e.num
		if int(e.num) >= len(regs.mux) || int(e.num) >= len(regs.pin) ||
			int(e.num) >= len(regs.funcOutSel) || regs.mux[e.num] == nil {
			panic(badWiringTable)
		}
		l := &lines[i]
		l.num = e.num
		l.bank = regs.bankFor(e.bank)
		l.chip = chip
		l.regs = regs
		l.mux = regs.mux[e.num]
		for s := range l.afIn {
			l.afIn[s] = noInputSignal
		}
		for s := range l.afOut {
			l.afOut[s] = noOutputSignal
		}
		for _, a := range e.in {
			if a.slot >= numAltFuncs {
				panic(badWiringTable)
			}
			l.afIn[a.slot] = a.sig
		}
		for _, a := range e.out {
			if a.slot >= numAltFuncs {
				panic(badWiringTable)
			}
			l.afOut[a.slot] = a.sig
		}
	}
	return lines
}

// lineByNum finds a pad in built line state. Chip files use it to hand each
// line to its typed collection field; asking for a number the table does not
// have is the same authoring bug buildLines guards against.
func lineByNum(lines []pinLine, num uint8) *pinLine {
	for i := range lines {
		if lines[i].num == num {
			return &lines[i]
		}
	}
	panic(badWiringTable)
}
