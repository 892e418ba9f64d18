package gpio

import "testing"

func TestListenEncodings(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(4)))

	// Maskable delivery on both cores, rising edge.
	in.Listen(RisingEdge)
	if got := io.regs.pin[4].Get(); got != 0xA080 {
		t.Errorf("pin reg mismatch got!=expected: %#x != %#x", got, 0xA080)
	}

	// Non-maskable delivery, falling edge.
	in.ListenWithOptions(FallingEdge, false, true, false)
	if got := io.regs.pin[4].Get(); got != 0x14100 {
		t.Errorf("pin reg mismatch got!=expected: %#x != %#x", got, 0x14100)
	}

	// Maskable delivery plus wake on a level event.
	in.ListenWithOptions(HighLevel, true, false, true)
	if got := io.regs.pin[4].Get(); got != 0xA680 {
		t.Errorf("pin reg mismatch got!=expected: %#x != %#x", got, 0xA680)
	}
}

func TestListenRewritesDeliveryFields(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(4)))

	in.Listen(HighLevel)
	in.Listen(RisingEdge)
	// No residue of the level configuration.
	if got := io.regs.pin[4].Get(); got != 0xA080 {
		t.Errorf("pin reg mismatch got!=expected: %#x != %#x", got, 0xA080)
	}
}

func TestListenWakeRequiresLevelEvent(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(4)))

	for _, ev := range []Event{RisingEdge, FallingEdge, AnyEdge} {
		expectPanic(t, badWakeEvent, func() {
			in.ListenWithOptions(ev, true, false, true)
		})
	}
	if got := io.regs.pin[4].Get(); got != 0 {
		t.Errorf("pin reg written before panic: %#x", got)
	}
}

func TestUnlistenPreservesWake(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(4)))

	in.ListenWithOptions(LowLevel, true, false, true)
	in.Unlisten()
	if got := io.regs.pin[4].Get(); got != pinWakeupEnable {
		t.Errorf("pin reg mismatch got!=expected: %#x != %#x", got, pinWakeupEnable)
	}
}

func TestClearInterrupt(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}, {num: 35, bank: 1}})

	Input(io.pin(4)).ClearInterrupt()
	if got := io.regs.bank0.intClear.Get(); got != 1<<4 {
		t.Errorf("bank0 clear mask mismatch got!=expected: %#x != %#x", got, 1<<4)
	}

	Input(io.pin(35)).ClearInterrupt()
	if got := io.regs.bank1.intClear.Get(); got != 1<<3 {
		t.Errorf("bank1 clear mask mismatch got!=expected: %#x != %#x", got, 1<<3)
	}
	if got := io.regs.bank0.intClear.Get(); got != 1<<4 {
		t.Errorf("bank0 touched for a bank1 pad: %#x", got)
	}
}

func TestInterruptStatusPerCore(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(io.pin(4))

	io.regs.bank0.status.intr.Set(1 << 4)
	if !in.IsInterruptSet(PrimaryCore) {
		t.Error("primary maskable status not seen")
	}
	if in.IsInterruptSet(SecondaryCore) {
		t.Error("secondary maskable status set, expected clear")
	}

	io.regs.bank0.status.appIntr.Set(1 << 4)
	if !in.IsInterruptSet(SecondaryCore) {
		t.Error("secondary maskable status not seen")
	}

	if in.IsNonMaskableInterruptSet(PrimaryCore) {
		t.Error("primary nmi status set, expected clear")
	}
	io.regs.bank0.status.nmi.Set(1 << 4)
	io.regs.bank0.status.appNmi.Set(1 << 4)
	if !in.IsNonMaskableInterruptSet(PrimaryCore) || !in.IsNonMaskableInterruptSet(SecondaryCore) {
		t.Error("nmi status not seen")
	}
}

func TestSingleCoreStatusAliasesRoles(t *testing.T) {
	chip := newTestChip()
	regs := newTestRegFile(40, 64, 1, false)
	lines := buildLines(regs, &chip, []pinEntry{{num: 4, bank: 0}})
	in := Input(Pin[InputOutput, Unconfigured]{line: &lines[0]})

	regs.bank0.status.intr.Set(1 << 4)
	if !in.IsInterruptSet(PrimaryCore) || !in.IsInterruptSet(SecondaryCore) {
		t.Error("both roles should read the shared status register")
	}
}

func TestStatusSecondBank(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 35, bank: 1}})
	in := Input(io.pin(35))

	io.regs.bank0.status.intr.Set(1 << 3)
	if in.IsInterruptSet(PrimaryCore) {
		t.Error("bank0 status read for a bank1 pad")
	}
	io.regs.bank1.status.intr.Set(1 << 3)
	if !in.IsInterruptSet(PrimaryCore) {
		t.Error("bank1 status not seen")
	}
}
