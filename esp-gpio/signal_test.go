package gpio

import "testing"

func TestConnectInputDedicatedSlot(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, in: []inputAF{{1, 7}}}})
	in := Input(IntoFloatingInput(io.pin(5)))

	in.ConnectToPeripheral(7)

	// Io-mux switched to slot 1, matrix entry untouched.
	if got := io.regs.mux[5].Get(); got != 0x1200 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x1200)
	}
	if got := io.regs.funcInSel[7].Get(); got != 0 {
		t.Errorf("matrix entry written on dedicated path: %#x", got)
	}
}

func TestConnectInputViaMatrix(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(5)))

	in.ConnectToPeripheral(9)

	if got := io.regs.funcInSel[9].Get(); got != 0x85 {
		t.Errorf("matrix entry mismatch got!=expected: %#x != %#x", got, 0x85)
	}
	if got := io.regs.mux[5].Get(); got != 0x2200 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2200)
	}
}

func TestConnectInputInvertForcesMatrix(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, in: []inputAF{{1, 7}}}})
	in := Input(IntoFloatingInput(io.pin(5)))

	// The io-mux path cannot invert, so the dedicated slot is passed over.
	in.ConnectToPeripheralWithOptions(7, true, false)

	if got := io.regs.funcInSel[7].Get(); got != 0xC5 {
		t.Errorf("matrix entry mismatch got!=expected: %#x != %#x", got, 0xC5)
	}
	if got := io.regs.mux[5].Get(); got != 0x2200 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2200)
	}
}

func TestConnectInputForcedViaMatrix(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, in: []inputAF{{1, 7}}}})
	in := Input(IntoFloatingInput(io.pin(5)))

	in.ConnectToPeripheralWithOptions(7, false, true)

	if got := io.regs.funcInSel[7].Get(); got != 0x85 {
		t.Errorf("matrix entry mismatch got!=expected: %#x != %#x", got, 0x85)
	}
}

func TestConnectInputDedicatedOnlySignal(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, in: []inputAF{{0, 300}}}})
	in := Input(IntoFloatingInput(io.pin(5)))

	// Id 300 is outside the matrix range but has a dedicated slot.
	in.ConnectToPeripheral(300)

	if got := io.regs.mux[5].Get(); got != 0x0200 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x0200)
	}
}

func TestConnectInputUnroutablePanics(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	in := Input(IntoFloatingInput(io.pin(5)))

	expectPanic(t, badInputSignal, func() {
		in.ConnectToPeripheral(300)
	})
	// Panic happened before any register write.
	if got := io.regs.mux[5].Get(); got != 0x2200 {
		t.Errorf("mux written before panic: %#x", got)
	}
}

func TestDisconnectInput(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, in: []inputAF{{1, 7}}}})
	in := Input(IntoFloatingInput(io.pin(5)))

	in.ConnectToPeripheralWithOptions(9, true, false)
	in.DisconnectFromPeripheral(9)
	if got := io.regs.funcInSel[9].Get(); got != 0x05 {
		t.Errorf("matrix entry still routed got!=expected: %#x != %#x", got, 0x05)
	}

	in.ConnectToPeripheral(7)
	in.DisconnectFromPeripheral(7)
	if got := io.regs.mux[5].Get(); got != 0x2200 {
		t.Errorf("mux not restored got!=expected: %#x != %#x", got, 0x2200)
	}
}

func TestConnectOutputDedicatedSlot(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, out: []outputAF{{1, 7}}}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	out.ConnectPeripheral(7)

	if got := io.regs.mux[5].Get(); got != 0x1800 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x1800)
	}
	if got := io.regs.funcOutSel[5].Get(); got != 64 {
		t.Errorf("selector rewritten on dedicated path: %#x", got)
	}
}

func TestConnectOutputViaMatrix(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	out.ConnectPeripheral(20)

	if got := io.regs.funcOutSel[5].Get(); got != 20 {
		t.Errorf("selector mismatch got!=expected: %#x != %#x", got, 20)
	}
	if got := io.regs.mux[5].Get(); got != 0x2800 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2800)
	}
}

func TestConnectOutputOptions(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	out.ConnectPeripheralWithOptions(20, true, true, true, false)

	// id | out_inv | oen_inv | oen_sel
	if got := io.regs.funcOutSel[5].Get(); got != 0xE14 {
		t.Errorf("selector mismatch got!=expected: %#x != %#x", got, 0xE14)
	}
}

func TestConnectOutputOptionForcesMatrix(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0, out: []outputAF{{1, 7}}}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	out.ConnectPeripheralWithOptions(7, true, false, false, false)

	if got := io.regs.funcOutSel[5].Get(); got != 0x207 {
		t.Errorf("selector mismatch got!=expected: %#x != %#x", got, 0x207)
	}
	if got := io.regs.mux[5].Get(); got != 0x2800 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2800)
	}
}

func TestConnectOutputClipsUnroutable(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	// No dedicated slot and beyond the matrix range: the pad falls back to
	// its plain GPIO output instead of panicking.
	out.ConnectPeripheral(500)

	if got := io.regs.funcOutSel[5].Get(); got != 64 {
		t.Errorf("selector mismatch got!=expected: %#x != %#x", got, 64)
	}
}

func TestDisconnectOutputResetsSelector(t *testing.T) {
	chip := newTestChip()
	io := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	out := Output(IntoPushPullOutput(io.pin(5)))

	out.ConnectPeripheralWithOptions(20, true, true, true, false)
	out.DisconnectPeripheral()

	if got := io.regs.funcOutSel[5].Get(); got != 64 {
		t.Errorf("selector mismatch got!=expected: %#x != %#x", got, 64)
	}
	if got := io.regs.mux[5].Get(); got != 0x2800 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2800)
	}
}

func TestConstantTies(t *testing.T) {
	chip := newTestChip()
	tio := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	core := &ioCore{regs: tio.regs, chip: tio.chip}

	core.ConnectLowToPeripheral(9)
	if got := tio.regs.funcInSel[9].Get(); got != 0xB0 {
		t.Errorf("zero tie mismatch got!=expected: %#x != %#x", got, 0xB0)
	}
	core.ConnectHighToPeripheral(10)
	if got := tio.regs.funcInSel[10].Get(); got != 0xB8 {
		t.Errorf("one tie mismatch got!=expected: %#x != %#x", got, 0xB8)
	}

	expectPanic(t, badInputSignal, func() {
		core.ConnectLowToPeripheral(300)
	})
}

func TestRoutingReadback(t *testing.T) {
	chip := newTestChip()
	tio := newTestIO(&chip, []pinEntry{{num: 5, bank: 0}})
	core := &ioCore{regs: tio.regs, chip: tio.chip}
	p := tio.pin(5)

	Input(p).ConnectToPeripheralWithOptions(9, true, false)
	src, routed, inverted := core.inputRouting(9)
	if src != 5 || !routed || !inverted {
		t.Errorf("input routing mismatch: src=%d routed=%t inverted=%t", src, routed, inverted)
	}

	Output(p).ConnectPeripheralWithOptions(20, true, true, true, false)
	sig, inv, enInv, enGPIO := core.outputRouting(5)
	if sig != 20 || !inv || !enInv || !enGPIO {
		t.Errorf("output routing mismatch: sig=%d inv=%t enInv=%t enGPIO=%t", sig, inv, enInv, enGPIO)
	}
}

func TestDedicatedSlotMatchingGPIOFunction(t *testing.T) {
	chip := newTestChip()
	// Slot 2 carries the signal and function 2 is also the GPIO function.
	// The binding must still take the dedicated path: the observable is
	// that the matrix entry stays untouched.
	io := newTestIO(&chip, []pinEntry{{num: 6, bank: 0, in: []inputAF{{2, 11}}}})
	in := Input(IntoFloatingInput(io.pin(6)))

	in.ConnectToPeripheral(11)

	if got := io.regs.funcInSel[11].Get(); got != 0 {
		t.Errorf("matrix entry written on dedicated path: %#x", got)
	}
	if got := io.regs.mux[6].Get(); got != 0x2200 {
		t.Errorf("mux mismatch got!=expected: %#x != %#x", got, 0x2200)
	}
}
