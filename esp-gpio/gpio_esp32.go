//go:build esp32

package gpio

import "github.com/tinygo-org/espio/esp-gpio/hwreg"

// ESP32 binding. Register offsets are transcribed from the chip's GPIO,
// IO MUX and RTC IO blocks.
const (
	esp32GPIOBase  uintptr = 0x3FF44000
	esp32IOMuxBase uintptr = 0x3FF49000
	esp32RTCIOBase uintptr = 0x3FF48400
)

// Io-mux pad register offsets, indexed by GPIO number. The block is not
// laid out in pin order. A zero marks a number with no pad register.
var esp32MuxOffsets = [40]uint16{
	0: 0x44, 1: 0x88, 2: 0x40, 3: 0x84, 4: 0x48, 5: 0x6C, 6: 0x60,
	7: 0x64, 8: 0x68, 9: 0x54, 10: 0x58, 11: 0x5C, 12: 0x34, 13: 0x38,
	14: 0x30, 15: 0x3C, 16: 0x4C, 17: 0x50, 18: 0x70, 19: 0x74,
	20: 0x78, 21: 0x7C, 22: 0x80, 23: 0x8C, 24: 0x90, 25: 0x24,
	26: 0x28, 27: 0x2C, 32: 0x1C, 33: 0x20, 34: 0x14, 35: 0x18,
	36: 0x04, 37: 0x08, 38: 0x0C, 39: 0x10,
}

func esp32MuxRegs() []*hwreg.R32 {
	m := make([]*hwreg.R32, len(esp32MuxOffsets))
	for n, off := range esp32MuxOffsets {
		if off != 0 {
			m[n] = regAt(esp32IOMuxBase + uintptr(off))
		}
	}
	return m
}

func newESP32Regs() *regFile {
	g := esp32GPIOBase
	return &regFile{
		bank0: bankRegs{
			out:        regAt(g + 0x04),
			outSet:     regAt(g + 0x08),
			outClear:   regAt(g + 0x0C),
			outEnSet:   regAt(g + 0x24),
			outEnClear: regAt(g + 0x28),
			in:         regAt(g + 0x3C),
			intClear:   regAt(g + 0x4C),
			status: dualCoreStatus(
				regAt(g+0x68), regAt(g+0x6C),
				regAt(g+0x60), regAt(g+0x64)),
		},
		bank1: &bankRegs{
			out:        regAt(g + 0x10),
			outSet:     regAt(g + 0x14),
			outClear:   regAt(g + 0x18),
			outEnSet:   regAt(g + 0x30),
			outEnClear: regAt(g + 0x34),
			in:         regAt(g + 0x40),
			intClear:   regAt(g + 0x58),
			status: dualCoreStatus(
				regAt(g+0x7C), regAt(g+0x80),
				regAt(g+0x74), regAt(g+0x78)),
		},
		pin:        regSlice(g+0x88, 40),
		funcInSel:  regSlice(g+0x130, 256),
		funcOutSel: regSlice(g+0x530, 40),
		mux:        esp32MuxRegs(),
	}
}

// esp32RTCPad locates one pad's configuration inside the RTC IO block. The
// per-pad fields sit at different positions in different registers there,
// so each row carries its own masks. Input-only sensor pads have no
// low-power pulls; their rue and rde are zero.
type esp32RTCPad struct {
	num    uint8
	index  uint8 // bit in the RTC enable registers
	reg    *hwreg.R32
	mux    uint32 // route the pad to the RTC mux
	funPos uint8  // 2-bit RTC function select
	funIE  uint32 // RTC input enable
	rue    uint32 // RTC pull-up enable
	rde    uint32 // RTC pull-down enable
}

var esp32RTCEnableClear = regAt(esp32RTCIOBase + 0x14)

// RTC GPIO PIN registers, one word per RTC channel. The pad_driver bit sits
// at the same position as in the digital pin registers.
var esp32RTCPinRegs = regSlice(esp32RTCIOBase+0x28, 18)

const esp32RTCPinPadDriver = 1 << 2

var esp32RTCPads = [...]esp32RTCPad{
	{num: 36, index: 0, reg: regAt(esp32RTCIOBase + 0x7C), mux: 1 << 27, funPos: 22, funIE: 1 << 13},
	{num: 37, index: 1, reg: regAt(esp32RTCIOBase + 0x7C), mux: 1 << 26, funPos: 20, funIE: 1 << 10},
	{num: 38, index: 2, reg: regAt(esp32RTCIOBase + 0x7C), mux: 1 << 25, funPos: 18, funIE: 1 << 7},
	{num: 39, index: 3, reg: regAt(esp32RTCIOBase + 0x7C), mux: 1 << 24, funPos: 16, funIE: 1 << 4},
	{num: 34, index: 4, reg: regAt(esp32RTCIOBase + 0x80), mux: 1 << 29, funPos: 26, funIE: 1 << 19},
	{num: 35, index: 5, reg: regAt(esp32RTCIOBase + 0x80), mux: 1 << 28, funPos: 24, funIE: 1 << 18},
	{num: 25, index: 6, reg: regAt(esp32RTCIOBase + 0x84), mux: 1 << 17, funPos: 15, funIE: 1 << 11, rue: 1 << 27, rde: 1 << 28},
	{num: 26, index: 7, reg: regAt(esp32RTCIOBase + 0x88), mux: 1 << 17, funPos: 15, funIE: 1 << 11, rue: 1 << 27, rde: 1 << 28},
	{num: 33, index: 8, reg: regAt(esp32RTCIOBase + 0x8C), mux: 1 << 25, funPos: 23, funIE: 1 << 19, rue: 1 << 26, rde: 1 << 27},
	{num: 32, index: 9, reg: regAt(esp32RTCIOBase + 0x8C), mux: 1 << 14, funPos: 12, funIE: 1 << 8, rue: 1 << 15, rde: 1 << 16},
	{num: 4, index: 10, reg: regAt(esp32RTCIOBase + 0x94), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 0, index: 11, reg: regAt(esp32RTCIOBase + 0x98), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 2, index: 12, reg: regAt(esp32RTCIOBase + 0x9C), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 15, index: 13, reg: regAt(esp32RTCIOBase + 0xA0), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 13, index: 14, reg: regAt(esp32RTCIOBase + 0xA4), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 12, index: 15, reg: regAt(esp32RTCIOBase + 0xA8), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 14, index: 16, reg: regAt(esp32RTCIOBase + 0xAC), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
	{num: 27, index: 17, reg: regAt(esp32RTCIOBase + 0xB0), mux: 1 << 19, funPos: 17, funIE: 1 << 13, rue: 1 << 27, rde: 1 << 28},
}

func esp32RTCPadByNum(num uint8) *esp32RTCPad {
	for i := range esp32RTCPads {
		if esp32RTCPads[i].num == num {
			return &esp32RTCPads[i]
		}
	}
	return nil
}

// esp32PullFixup mirrors a pad's pull configuration into the RTC domain.
// On this chip the io-mux pull controls of pads that double as RTC pads
// have no effect (chip erratum 3.6); the RTC pull registers are the ones
// actually wired to the resistors.
func esp32PullFixup(l *pinLine, pullUp, pullDown bool) {
	p := esp32RTCPadByNum(l.num)
	if p == nil || p.rue == 0 {
		return
	}
	if pullUp {
		p.reg.SetBits(p.rue)
	} else {
		p.reg.ClearBits(p.rue)
	}
	if pullDown {
		p.reg.SetBits(p.rde)
	} else {
		p.reg.ClearBits(p.rde)
	}
}

// esp32AnalogEntry hands a pad over to the analog domain through the RTC
// block.
func esp32AnalogEntry(l *pinLine) {
	p := esp32RTCPadByNum(l.num)
	if p == nil {
		panic(badWiringTable)
	}
	p.enterAnalog(esp32RTCEnableClear, esp32RTCPinRegs)
}

// enterAnalog is the handover sequence: RTC output off, open drain off, pad
// routed to the RTC mux, RTC function 0, digital input and pulls off.
func (p *esp32RTCPad) enterAnalog(enableClear *hwreg.R32, pinRegs []hwreg.R32) {
	enableClear.Set(1 << p.index)
	pinRegs[p.index].ClearBits(esp32RTCPinPadDriver)
	p.reg.SetBits(p.mux)
	p.reg.ReplaceBits(0, 0x3, p.funPos)
	p.reg.ClearBits(p.funIE)
	if p.rue != 0 {
		p.reg.ClearBits(p.rue | p.rde)
	}
}

var esp32Chip = chipProfile{
	gpioMuxFunc:      Function2,
	gpioOutSignal:    GPIOOut,
	inputSignalMax:   255,
	outputSignalMax:  256,
	zeroInput:        0x30,
	oneInput:         0x38,
	intrMask:         0b0101,
	nmiMask:          0b1010,
	matrixInSelMask:  0x3F,
	matrixInInv:      1 << 6,
	matrixInRoute:    1 << 7,
	matrixOutSelMask: 0x1FF,
	matrixOutInv:     1 << 9,
	matrixOutEnSel:   1 << 10,
	matrixOutEnInv:   1 << 11,
	alternate1:       Function1,
	alternate2:       Function3,
	pullFixup:        esp32PullFixup,
	analogEntry:      esp32AnalogEntry,
}

// esp32PinTable lists the bonded pads and their dedicated io-mux function
// slots. Slots not listed carry no peripheral.
var esp32PinTable = []pinEntry{
	{num: 0, bank: 0, out: []outputAF{{1, CLKOut1}}},
	{num: 1, bank: 0, out: []outputAF{{0, U0TXDOut}, {1, CLKOut3}}},
	{num: 2, bank: 0, in: []inputAF{{1, HSPIWPIn}}, out: []outputAF{{1, HSPIWPOut}}},
	{num: 3, bank: 0, in: []inputAF{{0, U0RXDIn}}, out: []outputAF{{1, CLKOut2}}},
	{num: 4, bank: 0, in: []inputAF{{1, HSPIHDIn}}, out: []outputAF{{1, HSPIHDOut}}},
	{num: 5, bank: 0, in: []inputAF{{1, VSPICS0In}}, out: []outputAF{{1, VSPICS0Out}}},
	{num: 6, bank: 0, in: []inputAF{{1, SPICLKIn}, {4, U1CTSIn}}, out: []outputAF{{1, SPICLKOut}}},
	{num: 7, bank: 0, in: []inputAF{{1, SPIQIn}}, out: []outputAF{{1, SPIQOut}, {4, U1TXDOut}}},
	{num: 8, bank: 0, in: []inputAF{{1, SPIDIn}, {4, U1RXDIn}}, out: []outputAF{{1, SPIDOut}}},
	{num: 9, bank: 0, in: []inputAF{{1, SPIHDIn}}, out: []outputAF{{1, SPIHDOut}}},
	{num: 10, bank: 0, in: []inputAF{{1, SPIWPIn}}, out: []outputAF{{1, SPIWPOut}}},
	{num: 11, bank: 0, in: []inputAF{{1, SPICS0In}}, out: []outputAF{{1, SPICS0Out}, {4, U1RTSOut}}},
	{num: 12, bank: 0, in: []inputAF{{0, MTDIIn}, {1, HSPIQIn}}, out: []outputAF{{1, HSPIQOut}}},
	{num: 13, bank: 0, in: []inputAF{{0, MTCKIn}, {1, HSPIDIn}}, out: []outputAF{{1, HSPIDOut}}},
	{num: 14, bank: 0, in: []inputAF{{0, MTMSIn}, {1, HSPICLKIn}}, out: []outputAF{{1, HSPICLKOut}}},
	{num: 15, bank: 0, in: []inputAF{{1, HSPICS0In}}, out: []outputAF{{0, MTDOOut}, {1, HSPICS0Out}}},
	{num: 16, bank: 0, in: []inputAF{{4, U2RXDIn}}},
	{num: 17, bank: 0, out: []outputAF{{4, U2TXDOut}}},
	{num: 18, bank: 0, in: []inputAF{{1, VSPICLKIn}}, out: []outputAF{{1, VSPICLKOut}}},
	{num: 19, bank: 0, in: []inputAF{{1, VSPIQIn}, {3, U0CTSIn}}, out: []outputAF{{1, VSPIQOut}}},
	{num: 21, bank: 0, in: []inputAF{{1, VSPIHDIn}}, out: []outputAF{{1, VSPIHDOut}}},
	{num: 22, bank: 0, in: []inputAF{{1, VSPIWPIn}}, out: []outputAF{{1, VSPIWPOut}, {3, U0RTSOut}}},
	{num: 23, bank: 0, in: []inputAF{{1, VSPIDIn}}, out: []outputAF{{1, VSPIDOut}}},
	{num: 25, bank: 0},
	{num: 26, bank: 0},
	{num: 27, bank: 0},
	{num: 32, bank: 1},
	{num: 33, bank: 1},
	{num: 34, bank: 1},
	{num: 35, bank: 1},
	{num: 36, bank: 1},
	{num: 37, bank: 1},
	{num: 38, bank: 1},
	{num: 39, bank: 1},
}

// Pins is the ESP32's pad collection. The field types encode what each pad
// can do: most pads drive and read, some also reach the analog domain, and
// GPIO34 through GPIO39 have no output driver at all.
type Pins struct {
	GPIO0  Pin[InputOutputAnalog, Unconfigured]
	GPIO1  Pin[InputOutput, Unconfigured]
	GPIO2  Pin[InputOutputAnalog, Unconfigured]
	GPIO3  Pin[InputOutput, Unconfigured]
	GPIO4  Pin[InputOutputAnalog, Unconfigured]
	GPIO5  Pin[InputOutput, Unconfigured]
	GPIO6  Pin[InputOutput, Unconfigured]
	GPIO7  Pin[InputOutput, Unconfigured]
	GPIO8  Pin[InputOutput, Unconfigured]
	GPIO9  Pin[InputOutput, Unconfigured]
	GPIO10 Pin[InputOutput, Unconfigured]
	GPIO11 Pin[InputOutput, Unconfigured]
	GPIO12 Pin[InputOutputAnalog, Unconfigured]
	GPIO13 Pin[InputOutputAnalog, Unconfigured]
	GPIO14 Pin[InputOutputAnalog, Unconfigured]
	GPIO15 Pin[InputOutputAnalog, Unconfigured]
	GPIO16 Pin[InputOutput, Unconfigured]
	GPIO17 Pin[InputOutput, Unconfigured]
	GPIO18 Pin[InputOutput, Unconfigured]
	GPIO19 Pin[InputOutput, Unconfigured]
	GPIO21 Pin[InputOutput, Unconfigured]
	GPIO22 Pin[InputOutput, Unconfigured]
	GPIO23 Pin[InputOutput, Unconfigured]
	GPIO25 Pin[InputOutputAnalog, Unconfigured]
	GPIO26 Pin[InputOutputAnalog, Unconfigured]
	GPIO27 Pin[InputOutputAnalog, Unconfigured]
	GPIO32 Pin[InputOutputAnalog, Unconfigured]
	GPIO33 Pin[InputOutputAnalog, Unconfigured]
	GPIO34 Pin[InputOnlyAnalog, Unconfigured]
	GPIO35 Pin[InputOnlyAnalog, Unconfigured]
	GPIO36 Pin[InputOnlyAnalog, Unconfigured]
	GPIO37 Pin[InputOnlyAnalog, Unconfigured]
	GPIO38 Pin[InputOnlyAnalog, Unconfigured]
	GPIO39 Pin[InputOnlyAnalog, Unconfigured]
}

// IO is the chip's IO controller: the signal router plus the pad
// collection.
type IO struct {
	ioCore
	Pins Pins
}

// IO0 is the one IO controller instance of the chip.
var IO0 = newIO0()

func newIO0() *IO {
	regs := newESP32Regs()
	lines := buildLines(regs, &esp32Chip, esp32PinTable)
	io := &IO{ioCore: ioCore{regs: regs, chip: &esp32Chip}}
	io.Pins = Pins{
		GPIO0:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 0)},
		GPIO1:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 1)},
		GPIO2:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 2)},
		GPIO3:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 3)},
		GPIO4:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 4)},
		GPIO5:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 5)},
		GPIO6:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 6)},
		GPIO7:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 7)},
		GPIO8:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 8)},
		GPIO9:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 9)},
		GPIO10: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 10)},
		GPIO11: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 11)},
		GPIO12: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 12)},
		GPIO13: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 13)},
		GPIO14: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 14)},
		GPIO15: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 15)},
		GPIO16: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 16)},
		GPIO17: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 17)},
		GPIO18: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 18)},
		GPIO19: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 19)},
		GPIO21: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 21)},
		GPIO22: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 22)},
		GPIO23: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 23)},
		GPIO25: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 25)},
		GPIO26: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 26)},
		GPIO27: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 27)},
		GPIO32: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 32)},
		GPIO33: Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 33)},
		GPIO34: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 34)},
		GPIO35: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 35)},
		GPIO36: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 36)},
		GPIO37: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 37)},
		GPIO38: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 38)},
		GPIO39: Pin[InputOnlyAnalog, Unconfigured]{line: lineByNum(lines, 39)},
	}
	return io
}
