//go:build esp32c3

package gpio

import "github.com/tinygo-org/espio/esp-gpio/hwreg"

// ESP32-C3 binding. One bank, one core, and a regular io-mux layout; the
// analog path goes through the io-mux instead of a separate RTC block.
const (
	esp32c3GPIOBase  uintptr = 0x60004000
	esp32c3IOMuxBase uintptr = 0x60009000
)

func esp32c3MuxRegs() []*hwreg.R32 {
	m := make([]*hwreg.R32, 22)
	for n := range m {
		m[n] = regAt(esp32c3IOMuxBase + 0x04 + 4*uintptr(n))
	}
	return m
}

func newESP32C3Regs() *regFile {
	g := esp32c3GPIOBase
	return &regFile{
		bank0: bankRegs{
			out:        regAt(g + 0x04),
			outSet:     regAt(g + 0x08),
			outClear:   regAt(g + 0x0C),
			outEnSet:   regAt(g + 0x24),
			outEnClear: regAt(g + 0x28),
			in:         regAt(g + 0x3C),
			intClear:   regAt(g + 0x4C),
			status:     singleCoreStatus(regAt(g+0x5C), regAt(g+0x60)),
		},
		pin:        regSlice(g+0x74, 22),
		funcInSel:  regSlice(g+0x154, 128),
		funcOutSel: regSlice(g+0x554, 22),
		mux:        esp32c3MuxRegs(),
	}
}

// esp32c3AnalogEntry hands a pad over to the analog domain: driver off,
// io-mux rewritten to the GPIO function with input and pulls off.
func esp32c3AnalogEntry(l *pinLine) {
	l.bank.outEnClear.Set(l.mask())
	l.mux.Set(uint32(Function1) << ioMuxMcuSelPos)
}

var esp32c3Chip = chipProfile{
	gpioMuxFunc:      Function1,
	gpioOutSignal:    GPIOOut,
	inputSignalMax:   127,
	outputSignalMax:  128,
	zeroInput:        0x1F,
	oneInput:         0x1E,
	intrMask:         0b001,
	nmiMask:          0b010,
	matrixInSelMask:  0x1F,
	matrixInInv:      1 << 5,
	matrixInRoute:    1 << 6,
	matrixOutSelMask: 0xFF,
	matrixOutInv:     1 << 8,
	matrixOutEnSel:   1 << 9,
	matrixOutEnInv:   1 << 10,
	alternate1:       Function0,
	alternate2:       Function2,
	analogEntry:      esp32c3AnalogEntry,
}

// esp32c3PinTable lists the bonded pads and their dedicated io-mux function
// slots.
var esp32c3PinTable = []pinEntry{
	{num: 0, bank: 0},
	{num: 1, bank: 0},
	{num: 2, bank: 0, in: []inputAF{{2, FSPIQIn}}, out: []outputAF{{2, FSPIQOut}}},
	{num: 3, bank: 0},
	{num: 4, bank: 0, in: []inputAF{{0, MTMSIn}, {2, FSPIHDIn}}, out: []outputAF{{2, FSPIHDOut}}},
	{num: 5, bank: 0, in: []inputAF{{0, MTDIIn}, {2, FSPIWPIn}}, out: []outputAF{{2, FSPIWPOut}}},
	{num: 6, bank: 0, in: []inputAF{{0, MTCKIn}, {2, FSPICLKIn}}, out: []outputAF{{2, FSPICLKOut}}},
	{num: 7, bank: 0, in: []inputAF{{2, FSPIDIn}}, out: []outputAF{{0, MTDOOut}, {2, FSPIDOut}}},
	{num: 8, bank: 0},
	{num: 9, bank: 0},
	{num: 10, bank: 0, in: []inputAF{{2, FSPICS0In}}, out: []outputAF{{2, FSPICS0Out}}},
	{num: 11, bank: 0},
	{num: 12, bank: 0},
	{num: 13, bank: 0},
	{num: 14, bank: 0},
	{num: 15, bank: 0},
	{num: 16, bank: 0},
	{num: 17, bank: 0},
	{num: 18, bank: 0},
	{num: 19, bank: 0},
	{num: 20, bank: 0, in: []inputAF{{0, U0RXDIn}}},
	{num: 21, bank: 0, out: []outputAF{{0, U0TXDOut}}},
}

// Pins is the ESP32-C3's pad collection. GPIO0 through GPIO5 reach the
// analog domain; every pad has a driver.
type Pins struct {
	GPIO0  Pin[InputOutputAnalog, Unconfigured]
	GPIO1  Pin[InputOutputAnalog, Unconfigured]
	GPIO2  Pin[InputOutputAnalog, Unconfigured]
	GPIO3  Pin[InputOutputAnalog, Unconfigured]
	GPIO4  Pin[InputOutputAnalog, Unconfigured]
	GPIO5  Pin[InputOutputAnalog, Unconfigured]
	GPIO6  Pin[InputOutput, Unconfigured]
	GPIO7  Pin[InputOutput, Unconfigured]
	GPIO8  Pin[InputOutput, Unconfigured]
	GPIO9  Pin[InputOutput, Unconfigured]
	GPIO10 Pin[InputOutput, Unconfigured]
	GPIO11 Pin[InputOutput, Unconfigured]
	GPIO12 Pin[InputOutput, Unconfigured]
	GPIO13 Pin[InputOutput, Unconfigured]
	GPIO14 Pin[InputOutput, Unconfigured]
	GPIO15 Pin[InputOutput, Unconfigured]
	GPIO16 Pin[InputOutput, Unconfigured]
	GPIO17 Pin[InputOutput, Unconfigured]
	GPIO18 Pin[InputOutput, Unconfigured]
	GPIO19 Pin[InputOutput, Unconfigured]
	GPIO20 Pin[InputOutput, Unconfigured]
	GPIO21 Pin[InputOutput, Unconfigured]
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
	regs := newESP32C3Regs()
	lines := buildLines(regs, &esp32c3Chip, esp32c3PinTable)
	io := &IO{ioCore: ioCore{regs: regs, chip: &esp32c3Chip}}
	io.Pins = Pins{
		GPIO0:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 0)},
		GPIO1:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 1)},
		GPIO2:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 2)},
		GPIO3:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 3)},
		GPIO4:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 4)},
		GPIO5:  Pin[InputOutputAnalog, Unconfigured]{line: lineByNum(lines, 5)},
		GPIO6:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 6)},
		GPIO7:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 7)},
		GPIO8:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 8)},
		GPIO9:  Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 9)},
		GPIO10: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 10)},
		GPIO11: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 11)},
		GPIO12: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 12)},
		GPIO13: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 13)},
		GPIO14: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 14)},
		GPIO15: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 15)},
		GPIO16: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 16)},
		GPIO17: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 17)},
		GPIO18: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 18)},
		GPIO19: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 19)},
		GPIO20: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 20)},
		GPIO21: Pin[InputOutput, Unconfigured]{line: lineByNum(lines, 21)},
	}
	return io
}
