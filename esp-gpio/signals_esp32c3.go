//go:build esp32c3

package gpio

// Peripheral input signals of the ESP32-C3. Ids at or below 127 go through
// the routing matrix; the 512-series ids name io-mux-only signals.
const (
	U0RXDIn      InputSignal = 6
	U0CTSIn      InputSignal = 7
	U0DSRIn      InputSignal = 8
	U1RXDIn      InputSignal = 9
	U1CTSIn      InputSignal = 10
	U1DSRIn      InputSignal = 11
	I2CEXT0SCLIn InputSignal = 53
	I2CEXT0SDAIn InputSignal = 54
	FSPICLKIn    InputSignal = 63
	FSPIQIn      InputSignal = 64
	FSPIDIn      InputSignal = 65
	FSPIHDIn     InputSignal = 66
	FSPIWPIn     InputSignal = 67
	FSPICS0In    InputSignal = 68
	TWAIRXIn     InputSignal = 74

	MTMSIn InputSignal = 512
	MTDIIn InputSignal = 513
	MTCKIn InputSignal = 514
)

// Peripheral output signals of the ESP32-C3. GPIOOut is the plain GPIO
// output register.
const (
	U0TXDOut      OutputSignal = 6
	U0RTSOut      OutputSignal = 7
	U0DTROut      OutputSignal = 8
	U1TXDOut      OutputSignal = 9
	U1RTSOut      OutputSignal = 10
	U1DTROut      OutputSignal = 11
	LEDCLS0Out    OutputSignal = 45
	LEDCLS1Out    OutputSignal = 46
	LEDCLS2Out    OutputSignal = 47
	LEDCLS3Out    OutputSignal = 48
	LEDCLS4Out    OutputSignal = 49
	LEDCLS5Out    OutputSignal = 50
	I2CEXT0SCLOut OutputSignal = 53
	I2CEXT0SDAOut OutputSignal = 54
	FSPICLKOut    OutputSignal = 63
	FSPIQOut      OutputSignal = 64
	FSPIDOut      OutputSignal = 65
	FSPIHDOut     OutputSignal = 66
	FSPIWPOut     OutputSignal = 67
	FSPICS0Out    OutputSignal = 68
	TWAITXOut     OutputSignal = 74
	GPIOOut       OutputSignal = 128

	MTDOOut OutputSignal = 512
)
