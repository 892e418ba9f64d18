//go:build esp32

package gpio

// Peripheral input signals of the ESP32. Ids at or below 255 go through the
// routing matrix; the 512-series ids name io-mux-only signals that exist
// solely as dedicated function slots.
const (
	SPICLKIn     InputSignal = 0
	SPIQIn       InputSignal = 1
	SPIDIn       InputSignal = 2
	SPIHDIn      InputSignal = 3
	SPIWPIn      InputSignal = 4
	SPICS0In     InputSignal = 5
	SPICS1In     InputSignal = 6
	SPICS2In     InputSignal = 7
	HSPICLKIn    InputSignal = 8
	HSPIQIn      InputSignal = 9
	HSPIDIn      InputSignal = 10
	HSPICS0In    InputSignal = 11
	HSPIHDIn     InputSignal = 12
	HSPIWPIn     InputSignal = 13
	U0RXDIn      InputSignal = 14
	U0CTSIn      InputSignal = 15
	U0DSRIn      InputSignal = 16
	U1RXDIn      InputSignal = 17
	U1CTSIn      InputSignal = 18
	I2S0OBCKIn   InputSignal = 23
	I2S1OBCKIn   InputSignal = 24
	I2S0OWSIn    InputSignal = 25
	I2S1OWSIn    InputSignal = 26
	I2S0IBCKIn   InputSignal = 27
	I2S0IWSIn    InputSignal = 28
	I2CEXT0SCLIn InputSignal = 29
	I2CEXT0SDAIn InputSignal = 30
	VSPICLKIn    InputSignal = 63
	VSPIQIn      InputSignal = 64
	VSPIDIn      InputSignal = 65
	VSPIHDIn     InputSignal = 66
	VSPIWPIn     InputSignal = 67
	VSPICS0In    InputSignal = 68
	CANRXIn      InputSignal = 94
	I2CEXT1SCLIn InputSignal = 95
	I2CEXT1SDAIn InputSignal = 96
	U2RXDIn      InputSignal = 198
	U2CTSIn      InputSignal = 199

	MTDIIn InputSignal = 512
	MTCKIn InputSignal = 513
	MTMSIn InputSignal = 514
)

// Peripheral output signals of the ESP32, with the same matrix / io-mux-only
// split. GPIOOut is the plain GPIO output register; it is what a pad's
// selector entry holds when no peripheral drives it.
const (
	SPICLKOut     OutputSignal = 0
	SPIQOut       OutputSignal = 1
	SPIDOut       OutputSignal = 2
	SPIHDOut      OutputSignal = 3
	SPIWPOut      OutputSignal = 4
	SPICS0Out     OutputSignal = 5
	SPICS1Out     OutputSignal = 6
	SPICS2Out     OutputSignal = 7
	HSPICLKOut    OutputSignal = 8
	HSPIQOut      OutputSignal = 9
	HSPIDOut      OutputSignal = 10
	HSPICS0Out    OutputSignal = 11
	HSPIHDOut     OutputSignal = 12
	HSPIWPOut     OutputSignal = 13
	U0TXDOut      OutputSignal = 14
	U0RTSOut      OutputSignal = 15
	U0DTROut      OutputSignal = 16
	U1TXDOut      OutputSignal = 17
	U1RTSOut      OutputSignal = 18
	I2S0OBCKOut   OutputSignal = 23
	I2S1OBCKOut   OutputSignal = 24
	I2S0OWSOut    OutputSignal = 25
	I2S1OWSOut    OutputSignal = 26
	I2S0IBCKOut   OutputSignal = 27
	I2S0IWSOut    OutputSignal = 28
	I2CEXT0SCLOut OutputSignal = 29
	I2CEXT0SDAOut OutputSignal = 30
	VSPICLKOut    OutputSignal = 63
	VSPIQOut      OutputSignal = 64
	VSPIDOut      OutputSignal = 65
	VSPIHDOut     OutputSignal = 66
	VSPIWPOut     OutputSignal = 67
	VSPICS0Out    OutputSignal = 68
	LEDCHS0Out    OutputSignal = 71
	LEDCHS1Out    OutputSignal = 72
	LEDCHS2Out    OutputSignal = 73
	LEDCHS3Out    OutputSignal = 74
	LEDCHS4Out    OutputSignal = 75
	LEDCHS5Out    OutputSignal = 76
	LEDCHS6Out    OutputSignal = 77
	LEDCHS7Out    OutputSignal = 78
	LEDCLS0Out    OutputSignal = 79
	LEDCLS1Out    OutputSignal = 80
	LEDCLS2Out    OutputSignal = 81
	LEDCLS3Out    OutputSignal = 82
	LEDCLS4Out    OutputSignal = 83
	LEDCLS5Out    OutputSignal = 84
	LEDCLS6Out    OutputSignal = 85
	LEDCLS7Out    OutputSignal = 86
	CANTXOut      OutputSignal = 123
	U2TXDOut      OutputSignal = 198
	U2RTSOut      OutputSignal = 199
	GPIOOut       OutputSignal = 256

	CLKOut1 OutputSignal = 512
	CLKOut2 OutputSignal = 513
	CLKOut3 OutputSignal = 514
	MTDOOut OutputSignal = 515
)
