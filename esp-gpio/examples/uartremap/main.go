//go:build esp32

package main

import (
	"time"

	gpio "github.com/tinygo-org/espio/esp-gpio"
)

// Moves the console UART off its default pads: RX onto GPIO4, TX onto
// GPIO5, with the UART's CTS tied low so flow control never stalls it.
func main() {
	time.Sleep(2 * time.Second)
	pins := gpio.IO0.Pins

	rx := gpio.Input(gpio.IntoPullUpInput(pins.GPIO4))
	rx.ConnectToPeripheral(gpio.U0RXDIn)

	tx := gpio.Output(gpio.IntoPushPullOutput(pins.GPIO5))
	tx.ConnectPeripheral(gpio.U0TXDOut)

	gpio.IO0.ConnectLowToPeripheral(gpio.U0CTSIn)

	println("U0 now on pads", rx.Number(), "and", tx.Number())
	for {
		time.Sleep(time.Second)
	}
}
