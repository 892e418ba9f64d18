//go:build esp32

package main

import (
	"time"

	gpio "github.com/tinygo-org/espio/esp-gpio"
)

func main() {
	// Sleep to catch prints.
	time.Sleep(2 * time.Second)

	led := gpio.Output(gpio.IntoPushPullOutput(gpio.IO0.Pins.GPIO5))
	println("Blinking pad", led.Number())
	for {
		led.Toggle()
		time.Sleep(500 * time.Millisecond)
	}
}
