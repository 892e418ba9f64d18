//go:build esp32

package main

import (
	"time"

	gpio "github.com/tinygo-org/espio/esp-gpio"
	"tinygo.org/x/drivers"
)

func main() {
	time.Sleep(2 * time.Second)
	pins := gpio.IO0.Pins

	d := NewPCD8544(
		gpio.Output(gpio.IntoPushPullOutput(pins.GPIO18)),
		gpio.Output(gpio.IntoPushPullOutput(pins.GPIO23)),
		gpio.Output(gpio.IntoPushPullOutput(pins.GPIO21)),
		gpio.Output(gpio.IntoPushPullOutput(pins.GPIO22)),
		gpio.Output(gpio.IntoPushPullOutput(pins.GPIO19)),
	)
	d.SetRotation(drivers.Rotation180)
	d.Configure()

	w, h := d.Size()
	println("display is", w, "x", h)

	var frame [504]byte
	for i := range frame {
		frame[i] = 0x0F
	}
	for {
		d.DrawBuffer(frame[:])
		time.Sleep(time.Second)
		for i := range frame {
			frame[i] = ^frame[i]
		}
	}
}
