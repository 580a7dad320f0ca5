// Package bad drives devices straight from the remote control.
//
// The remote knows every device and how to operate it. There is no request
// object, so nothing can be queued, logged or undone.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type Light struct {
	IsOn bool
	Out  io.Writer
}

func (l *Light) TurnOn() {
	l.IsOn = true
	fmt.Fprintln(l.Out, "Light: On")
}

func (l *Light) TurnOff() {
	l.IsOn = false
	fmt.Fprintln(l.Out, "Light: Off")
}

type Thermostat struct {
	CurrentTemperature int
	Out                io.Writer
}

func (t *Thermostat) SetTemperature(temp int) {
	t.CurrentTemperature = temp
	fmt.Fprintf(t.Out, "Thermostat: %d°C\n", temp)
}

// RemoteControl calls the receivers directly.
type RemoteControl struct {
	Light      *Light
	Thermostat *Thermostat
}

func (r RemoteControl) PressLightButton(turnOn bool) {
	if turnOn {
		r.Light.TurnOn()
	} else {
		r.Light.TurnOff()
	}
}

func (r RemoteControl) PressThermostatButton(temperature int) {
	r.Thermostat.SetTemperature(temperature)
}

// Run turns the light on and sets 22°C.
func Run(_ context.Context, env demo.Env) error {
	remote := RemoteControl{
		Light:      &Light{Out: env.Out},
		Thermostat: &Thermostat{CurrentTemperature: 20, Out: env.Out},
	}

	remote.PressLightButton(true)
	remote.PressThermostatButton(22)
	return nil
}
