// Package good turns each device request into a Command object.
//
// Commands remember what they changed so the Invoker can undo them in LIFO
// order. The invoker never learns what a light or a thermostat is.
package good

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

// Light is a receiver.
type Light struct {
	on  bool
	out io.Writer
}

func NewLight(out io.Writer, on bool) *Light { return &Light{on: on, out: out} }

func (l *Light) IsOn() bool { return l.on }

func (l *Light) TurnOn() {
	l.on = true
	fmt.Fprintln(l.out, "Light: On")
}

func (l *Light) TurnOff() {
	l.on = false
	fmt.Fprintln(l.out, "Light: Off")
}

// Thermostat is a receiver.
type Thermostat struct {
	temperature int
	out         io.Writer
}

func NewThermostat(out io.Writer, temperature int) *Thermostat {
	return &Thermostat{temperature: temperature, out: out}
}

func (t *Thermostat) Temperature() int { return t.temperature }

func (t *Thermostat) SetTemperature(temp int) {
	t.temperature = temp
	fmt.Fprintf(t.out, "Thermostat: %d°C\n", temp)
}

// Command is a reversible request.
type Command interface {
	Execute()
	Undo()
}

// LightPowerCommand switches a light and remembers the state it found.
type LightPowerCommand struct {
	light    *Light
	turnOn   bool
	previous bool
}

func NewLightPowerCommand(light *Light, turnOn bool) *LightPowerCommand {
	return &LightPowerCommand{light: light, turnOn: turnOn}
}

func (c *LightPowerCommand) Execute() {
	c.previous = c.light.IsOn()
	if c.turnOn {
		c.light.TurnOn()
	} else {
		c.light.TurnOff()
	}
}

func (c *LightPowerCommand) Undo() {
	if c.previous {
		c.light.TurnOn()
	} else {
		c.light.TurnOff()
	}
}

// SetTemperatureCommand sets a thermostat and remembers the old temperature.
type SetTemperatureCommand struct {
	thermostat *Thermostat
	target     int
	previous   int
}

func NewSetTemperatureCommand(t *Thermostat, target int) *SetTemperatureCommand {
	return &SetTemperatureCommand{thermostat: t, target: target}
}

func (c *SetTemperatureCommand) Execute() {
	c.previous = c.thermostat.Temperature()
	c.thermostat.SetTemperature(c.target)
}

func (c *SetTemperatureCommand) Undo() { c.thermostat.SetTemperature(c.previous) }

// Invoker executes commands and keeps them for undo.
type Invoker struct {
	history []Command
}

// Execute runs cmd and pushes it onto the history.
func (i *Invoker) Execute(cmd Command) {
	cmd.Execute()
	i.history = append(i.history, cmd)
}

// UndoLast reverts the most recent command. It reports false when there is nothing to undo.
func (i *Invoker) UndoLast() bool {
	n := len(i.history)
	if n == 0 {
		return false
	}
	cmd := i.history[n-1]
	i.history = i.history[:n-1]
	cmd.Undo()
	return true
}

// Len is the number of commands that can still be undone.
func (i *Invoker) Len() int { return len(i.history) }

// Run executes two commands then undoes both.
func Run(_ context.Context, env demo.Env) error {
	light := NewLight(env.Out, false)
	thermostat := NewThermostat(env.Out, 20)

	var inv Invoker
	inv.Execute(NewLightPowerCommand(light, true))
	inv.Execute(NewSetTemperatureCommand(thermostat, 22))

	inv.UndoLast()
	inv.UndoLast()
	return nil
}
