// Package bad builds a themed UI by branching on the theme name.
//
// The application instantiates concrete widgets itself, so nothing stops it
// from mixing a dark button with a light textbox, and a new theme means
// another branch.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type DarkButton struct{ Out io.Writer }

func (b DarkButton) Render() { fmt.Fprintln(b.Out, "Dark theme button rendered") }

type LightButton struct{ Out io.Writer }

func (b LightButton) Render() { fmt.Fprintln(b.Out, "Light theme button rendered") }

type DarkTextBox struct{ Out io.Writer }

func (t DarkTextBox) Display() { fmt.Fprintln(t.Out, "Dark theme textbox displayed") }

type LightTextBox struct{ Out io.Writer }

func (t LightTextBox) Display() { fmt.Fprintln(t.Out, "Light theme textbox displayed") }

type UIThemeApplication struct {
	Theme string
	Out   io.Writer
}

// BuildUI renders the widgets for Theme. Anything but "dark" gets the light widgets.
func (a UIThemeApplication) BuildUI() {
	if a.Theme == "dark" {
		button := DarkButton{Out: a.Out}
		textBox := DarkTextBox{Out: a.Out}

		button.Render()
		textBox.Display()
	} else {
		button := LightButton{Out: a.Out}
		textBox := LightTextBox{Out: a.Out}

		button.Render()
		textBox.Display()
	}
}

// Run builds the dark UI.
func Run(_ context.Context, env demo.Env) error {
	UIThemeApplication{Theme: "dark", Out: env.Out}.BuildUI()
	return nil
}
