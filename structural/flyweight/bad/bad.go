// Package bad gives every character its own copy of the style.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type TextCharacter struct {
	Character  rune
	X, Y       int
	FontFamily string
	FontSize   int
	Color      string
}

func (c TextCharacter) Render(w io.Writer) {
	fmt.Fprintf(w, "Rendered '%c' at (%d, %d) with %s %dpx in %s\n",
		c.Character, c.X, c.Y, c.FontFamily, c.FontSize, c.Color)
}

// Run renders three characters, two of them duplicating the same style.
func Run(_ context.Context, env demo.Env) error {
	editor := []TextCharacter{
		{Character: 'A', X: 0, Y: 0, FontFamily: "Arial", FontSize: 12, Color: "Red"},
		{Character: 'B', X: 10, Y: 0, FontFamily: "Arial", FontSize: 12, Color: "Red"},
		{Character: 'C', X: 20, Y: 0, FontFamily: "Times New Roman", FontSize: 14, Color: "Blue"},
	}
	for _, c := range editor {
		c.Render(env.Out)
	}
	return nil
}
