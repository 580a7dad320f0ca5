// Package good shares one flyweight per distinct text style.
//
// The style (intrinsic state) lives in the flyweight; the character and its
// position (extrinsic state) stay in the editor and are passed to Render.
package good

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sghaida/patterns/internal/demo"
)

// TextStyle is comparable so it can key the factory.
type TextStyle struct {
	FontFamily string
	FontSize   int
	Color      string
}

type Flyweight struct {
	style TextStyle
}

func (f *Flyweight) Style() TextStyle { return f.style }

func (f *Flyweight) Render(w io.Writer, ch rune, x, y int) {
	fmt.Fprintf(w, "Rendered '%c' at (%d, %d) with %s %dpx in %s\n",
		ch, x, y, f.style.FontFamily, f.style.FontSize, f.style.Color)
}

// Factory hands out one Flyweight per style. It is safe for concurrent use.
type Factory struct {
	mu         sync.Mutex
	flyweights map[TextStyle]*Flyweight
}

func NewFactory() *Factory {
	return &Factory{flyweights: map[TextStyle]*Flyweight{}}
}

func (f *Factory) Get(style TextStyle) *Flyweight {
	f.mu.Lock()
	defer f.mu.Unlock()

	fw, ok := f.flyweights[style]
	if !ok {
		fw = &Flyweight{style: style}
		f.flyweights[style] = fw
	}
	return fw
}

// Len reports how many distinct flyweights exist.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.flyweights)
}

// character is the context: extrinsic state plus a shared flyweight.
type character struct {
	ch        rune
	x, y      int
	flyweight *Flyweight
}

type Editor struct {
	factory    *Factory
	characters []character
}

func NewEditor(factory *Factory) *Editor {
	return &Editor{factory: factory}
}

func (e *Editor) AddCharacter(ch rune, x, y int, style TextStyle) {
	e.characters = append(e.characters, character{ch: ch, x: x, y: y, flyweight: e.factory.Get(style)})
}

func (e *Editor) RenderAll(w io.Writer) {
	for _, c := range e.characters {
		c.flyweight.Render(w, c.ch, c.x, c.y)
	}
}

// Run renders three characters backed by two flyweights.
func Run(_ context.Context, env demo.Env) error {
	factory := NewFactory()
	editor := NewEditor(factory)

	style1 := TextStyle{FontFamily: "Arial", FontSize: 12, Color: "Red"}
	style2 := TextStyle{FontFamily: "Times New Roman", FontSize: 14, Color: "Blue"}

	editor.AddCharacter('A', 0, 0, style1)
	editor.AddCharacter('B', 10, 0, style1)
	editor.AddCharacter('C', 20, 0, style2)

	editor.RenderAll(env.Out)
	env.Logger.Debug("flyweights in use", "count", factory.Len())
	return nil
}
