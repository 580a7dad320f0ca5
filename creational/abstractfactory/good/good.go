// Package good creates matching widget families through a theme factory.
//
// The application only sees the Button and TextBox interfaces and the
// ThemeFactory that produces them, so every widget it builds belongs to the
// same theme.
package good

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

var (
	ErrInvalidTheme = errors.New("abstractfactory: invalid theme")
	ErrNotBuilt     = errors.New("abstractfactory: UI rendered before it was built")
)

type Button interface {
	Render()
}

type TextBox interface {
	Display()
}

// ThemeFactory creates one family of widgets.
type ThemeFactory interface {
	CreateButton() Button
	CreateTextBox() TextBox
}

// NewThemeFactory returns the factory for "dark" or "light".
func NewThemeFactory(theme string, out io.Writer) (ThemeFactory, error) {
	switch theme {
	case "dark":
		return DarkThemeFactory{Out: out}, nil
	case "light":
		return LightThemeFactory{Out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
}

type DarkThemeFactory struct{ Out io.Writer }

func (f DarkThemeFactory) CreateButton() Button   { return darkButton{f.Out} }
func (f DarkThemeFactory) CreateTextBox() TextBox { return darkTextBox{f.Out} }

type LightThemeFactory struct{ Out io.Writer }

func (f LightThemeFactory) CreateButton() Button   { return lightButton{f.Out} }
func (f LightThemeFactory) CreateTextBox() TextBox { return lightTextBox{f.Out} }

type darkButton struct{ out io.Writer }

func (b darkButton) Render() { fmt.Fprintln(b.out, "Dark theme button rendered") }

type darkTextBox struct{ out io.Writer }

func (t darkTextBox) Display() { fmt.Fprintln(t.out, "Dark theme textbox displayed") }

type lightButton struct{ out io.Writer }

func (b lightButton) Render() { fmt.Fprintln(b.out, "Light theme button rendered") }

type lightTextBox struct{ out io.Writer }

func (t lightTextBox) Display() { fmt.Fprintln(t.out, "Light theme textbox displayed") }

// App is the client of the factory.
type App struct {
	factory ThemeFactory
	button  Button
	textBox TextBox
}

func NewApp(factory ThemeFactory) *App { return &App{factory: factory} }

// Build creates the widgets.
func (a *App) Build() {
	a.button = a.factory.CreateButton()
	a.textBox = a.factory.CreateTextBox()
}

// Render draws the widgets. Build must have been called first.
func (a *App) Render() error {
	if a.button == nil || a.textBox == nil {
		return ErrNotBuilt
	}
	a.button.Render()
	a.textBox.Display()
	return nil
}

// Run builds and renders the dark UI.
func Run(_ context.Context, env demo.Env) error {
	factory, err := NewThemeFactory("dark", env.Out)
	if err != nil {
		return err
	}
	app := NewApp(factory)
	app.Build()
	return app.Render()
}
