// Package good wraps the vendor Rainbow filter in an adapter that satisfies Color.
package good

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type Video struct {
	Title   string
	Filters []string
}

// Color is the filter interface the editor understands.
type Color interface {
	Apply(v *Video)
}

type BlackAndWhiteColor struct {
	Out io.Writer
}

func (c BlackAndWhiteColor) Apply(v *Video) {
	fmt.Fprintln(c.Out, "Applying black and white filter.")
	v.Filters = append(v.Filters, "black-and-white")
}

type VideoEditor struct {
	Video *Video
}

func (e VideoEditor) ApplyColor(c Color) { c.Apply(e.Video) }

// Rainbow comes from a vendor library and is left untouched.
type Rainbow struct {
	Out io.Writer
}

func (r Rainbow) Setup() { fmt.Fprintln(r.Out, "Initializing rainbow filter settings...") }

func (r Rainbow) Update(v *Video) {
	fmt.Fprintln(r.Out, "Applying rainbow filter to video.")
	v.Filters = append(v.Filters, "rainbow")
}

// RainbowColor adapts Rainbow to Color.
type RainbowColor struct {
	rainbow Rainbow
}

var _ Color = RainbowColor{}

func NewRainbowColor(r Rainbow) RainbowColor { return RainbowColor{rainbow: r} }

func (c RainbowColor) Apply(v *Video) {
	c.rainbow.Setup()
	c.rainbow.Update(v)
}

// Run applies a native filter and then the adapted vendor one.
func Run(_ context.Context, env demo.Env) error {
	editor := VideoEditor{Video: &Video{Title: "holiday.mp4"}}
	editor.ApplyColor(BlackAndWhiteColor{Out: env.Out})
	editor.ApplyColor(NewRainbowColor(Rainbow{Out: env.Out}))
	return nil
}
