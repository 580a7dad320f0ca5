// Package bad has a video editor that only accepts its own Color filters.
//
// The third-party Rainbow filter has the wrong method set, so the editor
// cannot use it without changing one side or the other.
package bad

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

// Rainbow comes from a vendor library and does not implement Color.
type Rainbow struct {
	Out io.Writer
}

func (r Rainbow) Setup() { fmt.Fprintln(r.Out, "Initializing rainbow filter settings...") }

func (r Rainbow) Update(v *Video) {
	fmt.Fprintln(r.Out, "Applying rainbow filter to video.")
	v.Filters = append(v.Filters, "rainbow")
}

// Run applies the only filter the editor can take.
func Run(_ context.Context, env demo.Env) error {
	editor := VideoEditor{Video: &Video{Title: "holiday.mp4"}}
	editor.ApplyColor(BlackAndWhiteColor{Out: env.Out})
	// editor.ApplyColor(Rainbow{Out: env.Out}) does not compile: Rainbow has no Apply method.
	return nil
}
