// Package bad has one shape type per rendering technique.
//
// Adding a triangle means two new types, and adding an SVG renderer means one
// more per shape.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type Shape interface {
	Draw()
}

type VectorCircle struct{ Out io.Writer }

func (s VectorCircle) Draw() { fmt.Fprintln(s.Out, "Vector Circle") }

type RasterCircle struct{ Out io.Writer }

func (s RasterCircle) Draw() { fmt.Fprintln(s.Out, "Raster Circle") }

type VectorSquare struct{ Out io.Writer }

func (s VectorSquare) Draw() { fmt.Fprintln(s.Out, "Vector Square") }

type RasterSquare struct{ Out io.Writer }

func (s RasterSquare) Draw() { fmt.Fprintln(s.Out, "Raster Square") }

// Run draws a vector circle and a raster square.
func Run(_ context.Context, env demo.Env) error {
	shapes := []Shape{VectorCircle{Out: env.Out}, RasterSquare{Out: env.Out}}
	for _, s := range shapes {
		s.Draw()
	}
	return nil
}
