// Package good separates what is drawn (Shape) from how it is drawn (Renderer).
//
// The two vary independently: shapes hold a Renderer and can switch it at
// run time.
package good

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

// Renderer is the implementation side of the bridge.
type Renderer interface {
	RenderCircle(radius float64)
	RenderSquare(side float64)
}

type VectorRenderer struct{ Out io.Writer }

func (r VectorRenderer) RenderCircle(radius float64) {
	fmt.Fprintf(r.Out, "Vector Circle (radius: %g)\n", radius)
}

func (r VectorRenderer) RenderSquare(side float64) {
	fmt.Fprintf(r.Out, "Vector Square (side: %g)\n", side)
}

type RasterRenderer struct{ Out io.Writer }

func (r RasterRenderer) RenderCircle(radius float64) {
	fmt.Fprintf(r.Out, "Raster Circle (radius: %g)\n", radius)
}

func (r RasterRenderer) RenderSquare(side float64) {
	fmt.Fprintf(r.Out, "Raster Square (side: %g)\n", side)
}

// Shape is the abstraction side of the bridge.
type Shape interface {
	Draw()
	SetRenderer(r Renderer)
}

// base holds the renderer every shape delegates to.
type base struct {
	renderer Renderer
}

func (b *base) SetRenderer(r Renderer) { b.renderer = r }

type Circle struct {
	base
	Radius float64
}

func NewCircle(r Renderer, radius float64) *Circle {
	return &Circle{base: base{renderer: r}, Radius: radius}
}

func (c *Circle) Draw() { c.renderer.RenderCircle(c.Radius) }

type Square struct {
	base
	Side float64
}

func NewSquare(r Renderer, side float64) *Square {
	return &Square{base: base{renderer: r}, Side: side}
}

func (s *Square) Draw() { s.renderer.RenderSquare(s.Side) }

// Run draws two shapes and then swaps the circle's renderer.
func Run(_ context.Context, env demo.Env) error {
	vector := VectorRenderer{Out: env.Out}
	raster := RasterRenderer{Out: env.Out}

	var circle Shape = NewCircle(vector, 5)
	var square Shape = NewSquare(raster, 10)

	circle.Draw()
	square.Draw()

	circle.SetRenderer(raster)
	circle.Draw()
	return nil
}
