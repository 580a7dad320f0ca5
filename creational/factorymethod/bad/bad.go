// Package bad hard-codes the view engine inside the framework's controller.
//
// Controllers built on PageController can render views, but they can never
// choose how: the default engine is constructed inline.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type ViewEngine interface {
	Generate(view string, data map[string]any) string
}

type DefaultViewEngine struct{}

func (DefaultViewEngine) Generate(view string, _ map[string]any) string {
	return "Rendered by DEFAULT engine: " + view
}

type PageController struct {
	Out io.Writer
}

func (c PageController) RenderView(view string, data map[string]any) {
	engine := DefaultViewEngine{}
	fmt.Fprintln(c.Out, engine.Generate(view, data))
}

type UserController struct {
	PageController
}

func (c UserController) ShowProfile() {
	c.RenderView("profile.html", map[string]any{"Username": "Alice"})
}

// Run renders the profile page.
func Run(_ context.Context, env demo.Env) error {
	UserController{PageController{Out: env.Out}}.ShowProfile()
	return nil
}
