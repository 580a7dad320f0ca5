// Package good lets controllers choose their view engine through a factory method.
//
// PageController renders through whatever NewEngine returns. The framework
// supplies the default; a controller swaps engines by supplying its own
// factory, without touching RenderView.
package good

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

// ViewEngine is the product.
type ViewEngine interface {
	Generate(view string, data map[string]any) string
}

// EngineFactory is the factory method.
type EngineFactory func() ViewEngine

type DefaultViewEngine struct{}

func (DefaultViewEngine) Generate(view string, _ map[string]any) string {
	return "Processed by DEFAULT engine: " + view
}

func NewDefaultEngine() ViewEngine { return DefaultViewEngine{} }

type MarkdownViewEngine struct{}

func (MarkdownViewEngine) Generate(view string, _ map[string]any) string {
	return "Processed by MARKDOWN engine: " + view
}

func NewMarkdownEngine() ViewEngine { return MarkdownViewEngine{} }

// PageController is the creator.
type PageController struct {
	Out       io.Writer
	NewEngine EngineFactory
}

func (c PageController) engine() ViewEngine {
	if c.NewEngine == nil {
		return NewDefaultEngine()
	}
	return c.NewEngine()
}

func (c PageController) RenderView(view string, data map[string]any) {
	fmt.Fprintln(c.Out, c.engine().Generate(view, data))
}

// NewMarkdownController is a PageController producing markdown engines.
func NewMarkdownController(out io.Writer) PageController {
	return PageController{Out: out, NewEngine: NewMarkdownEngine}
}

type UserController struct {
	PageController
}

func (c UserController) ShowProfile() {
	c.RenderView("profile.html", map[string]any{"Username": "Alice"})
}

type DocumentationController struct {
	PageController
}

func NewDocumentationController(out io.Writer) DocumentationController {
	return DocumentationController{NewMarkdownController(out)}
}

func (c DocumentationController) ShowGuide() {
	c.RenderView("guide.md", map[string]any{"Page": "API Reference"})
}

// Run renders one page per engine.
func Run(_ context.Context, env demo.Env) error {
	UserController{PageController{Out: env.Out}}.ShowProfile()
	NewDocumentationController(env.Out).ShowGuide()
	return nil
}
