package good_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/patterns/creational/factorymethod/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Processed by DEFAULT engine: profile.html",
		"Processed by MARKDOWN engine: guide.md",
	}, demotest.Run(t, good.Run))
}

// upperEngine is a third engine plugged in from outside the package.
type upperEngine struct{}

func (upperEngine) Generate(view string, data map[string]any) string {
	return "UPPER " + view + " for " + data["who"].(string)
}

func TestPageController_CustomFactory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	calls := 0
	c := good.PageController{Out: &buf, NewEngine: func() good.ViewEngine {
		calls++
		return upperEngine{}
	}}

	c.RenderView("home", map[string]any{"who": "Bob"})
	c.RenderView("home", map[string]any{"who": "Eve"})

	assert.Equal(t, "UPPER home for Bob\nUPPER home for Eve\n", buf.String())
	assert.Equal(t, 2, calls)
}
