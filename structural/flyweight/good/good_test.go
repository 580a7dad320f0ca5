package good_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/sghaida/patterns/internal/demotest"
	"github.com/sghaida/patterns/structural/flyweight/good"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Rendered 'A' at (0, 0) with Arial 12px in Red",
		"Rendered 'B' at (10, 0) with Arial 12px in Red",
		"Rendered 'C' at (20, 0) with Times New Roman 14px in Blue",
	}, demotest.Run(t, good.Run))
}

func TestFactory_SharesEqualStyles(t *testing.T) {
	t.Parallel()

	f := good.NewFactory()
	a := f.Get(good.TextStyle{FontFamily: "Arial", FontSize: 12, Color: "Red"})
	b := f.Get(good.TextStyle{FontFamily: "Arial", FontSize: 12, Color: "Red"})
	c := f.Get(good.TextStyle{FontFamily: "Arial", FontSize: 13, Color: "Red"})

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, f.Len())
}

func TestFactory_ConcurrentGet(t *testing.T) {
	t.Parallel()

	f := good.NewFactory()
	style := good.TextStyle{FontFamily: "Mono", FontSize: 10, Color: "Green"}

	got := make([]*good.Flyweight, 64)
	var wg sync.WaitGroup
	for i := range got {
		wg.Go(func() { got[i] = f.Get(style) })
	}
	wg.Wait()

	for _, fw := range got {
		assert.Same(t, got[0], fw)
	}
	assert.Equal(t, 1, f.Len())
}

func TestEditor_ManyCharactersFewFlyweights(t *testing.T) {
	t.Parallel()

	f := good.NewFactory()
	e := good.NewEditor(f)
	style := good.TextStyle{FontFamily: "Arial", FontSize: 12, Color: "Red"}
	for i, ch := range "hello" {
		e.AddCharacter(ch, i*10, 5, style)
	}

	var buf bytes.Buffer
	e.RenderAll(&buf)

	lines := demotest.Lines(buf.String())
	assert.Len(t, lines, 5)
	assert.Equal(t, "Rendered 'o' at (40, 5) with Arial 12px in Red", lines[4])
	assert.Equal(t, 1, f.Len())
}
