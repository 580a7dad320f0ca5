package good_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/patterns/internal/demotest"
	"github.com/sghaida/patterns/structural/bridge/good"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Vector Circle (radius: 5)",
		"Raster Square (side: 10)",
		"Raster Circle (radius: 5)",
	}, demotest.Run(t, good.Run))
}

func TestShapes_WorkWithAnyRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shape func(good.Renderer) good.Shape
		want  []string
	}{
		{
			name:  "circle",
			shape: func(r good.Renderer) good.Shape { return good.NewCircle(r, 2.5) },
			want:  []string{"Vector Circle (radius: 2.5)", "Raster Circle (radius: 2.5)"},
		},
		{
			name:  "square",
			shape: func(r good.Renderer) good.Shape { return good.NewSquare(r, 4) },
			want:  []string{"Vector Square (side: 4)", "Raster Square (side: 4)"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := tc.shape(good.VectorRenderer{Out: &buf})
			s.Draw()
			s.SetRenderer(good.RasterRenderer{Out: &buf})
			s.Draw()

			assert.Equal(t, tc.want, demotest.Lines(buf.String()))
		})
	}
}
