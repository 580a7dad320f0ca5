package generic_test

import (
	"testing"

	"github.com/sghaida/patterns/creational/builder/generic"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	lines := demotest.Run(t, generic.Run)
	require.Len(t, lines, 17)
	assert.Equal(t, "Dashboard: Has rev counter", lines[5])
	assert.Equal(t, "Car type: SUV", lines[10])
	assert.Equal(t, "Wheels: diameter in inches = 18", lines[13])
}

func TestConstruct_ReturnsTypedProduct(t *testing.T) {
	t.Parallel()

	c, err := generic.ConstructSUV(generic.NewCarBuilder())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Seats)

	m, err := generic.ConstructSportsCar(generic.NewManualBuilder())
	require.NoError(t, err)
	assert.Contains(t, m.Print(), "Is convertible: Yes")
}

func TestBuild_MissingPart(t *testing.T) {
	t.Parallel()

	b := generic.NewCarBuilder()
	_, err := b.Build()
	require.EqualError(t, err, `builder: missing required part "type"`)
}
