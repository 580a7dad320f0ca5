package good_test

import (
	"testing"

	"github.com/sghaida/patterns/creational/builder/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	lines := demotest.Run(t, good.Run)
	require.Len(t, lines, 17)
	assert.Equal(t, "Manual for 'sportCar':", lines[0])
	assert.Equal(t, "Car type: Sports", lines[1])
	assert.Equal(t, "GPS Navigator: Info on gps...", lines[7])
	assert.Equal(t, "==========================================", lines[8])
	assert.Equal(t, "Manual for 'suvCar':", lines[9])
	assert.Equal(t, "Seats: 5", lines[11])
	assert.Equal(t, "GPS Navigator: N/A", lines[16])
}

func TestDirector_SameRecipeBothProducts(t *testing.T) {
	t.Parallel()

	cb := good.NewCarBuilder()
	d := good.NewDirector(cb)
	require.NoError(t, d.Make(good.Sports))
	c, err := cb.Result()
	require.NoError(t, err)

	mb := good.NewManualBuilder()
	d.ChangeBuilder(mb)
	require.NoError(t, d.Make(good.Sports))
	m, err := mb.Result()
	require.NoError(t, err)

	assert.Equal(t, c.Type, m.Type)
	assert.Equal(t, c.Seats, m.Seats)
	assert.Equal(t, c.Wheels, m.Wheels)
	assert.True(t, c.IsConvertible)
	assert.NotNil(t, c.GPSNavigator)
}

func TestDirector_MakeResetsPreviousParts(t *testing.T) {
	t.Parallel()

	cb := good.NewCarBuilder()
	d := good.NewDirector(cb)
	require.NoError(t, d.Make(good.Sports))
	require.NoError(t, d.Make(good.SUV))

	c, err := cb.Result()
	require.NoError(t, err)
	assert.False(t, c.IsConvertible)
	assert.Nil(t, c.GPSNavigator)
}

func TestDirector_UnknownType(t *testing.T) {
	t.Parallel()

	d := good.NewDirector(good.NewCarBuilder())
	require.ErrorIs(t, d.Make(good.CarType(7)), good.ErrUnknownCarType)
}

func TestResult_MissingPart(t *testing.T) {
	t.Parallel()

	cb := good.NewCarBuilder()
	cb.SetCarType(good.SUV).SetSeats(4).SetEngine(good.Engine{})

	_, err := cb.Result()
	var missing good.MissingPartError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "wheels", missing.Part)
}
