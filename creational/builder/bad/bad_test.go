package bad_test

import (
	"testing"

	"github.com/sghaida/patterns/creational/builder/bad"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Manual for 'sportCar':",
		"Car type: Sports",
		"Seats: 2",
		"Engine: info on engine...",
		"Wheels: diameter in inches = 20",
		"Dashboard: Has rev counter",
		"Is convertible: Yes",
		"GPS Navigator: Info on gps...",
		"==========================================",
		"Manual for 'suvCar':",
		"Car type: SUV",
		"Seats: 5",
		"Engine: info on engine...",
		"Wheels: diameter in inches = 18",
		"Dashboard: No rev counter",
		"Is convertible: No",
		"GPS Navigator: N/A",
	}, demotest.Run(t, bad.Run))
}
