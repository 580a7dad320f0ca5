package bad_test

import (
	"testing"

	"github.com/sghaida/patterns/behavioural/observer/bad"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"[Display] AAPL: $0.00 → $150.00",
		"[Alert] New stock: AAPL @ $150.00",
		"[Display] AAPL: $150.00 → $158.00",
		"[Alert] AAPL changed by 5.33%!",
		"[Display] MSFT: $0.00 → $300.00",
		"[Alert] New stock: MSFT @ $300.00",
	}, demotest.Run(t, bad.Run))
}
