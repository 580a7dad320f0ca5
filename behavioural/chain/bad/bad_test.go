package bad_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/patterns/behavioural/chain/bad"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Request approved by Manager.",
		"Request approved by Director.",
		"Request approved by Vice President.",
	}, demotest.Run(t, bad.Run))
}

func TestProcessRequest_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount string
		want   string
	}{
		{amount: "1000", want: "Request approved by Manager.\n"},
		{amount: "1000.01", want: "Request approved by Director.\n"},
		{amount: "5000", want: "Request approved by Director.\n"},
		{amount: "5000.01", want: "Request approved by Vice President.\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.amount, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			bad.PurchaseProcessor{Out: &buf}.ProcessRequest(decimal.RequireFromString(tc.amount))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
