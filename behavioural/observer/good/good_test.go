package good_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sghaida/patterns/behavioural/observer/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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
		"[Display] Monitoring stopped.",
		"[Alert] Service stopped.",
	}, demotest.Run(t, good.Run))
}

// mockObserver records notifications.
type mockObserver struct{ mock.Mock }

func (m *mockObserver) OnNext(u good.StockPriceUpdate) { m.Called(u) }
func (m *mockObserver) OnError(err error)              { m.Called(err) }
func (m *mockObserver) OnCompleted()                   { m.Called() }

func TestSubscribe_DuplicateIsIgnored(t *testing.T) {
	t.Parallel()

	market := good.NewStockMarket()
	o := &mockObserver{}
	o.On("OnNext", mock.Anything).Return().Once()

	market.Subscribe(o)
	market.Subscribe(o)
	assert.Equal(t, 1, market.Len())

	market.UpdateStockPrice("AAPL", decimal.NewFromInt(1))
	o.AssertExpectations(t)
}

func TestUnsubscribe_IsIdempotent(t *testing.T) {
	t.Parallel()

	market := good.NewStockMarket()
	o := &mockObserver{}
	unsubscribe := market.Subscribe(o)

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, market.Len())

	market.UpdateStockPrice("AAPL", decimal.NewFromInt(1))
	o.AssertNotCalled(t, "OnNext", mock.Anything)
}

func TestUnsubscribe_DuringNotification(t *testing.T) {
	t.Parallel()

	market := good.NewStockMarket()
	o := &mockObserver{}
	var unsubscribe func()
	o.On("OnNext", mock.Anything).Run(func(mock.Arguments) { unsubscribe() }).Return().Once()
	unsubscribe = market.Subscribe(o)

	market.UpdateStockPrice("AAPL", decimal.NewFromInt(1))
	market.UpdateStockPrice("AAPL", decimal.NewFromInt(2))
	o.AssertExpectations(t)
}

func TestFail_ForwardsError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	market := good.NewStockMarket()
	market.Subscribe(&good.StockPriceDisplay{Out: &buf})
	market.Subscribe(good.NewStockAlertService(&buf))

	market.Fail(errors.New("feed down"))
	assert.Equal(t, "[Display] Error: feed down\n[Alert] Error: feed down\n", buf.String())
}

func TestShutdown_DropsObservers(t *testing.T) {
	t.Parallel()

	market := good.NewStockMarket()
	o := &mockObserver{}
	o.On("OnCompleted").Return().Once()
	market.Subscribe(o)

	market.Shutdown()
	market.Shutdown()
	assert.Equal(t, 0, market.Len())
	o.AssertExpectations(t)
}

func TestAlertService_Threshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{name: "new listing", old: "0", new: "10", want: "[Alert] New stock: X @ $10.00\n"},
		{name: "below threshold", old: "100", new: "104.99"},
		{name: "exactly threshold", old: "100", new: "105", want: "[Alert] X changed by 5.00%!\n"},
		{name: "drop", old: "100", new: "90", want: "[Alert] X changed by 10.00%!\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			good.NewStockAlertService(&buf).OnNext(good.StockPriceUpdate{
				Symbol:   "X",
				OldPrice: decimal.RequireFromString(tc.old),
				NewPrice: decimal.RequireFromString(tc.new),
			})
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
