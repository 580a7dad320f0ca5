package good_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sghaida/patterns/behavioural/strategy/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Charging credit card: 100.50",
		"Charging PayPal: 230.00",
		"Charging crypto: 315.75",
	}, demotest.Run(t, good.Run))
}

func TestDefaultFactory_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := good.DefaultFactory{}.Strategy(good.PaymentMethod(9))
	require.ErrorIs(t, err, good.ErrUnsupportedMethod)
	assert.EqualError(t, err, "strategy: payment method not supported: PaymentMethod(9)")
}

// mockFactory and mockStrategy let the order service be tested in isolation.
type mockFactory struct{ mock.Mock }

func (m *mockFactory) Strategy(method good.PaymentMethod) (good.PaymentStrategy, error) {
	args := m.Called(method)
	s, _ := args.Get(0).(good.PaymentStrategy)
	return s, args.Error(1)
}

type mockStrategy struct{ mock.Mock }

func (m *mockStrategy) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	return m.Called(amount.String()).Error(0)
}

func TestOrderService_DelegatesToFactoryStrategy(t *testing.T) {
	t.Parallel()

	strategy := &mockStrategy{}
	strategy.On("ProcessPayment", "42").Return(nil).Once()
	factory := &mockFactory{}
	factory.On("Strategy", good.PayPal).Return(strategy, nil).Once()

	svc := good.NewOrderService(factory)
	require.NoError(t, svc.ProcessOrderPayment(context.Background(), good.PayPal, decimal.NewFromInt(42)))

	factory.AssertExpectations(t)
	strategy.AssertExpectations(t)
}

func TestOrderService_FactoryError(t *testing.T) {
	t.Parallel()

	svc := good.NewOrderService(good.DefaultFactory{Env: demotest.Env(&bytes.Buffer{})})
	err := svc.ProcessOrderPayment(context.Background(), good.PaymentMethod(-1), decimal.NewFromInt(1))
	require.ErrorIs(t, err, good.ErrUnsupportedMethod)
}
