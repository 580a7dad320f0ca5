// Package good moves each payment procedure into its own strategy.
//
// OrderService asks a StrategyFactory for the strategy matching the method and
// runs it. Adding a method means a new strategy and a factory entry; the order
// service is untouched.
package good

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedMethod = errors.New("strategy: payment method not supported")

type PaymentMethod int

const (
	CreditCard PaymentMethod = iota
	PayPal
	Crypto
)

func (m PaymentMethod) String() string {
	switch m {
	case CreditCard:
		return "CreditCard"
	case PayPal:
		return "PayPal"
	case Crypto:
		return "Crypto"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", int(m))
	}
}

// PaymentStrategy charges an amount one particular way.
type PaymentStrategy interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) error
}

// chargeStrategy prints a label and simulates processing time.
type chargeStrategy struct {
	label string
	delay time.Duration
	env   demo.Env
}

func (s chargeStrategy) ProcessPayment(ctx context.Context, amount decimal.Decimal) error {
	fmt.Fprintf(s.env.Out, "Charging %s: %s\n", s.label, amount.StringFixed(2))
	return s.env.Sleep(ctx, s.delay)
}

func NewCreditCardStrategy(env demo.Env) PaymentStrategy {
	return chargeStrategy{label: "credit card", delay: 500 * time.Millisecond, env: env}
}

func NewPayPalStrategy(env demo.Env) PaymentStrategy {
	return chargeStrategy{label: "PayPal", delay: 100 * time.Millisecond, env: env}
}

func NewCryptoStrategy(env demo.Env) PaymentStrategy {
	return chargeStrategy{label: "crypto", delay: 300 * time.Millisecond, env: env}
}

// StrategyFactory resolves a method to its strategy.
type StrategyFactory interface {
	Strategy(method PaymentMethod) (PaymentStrategy, error)
}

// DefaultFactory knows the three built-in methods.
type DefaultFactory struct {
	Env demo.Env
}

func (f DefaultFactory) Strategy(method PaymentMethod) (PaymentStrategy, error) {
	switch method {
	case CreditCard:
		return NewCreditCardStrategy(f.Env), nil
	case PayPal:
		return NewPayPalStrategy(f.Env), nil
	case Crypto:
		return NewCryptoStrategy(f.Env), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
}

// OrderService is the context.
type OrderService struct {
	factory StrategyFactory
}

func NewOrderService(factory StrategyFactory) *OrderService {
	return &OrderService{factory: factory}
}

func (s *OrderService) ProcessOrderPayment(ctx context.Context, method PaymentMethod, amount decimal.Decimal) error {
	strategy, err := s.factory.Strategy(method)
	if err != nil {
		return err
	}
	return strategy.ProcessPayment(ctx, amount)
}

// Run pays three orders, one per method.
func Run(ctx context.Context, env demo.Env) error {
	svc := NewOrderService(DefaultFactory{Env: env})

	orders := []struct {
		method PaymentMethod
		amount string
	}{
		{CreditCard, "100.50"},
		{PayPal, "230.00"},
		{Crypto, "315.75"},
	}
	for _, o := range orders {
		if err := svc.ProcessOrderPayment(ctx, o.method, decimal.RequireFromString(o.amount)); err != nil {
			return err
		}
	}
	return nil
}
