// Package bad picks the payment procedure with a conditional inside the order service.
//
// Every new payment method means another branch in ProcessOrderPayment and
// another private charge method on the service.
package bad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

var ErrUnsupportedMethod = errors.New("payment method not supported")

type PaymentMethod int

const (
	CreditCard PaymentMethod = iota
	PayPal
	Crypto
)

type OrderService struct {
	env demo.Env
}

func NewOrderService(env demo.Env) *OrderService { return &OrderService{env: env} }

func (s *OrderService) ProcessOrderPayment(ctx context.Context, method PaymentMethod, amount decimal.Decimal) error {
	if method == CreditCard {
		return s.chargeCreditCard(ctx, amount)
	} else if method == PayPal {
		return s.chargePayPal(ctx, amount)
	} else if method == Crypto {
		return s.chargeCrypto(ctx, amount)
	}
	return ErrUnsupportedMethod
}

func (s *OrderService) chargeCreditCard(ctx context.Context, amount decimal.Decimal) error {
	fmt.Fprintf(s.env.Out, "Charging credit card: %s\n", amount.StringFixed(2))
	return s.env.Sleep(ctx, 500*time.Millisecond)
}

func (s *OrderService) chargePayPal(ctx context.Context, amount decimal.Decimal) error {
	fmt.Fprintf(s.env.Out, "Charging PayPal: %s\n", amount.StringFixed(2))
	return s.env.Sleep(ctx, 100*time.Millisecond)
}

func (s *OrderService) chargeCrypto(ctx context.Context, amount decimal.Decimal) error {
	fmt.Fprintf(s.env.Out, "Charging crypto: %s\n", amount.StringFixed(2))
	return s.env.Sleep(ctx, 300*time.Millisecond)
}

// Run pays three orders, one per method.
func Run(ctx context.Context, env demo.Env) error {
	svc := NewOrderService(env)
	if err := svc.ProcessOrderPayment(ctx, CreditCard, decimal.RequireFromString("100.50")); err != nil {
		return err
	}
	if err := svc.ProcessOrderPayment(ctx, PayPal, decimal.RequireFromString("230.00")); err != nil {
		return err
	}
	return svc.ProcessOrderPayment(ctx, Crypto, decimal.RequireFromString("315.75"))
}
