// Package bad totals a nested package of boxes with a type switch.
//
// Box holds anything, so every new product type needs another case in
// TotalPrice, and an unknown value is silently priced at zero.
package bad

import (
	"context"
	"fmt"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

type Keyboard struct{ Price decimal.Decimal }

type Microphone struct{ Price decimal.Decimal }

type Mouse struct{ Price decimal.Decimal }

type Box struct {
	items []any
}

func (b *Box) Add(item any) { b.items = append(b.items, item) }

// TotalPrice sums the known item types, recursing into boxes.
func (b *Box) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.items {
		switch v := item.(type) {
		case Keyboard:
			total = total.Add(v.Price)
		case Mouse:
			total = total.Add(v.Price)
		case Microphone:
			total = total.Add(v.Price)
		case *Box:
			total = total.Add(v.TotalPrice())
		}
	}
	return total
}

// Run builds the package box by box and prints its total.
func Run(_ context.Context, env demo.Env) error {
	box1 := &Box{}
	box1.Add(Microphone{Price: decimal.RequireFromString("29.99")})

	box3 := &Box{}
	box3.Add(Mouse{Price: decimal.RequireFromString("18.00")})
	box4 := &Box{}
	box4.Add(Keyboard{Price: decimal.RequireFromString("40.00")})

	box2 := &Box{}
	box2.Add(box3)
	box2.Add(box4)

	pkg := &Box{}
	pkg.Add(box1)
	pkg.Add(box2)

	fmt.Fprintf(env.Out, "Total Price: %s\n", pkg.TotalPrice().StringFixed(2))
	return nil
}
