// Package good treats single products and boxes of products uniformly.
package good

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

// Item is anything with a price, including a Box.
type Item interface {
	Price() decimal.Decimal
}

type Keyboard struct{ Cost decimal.Decimal }

func (k Keyboard) Price() decimal.Decimal { return k.Cost }

type Microphone struct{ Cost decimal.Decimal }

func (m Microphone) Price() decimal.Decimal { return m.Cost }

type Mouse struct{ Cost decimal.Decimal }

func (m Mouse) Price() decimal.Decimal { return m.Cost }

// Box is an Item made of Items.
type Box struct {
	items []Item
}

var _ Item = (*Box)(nil)

// NewBox returns a box holding items.
func NewBox(items ...Item) *Box {
	return &Box{items: slices.Clone(items)}
}

func (b *Box) Add(item Item) { b.items = append(b.items, item) }

// Price is the sum of the box's contents.
func (b *Box) Price() decimal.Decimal {
	total := decimal.Zero
	for item := range b.All() {
		total = total.Add(item.Price())
	}
	return total
}

// All yields the direct children of the box.
func (b *Box) All() iter.Seq[Item] {
	return slices.Values(b.items)
}

// Run builds the same package as the bad example and prints its total.
func Run(_ context.Context, env demo.Env) error {
	pkg := NewBox(
		NewBox(Microphone{Cost: decimal.RequireFromString("29.99")}),
		NewBox(
			NewBox(Mouse{Cost: decimal.RequireFromString("18.00")}),
			NewBox(Keyboard{Cost: decimal.RequireFromString("40.00")}),
		),
	)

	fmt.Fprintf(env.Out, "Total Price: %s\n", pkg.Price().StringFixed(2))
	return nil
}
