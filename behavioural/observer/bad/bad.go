// Package bad has the stock market call its listeners by concrete type.
//
// The market constructs the display and the alert service itself and calls
// each by name, so adding a new listener means editing StockMarket.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/console"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

type StockPriceUpdate struct {
	Symbol   string
	OldPrice decimal.Decimal
	NewPrice decimal.Decimal
}

type StockMarket struct {
	display StockPriceDisplay
	alerts  StockAlertService
	prices  map[string]decimal.Decimal
}

func NewStockMarket(out io.Writer) *StockMarket {
	return &StockMarket{
		display: StockPriceDisplay{Out: out},
		alerts:  StockAlertService{Out: out},
		prices:  map[string]decimal.Decimal{},
	}
}

func (m *StockMarket) UpdateStockPrice(symbol string, price decimal.Decimal) {
	old := m.prices[symbol]
	m.prices[symbol] = price

	update := StockPriceUpdate{Symbol: symbol, OldPrice: old, NewPrice: price}
	m.display.UpdateDisplay(update)
	m.alerts.TriggerAlert(update)
}

type StockPriceDisplay struct {
	Out io.Writer
}

func (d StockPriceDisplay) UpdateDisplay(u StockPriceUpdate) {
	fmt.Fprintf(d.Out, "[Display] %s: %s → %s\n", u.Symbol, console.Money(u.OldPrice), console.Money(u.NewPrice))
}

type StockAlertService struct {
	Out io.Writer
}

var threshold = decimal.RequireFromString("0.05")

func (a StockAlertService) TriggerAlert(u StockPriceUpdate) {
	if u.OldPrice.IsZero() {
		fmt.Fprintf(a.Out, "[Alert] New stock: %s @ %s\n", u.Symbol, console.Money(u.NewPrice))
		return
	}
	change := u.NewPrice.Sub(u.OldPrice).Abs().Div(u.OldPrice)
	if change.GreaterThanOrEqual(threshold) {
		fmt.Fprintf(a.Out, "[Alert] %s changed by %s!\n", u.Symbol, console.Percent(change))
	}
}

// Run publishes three price updates.
func Run(_ context.Context, env demo.Env) error {
	m := NewStockMarket(env.Out)
	m.UpdateStockPrice("AAPL", decimal.NewFromInt(150))
	m.UpdateStockPrice("AAPL", decimal.NewFromInt(158))
	m.UpdateStockPrice("MSFT", decimal.NewFromInt(300))
	return nil
}
