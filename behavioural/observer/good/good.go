// Package good decouples the stock market from whoever listens to it.
//
// StockMarket publishes through a generic Subject:
//   - observers implement Observer[T] and subscribe themselves
//   - Subscribe returns an unsubscribe func that is safe to call more than once
//   - notifications go to a snapshot of the observers, so observers may
//     unsubscribe while being notified
//   - Shutdown completes and drops every observer
package good

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/sghaida/patterns/internal/console"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

// Observer receives a stream of T.
type Observer[T any] interface {
	OnNext(v T)
	OnError(err error)
	OnCompleted()
}

// Subject fans values out to its observers. The zero value is ready to use.
// Observers must be comparable.
type Subject[T any] struct {
	mu        sync.Mutex
	observers []Observer[T]
}

// Subscribe registers o and returns a func that removes it again.
// Subscribing the same observer twice has no effect.
func (s *Subject[T]) Subscribe(o Observer[T]) (unsubscribe func()) {
	s.mu.Lock()
	if !slices.Contains(s.observers, o) {
		s.observers = append(s.observers, o)
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.observers = slices.DeleteFunc(s.observers, func(x Observer[T]) bool { return x == o })
		})
	}
}

// Len is the number of subscribed observers.
func (s *Subject[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *Subject[T]) snapshot() []Observer[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.observers)
}

// Publish sends v to every observer.
func (s *Subject[T]) Publish(v T) {
	for _, o := range s.snapshot() {
		o.OnNext(v)
	}
}

// Fail sends err to every observer.
func (s *Subject[T]) Fail(err error) {
	for _, o := range s.snapshot() {
		o.OnError(err)
	}
}

// Complete notifies and removes every observer.
func (s *Subject[T]) Complete() {
	s.mu.Lock()
	observers := s.observers
	s.observers = nil
	s.mu.Unlock()

	for _, o := range observers {
		o.OnCompleted()
	}
}

type StockPriceUpdate struct {
	Symbol   string
	OldPrice decimal.Decimal
	NewPrice decimal.Decimal
}

// StockMarket is the publisher.
type StockMarket struct {
	Subject[StockPriceUpdate]

	mu     sync.Mutex
	prices map[string]decimal.Decimal
}

func NewStockMarket() *StockMarket {
	return &StockMarket{prices: map[string]decimal.Decimal{}}
}

// UpdateStockPrice records the new price and publishes the change.
func (m *StockMarket) UpdateStockPrice(symbol string, price decimal.Decimal) {
	m.mu.Lock()
	old := m.prices[symbol]
	m.prices[symbol] = price
	m.mu.Unlock()

	m.Publish(StockPriceUpdate{Symbol: symbol, OldPrice: old, NewPrice: price})
}

// Shutdown tells every observer the feed has ended.
func (m *StockMarket) Shutdown() { m.Complete() }

// StockPriceDisplay prints every update.
type StockPriceDisplay struct {
	Out io.Writer
}

func (d *StockPriceDisplay) OnNext(u StockPriceUpdate) {
	fmt.Fprintf(d.Out, "[Display] %s: %s → %s\n", u.Symbol, console.Money(u.OldPrice), console.Money(u.NewPrice))
}

func (d *StockPriceDisplay) OnError(err error) { fmt.Fprintf(d.Out, "[Display] Error: %v\n", err) }
func (d *StockPriceDisplay) OnCompleted()      { fmt.Fprintln(d.Out, "[Display] Monitoring stopped.") }

// StockAlertService prints new listings and moves of at least Threshold.
type StockAlertService struct {
	Out       io.Writer
	Threshold decimal.Decimal
}

// DefaultThreshold is a 5% move.
var DefaultThreshold = decimal.RequireFromString("0.05")

func NewStockAlertService(out io.Writer) *StockAlertService {
	return &StockAlertService{Out: out, Threshold: DefaultThreshold}
}

func (a *StockAlertService) OnNext(u StockPriceUpdate) {
	if u.OldPrice.IsZero() {
		fmt.Fprintf(a.Out, "[Alert] New stock: %s @ %s\n", u.Symbol, console.Money(u.NewPrice))
		return
	}
	change := u.NewPrice.Sub(u.OldPrice).Abs().Div(u.OldPrice)
	if change.GreaterThanOrEqual(a.Threshold) {
		fmt.Fprintf(a.Out, "[Alert] %s changed by %s!\n", u.Symbol, console.Percent(change))
	}
}

func (a *StockAlertService) OnError(err error) { fmt.Fprintf(a.Out, "[Alert] Error: %v\n", err) }
func (a *StockAlertService) OnCompleted()      { fmt.Fprintln(a.Out, "[Alert] Service stopped.") }

// Run subscribes a display and an alert service, publishes, shuts down and
// publishes once more to nobody.
func Run(_ context.Context, env demo.Env) error {
	market := NewStockMarket()
	display := &StockPriceDisplay{Out: env.Out}
	alerts := NewStockAlertService(env.Out)

	func() {
		defer market.Subscribe(display)()
		defer market.Subscribe(alerts)()

		market.UpdateStockPrice("AAPL", decimal.NewFromInt(150))
		market.UpdateStockPrice("AAPL", decimal.NewFromInt(158))
		market.UpdateStockPrice("MSFT", decimal.NewFromInt(300))

		market.Shutdown()
	}()

	market.UpdateStockPrice("AAPL", decimal.NewFromInt(160))
	return nil
}
