// Package good approves purchases through a chain of independent handlers.
//
// Each approver only answers two questions: can I handle this request, and
// how do I process it. The chain decides who goes next, so tiers can be
// added, removed or reordered without touching the others.
package good

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/console"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

// ErrUnhandled is returned when the request falls off the end of the chain.
var ErrUnhandled = errors.New("chain: no handler could process the request")

// Approver is one tier of the chain.
type Approver[R any] interface {
	CanHandle(ctx context.Context, req R) (bool, error)
	Process(ctx context.Context, req R) error
}

// Link holds an approver and the next link to try.
type Link[R any] struct {
	approver Approver[R]
	next     *Link[R]
	out      io.Writer
}

// NewLink wraps approver. out receives the "no handler" notice.
func NewLink[R any](out io.Writer, approver Approver[R]) *Link[R] {
	return &Link[R]{approver: approver, out: out}
}

// SetNext sets the link tried after l and returns next so calls can be chained:
//
//	manager.SetNext(director).SetNext(vp)
func (l *Link[R]) SetNext(next *Link[R]) *Link[R] {
	l.next = next
	return next
}

// Handle processes req here or passes it down the chain.
func (l *Link[R]) Handle(ctx context.Context, req R) error {
	ok, err := l.approver.CanHandle(ctx, req)
	if err != nil {
		return err
	}
	if ok {
		return l.approver.Process(ctx, req)
	}
	if l.next != nil {
		return l.next.Handle(ctx, req)
	}
	fmt.Fprintln(l.out, "No handler could process the request.")
	return ErrUnhandled
}

// PurchaseRequest is what travels down the chain.
type PurchaseRequest struct {
	Amount decimal.Decimal
}

// TierApprover approves requests up to Limit. A tier with NoLimit approves everything.
type TierApprover struct {
	Title   string
	Limit   decimal.Decimal
	NoLimit bool
	Out     io.Writer
}

// CanHandle implements Approver.
func (a TierApprover) CanHandle(_ context.Context, req PurchaseRequest) (bool, error) {
	return a.NoLimit || req.Amount.LessThanOrEqual(a.Limit), nil
}

// Process implements Approver.
func (a TierApprover) Process(_ context.Context, req PurchaseRequest) error {
	fmt.Fprintf(a.Out, "%s approved: %s\n", a.Title, console.Money(req.Amount))
	return nil
}

// Manager approves up to 1000.
func Manager(out io.Writer) TierApprover {
	return TierApprover{Title: "Manager", Limit: decimal.NewFromInt(1000), Out: out}
}

// Director approves up to 5000.
func Director(out io.Writer) TierApprover {
	return TierApprover{Title: "Director", Limit: decimal.NewFromInt(5000), Out: out}
}

// VicePresident approves everything.
func VicePresident(out io.Writer) TierApprover {
	return TierApprover{Title: "Vice President", NoLimit: true, Out: out}
}

// Run builds manager -> director -> vice president and submits 500, 2500 and 10000.
func Run(ctx context.Context, env demo.Env) error {
	manager := NewLink[PurchaseRequest](env.Out, Manager(env.Out))
	director := NewLink[PurchaseRequest](env.Out, Director(env.Out))
	vp := NewLink[PurchaseRequest](env.Out, VicePresident(env.Out))

	manager.SetNext(director).SetNext(vp)

	for _, amount := range []int64{500, 2500, 10000} {
		if err := manager.Handle(ctx, PurchaseRequest{Amount: decimal.NewFromInt(amount)}); err != nil {
			return err
		}
	}
	return nil
}
