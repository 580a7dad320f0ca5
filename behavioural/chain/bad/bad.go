// Package bad approves purchases with a hard-wired if/else ladder.
//
// The processor knows every approver, constructs them on each request and
// decides the order itself. Adding a new approval tier means editing
// ProcessRequest.
package bad

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

// Manager approves up to 1000.
type Manager struct{}

func (Manager) Approve(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(decimal.NewFromInt(1000))
}

// Director approves up to 5000.
type Director struct{}

func (Director) Approve(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(decimal.NewFromInt(5000))
}

// VicePresident approves everything.
type VicePresident struct{}

func (VicePresident) Approve(decimal.Decimal) bool { return true }

// PurchaseProcessor routes a request through every approver it knows about.
type PurchaseProcessor struct {
	Out io.Writer
}

// ProcessRequest prints who approved amount.
func (p PurchaseProcessor) ProcessRequest(amount decimal.Decimal) {
	manager := Manager{}
	director := Director{}
	vicePresident := VicePresident{}

	if manager.Approve(amount) {
		fmt.Fprintln(p.Out, "Request approved by Manager.")
	} else if director.Approve(amount) {
		fmt.Fprintln(p.Out, "Request approved by Director.")
	} else if vicePresident.Approve(amount) {
		fmt.Fprintln(p.Out, "Request approved by Vice President.")
	} else {
		fmt.Fprintln(p.Out, "Request denied.")
	}
}

// Run processes 500, 2000 and 7000.
func Run(_ context.Context, env demo.Env) error {
	p := PurchaseProcessor{Out: env.Out}

	p.ProcessRequest(decimal.NewFromInt(500))
	p.ProcessRequest(decimal.NewFromInt(2000))
	p.ProcessRequest(decimal.NewFromInt(7000))
	return nil
}
