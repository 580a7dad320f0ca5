package good_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sghaida/patterns/behavioural/chain/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(amount string) good.PurchaseRequest {
	return good.PurchaseRequest{Amount: decimal.RequireFromString(amount)}
}

func TestRun(t *testing.T) {
	t.Parallel()

	lines := demotest.Run(t, good.Run)
	require.Len(t, lines, 3)
	assert.Equal(t, "Manager approved: $500.00", lines[0])
	assert.Contains(t, lines[1], "Director approved: $2")
	assert.Contains(t, lines[2], "Vice President approved: $10")
}

func TestHandle_FirstCapableTierWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	manager := good.NewLink[good.PurchaseRequest](&buf, good.Manager(&buf))
	manager.SetNext(good.NewLink[good.PurchaseRequest](&buf, good.Director(&buf)))

	require.NoError(t, manager.Handle(context.Background(), request("999.99")))
	assert.Equal(t, "Manager approved: $999.99\n", buf.String())

	buf.Reset()
	require.NoError(t, manager.Handle(context.Background(), request("1000.50")))
	assert.Equal(t, "Director approved: $1,000.50\n", buf.String())
}

func TestHandle_FallsOffTheChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	manager := good.NewLink[good.PurchaseRequest](&buf, good.Manager(&buf))
	manager.SetNext(good.NewLink[good.PurchaseRequest](&buf, good.Director(&buf)))

	err := manager.Handle(context.Background(), request("7000"))
	require.ErrorIs(t, err, good.ErrUnhandled)
	assert.Equal(t, "No handler could process the request.\n", buf.String())
}

func TestSetNext_ReturnsNextForFluentChaining(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := good.NewLink[good.PurchaseRequest](&buf, good.Manager(&buf))
	b := good.NewLink[good.PurchaseRequest](&buf, good.Director(&buf))

	assert.Same(t, b, a.SetNext(b))
}

// failingApprover errors out of CanHandle.
type failingApprover struct{ err error }

func (f failingApprover) CanHandle(context.Context, string) (bool, error) { return false, f.err }
func (f failingApprover) Process(context.Context, string) error         { return nil }

func TestHandle_PropagatesApproverErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	l := good.NewLink[string](&bytes.Buffer{}, failingApprover{err: boom})

	require.ErrorIs(t, l.Handle(context.Background(), "anything"), boom)
}
