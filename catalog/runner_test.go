package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/sghaida/patterns/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printing(line string) demo.Func {
	return func(_ context.Context, env demo.Env) error {
		_, err := env.Out.Write([]byte(line + "\n"))
		return err
	}
}

func failing(err error) demo.Func {
	return func(context.Context, demo.Env) error { return err }
}

func TestRunner_Run_Success(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	logger, err := telemetry.NewLogger(&logs, "info", "json")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(reg)
	require.NoError(t, err)

	r := Runner{Env: demotest.Env(&out), Metrics: metrics, Logger: logger}
	e := Example{Pattern: "chain", Variant: "good", Run: printing("hello")}
	require.NoError(t, r.Run(context.Background(), e))

	assert.Equal(t, "=== chain/good ===\nhello\n", out.String())

	var msgs []string
	for _, line := range demotest.Lines(logs.String()) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "chain", rec["pattern"])
		assert.Equal(t, "good", rec["variant"])
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Equal(t, []string{"example started", "example finished"}, msgs)

	count, err := testutil.GatherAndCount(reg, "patterns_example_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunner_Run_WrapsFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var out bytes.Buffer
	r := Runner{Env: demotest.Env(&out)}

	err := r.Run(context.Background(), Example{Pattern: "x", Variant: "bad", Run: failing(boom)})
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "x/bad: boom")
}

func TestRunner_Run_RecoversPanic(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := Runner{Env: demotest.Env(&out)}
	e := Example{Pattern: "memento", Variant: "bad", Run: func(context.Context, demo.Env) error {
		panic("nothing to undo")
	}}

	err := r.Run(context.Background(), e)
	require.ErrorIs(t, err, ErrExamplePanic)
	assert.Contains(t, err.Error(), "nothing to undo")
}

func TestRunner_Run_NilFunc(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Runner{Env: demotest.Env(&out)}.Run(context.Background(), Example{Pattern: "p", Variant: "v"})
	assert.ErrorContains(t, err, "no Run func")
}

func TestRunner_RunAll_ContinuesAndJoins(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")
	var out bytes.Buffer
	r := Runner{Env: demotest.Env(&out)}

	err := r.RunAll(context.Background(), []Example{
		{Pattern: "one", Variant: "bad", Run: failing(errA)},
		{Pattern: "two", Variant: "good", Run: printing("ran")},
		{Pattern: "three", Variant: "bad", Run: failing(errB)},
	})

	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	assert.Equal(t, []string{
		"=== one/bad ===",
		"",
		"=== two/good ===",
		"ran",
		"",
		"=== three/bad ===",
	}, demotest.Lines(out.String()))
}

func TestRunner_RunAll_StopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	r := Runner{Env: demotest.Env(&out)}

	err := r.RunAll(ctx, []Example{
		{Pattern: "first", Variant: "good", Run: func(context.Context, demo.Env) error {
			cancel()
			return nil
		}},
		{Pattern: "second", Variant: "good", Run: printing("never")},
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "never")
}
