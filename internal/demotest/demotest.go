// Package demotest runs examples in tests and hands back what they printed.
package demotest

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/stretchr/testify/require"
)

// FixedTime is the instant every test Env's clock reports.
var FixedTime = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// Env returns an Env printing into buf with no latency and a fixed clock.
func Env(buf *bytes.Buffer) demo.Env {
	return demo.Env{Out: buf, Clock: clock.NewFixed(FixedTime)}.Normalize()
}

// Run executes fn and returns its output split into lines (trailing newline dropped).
func Run(t *testing.T, fn demo.Func) []string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, fn(context.Background(), Env(&buf)))
	return Lines(buf.String())
}

// Lines splits s into lines, dropping one trailing newline.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
