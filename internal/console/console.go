// Package console holds the small pieces every demo shares when writing its narrative:
// a writer that is safe to use from several goroutines and money/percent formatting
// matching the en-US currency style the demos print.
package console

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SyncWriter serializes writes to an underlying writer so lines printed by
// concurrent receivers never interleave mid-line.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w. Wrapping an existing *SyncWriter returns it unchanged.
func NewSyncWriter(w io.Writer) *SyncWriter {
	if sw, ok := w.(*SyncWriter); ok {
		return sw
	}
	return &SyncWriter{w: w}
}

// Write implements io.Writer.
func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Money renders d as US currency with thousands grouping, e.g. $10,000.00.
// Amounts are rounded half away from zero to cents without going through float64.
func Money(d decimal.Decimal) string {
	sign, digits := fixed2(d)
	return sign + "$" + digits
}

// Percent renders a ratio as a percentage with two decimals and thousands
// grouping, e.g. 0.0533 -> 5.33%, 12.3456 -> 1,234.56%.
func Percent(ratio decimal.Decimal) string {
	sign, digits := fixed2(ratio.Mul(decimal.NewFromInt(100)))
	return sign + digits + "%"
}

// fixed2 rounds d to two places and returns its sign and grouped digits.
// A value that rounds to zero has no sign.
func fixed2(d decimal.Decimal) (sign, digits string) {
	d = d.Round(2)
	if d.IsNegative() {
		sign = "-"
	}
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	return sign, groupThousands(whole) + "." + frac
}

// groupThousands inserts en-US separators into a string of decimal digits.
func groupThousands(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
	}
	// beyond int64: group by hand
	var b strings.Builder
	lead := len(whole) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(whole[:lead])
	for i := lead; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	return b.String()
}
