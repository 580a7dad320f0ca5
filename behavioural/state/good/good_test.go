package good_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/patterns/behavioural/state/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Initial state: DraftState",
		"State after publish by Editor: ModerationState",
		"Moderation: ❌ Publish denied. Require admin privileges.",
		"State after publish by Editor: ModerationState",
		"State after publish by Admin: PublishedState",
		"State after edit: DraftState",
	}, demotest.Run(t, good.Run))
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps func(d *good.Document)
		want  string
		line  string
	}{
		{
			name:  "edit in draft stays draft",
			steps: func(d *good.Document) { d.Edit() },
			want:  "DraftState",
			line:  "Draft: Editing enabled.",
		},
		{
			name:  "edit in moderation returns to draft",
			steps: func(d *good.Document) { d.Publish(good.Editor); d.Edit() },
			want:  "DraftState",
		},
		{
			name: "publish when published is a no-op",
			steps: func(d *good.Document) {
				d.Publish(good.Admin)
				d.Publish(good.Admin)
				d.Publish(good.Admin)
			},
			want: "PublishedState",
			line: "Published: ✅ Already published. No action.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			doc := good.NewDocument(&buf)
			tc.steps(doc)

			assert.Equal(t, tc.want, doc.State().Name())
			if tc.line != "" {
				assert.Contains(t, demotest.Lines(buf.String()), tc.line)
			}
		})
	}
}
