package good_test

import (
	"testing"

	"github.com/sghaida/patterns/behavioural/visitor/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"HTML:",
		"<h5>Authors</h5>",
		"<p>....</p>",
		"<h1>Visitor Pattern</h1>",
		"<p>A behavioral design pattern.</p>",
		"<h3>Introduction</h3>",
		"<p>....</p>",
		"<h4>Example</h4>",
		"<p>....</p>",
		"<h3>Structure</h3>",
		`<img src="visitor.jpg" alt="Visitor UML" />`,
		"<h3>Implementation</h3>",
		"<p>....</p>",
		"Table of Contents:",
		"Level 1: Visitor Pattern",
		"Level 3: Introduction",
		"Level 3: Structure",
		"Level 3: Implementation",
	}, demotest.Run(t, good.Run))
}

// wordCounter is a Visitor[int] defined outside the package.
type wordCounter struct{}

func (wordCounter) Paragraph(p good.Paragraph) int { return len(p.Text) }
func (wordCounter) Heading(good.Heading) int       { return 0 }
func (wordCounter) Image(good.Image) int           { return -1 }

func TestVisit_NewOperationWithoutTouchingElements(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, good.Visit[int](good.Paragraph{Text: "abc"}, wordCounter{}))
	assert.Equal(t, 0, good.Visit[int](good.Heading{Text: "x", Level: 1}, wordCounter{}))
	assert.Equal(t, -1, good.Visit[int](good.Image{Source: "a.png"}, wordCounter{}))
}

func TestTOCVisitor_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		levels int
		want   []string
	}{
		{name: "one level", levels: 1, want: []string{"Level 1: Visitor Pattern"}},
		{name: "all levels", levels: 4, want: []string{
			"Level 5: Authors",
			"Level 1: Visitor Pattern",
			"Level 3: Introduction",
			"Level 4: Example",
			"Level 3: Structure",
			"Level 3: Implementation",
		}},
		{name: "zero levels", levels: 0, want: nil},
		{name: "negative levels", levels: -1, want: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			toc := good.NewTOCVisitor(tc.levels)
			for _, e := range good.SampleDocument() {
				e.Accept(toc)
			}

			var got []string
			for _, entry := range toc.Entries() {
				got = append(got, entry.String())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
