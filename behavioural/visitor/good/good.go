// Package good adds document operations as visitors instead of element methods.
//
// Elements implement a single Accept that dispatches to the matching Handler
// method (double dispatch). Visitor[T] lets an operation return a value per
// element; Visit adapts it to a Handler.
//
// Two visitors are provided:
//   - HTMLVisitor is stateless and renders each element
//   - TOCVisitor is stateful and collects headings, keeping only the N
//     lowest heading levels it has seen
package good

import (
	"context"
	"fmt"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sghaida/patterns/internal/demo"
)

// Element is a node of the document.
type Element interface {
	Accept(h Handler)
}

// Handler has one method per concrete element.
type Handler interface {
	VisitParagraph(p Paragraph)
	VisitHeading(h Heading)
	VisitImage(i Image)
}

type Paragraph struct {
	Text string
}

func (p Paragraph) Accept(h Handler) { h.VisitParagraph(p) }

type Heading struct {
	Text  string
	Level int
}

func (hd Heading) Accept(h Handler) { h.VisitHeading(hd) }

type Image struct {
	Source  string
	AltText string
}

func (i Image) Accept(h Handler) { h.VisitImage(i) }

// Visitor is an operation producing a T per element.
type Visitor[T any] interface {
	Paragraph(p Paragraph) T
	Heading(h Heading) T
	Image(i Image) T
}

// Visit applies v to e and returns its result.
func Visit[T any](e Element, v Visitor[T]) T {
	a := &adapter[T]{v: v}
	e.Accept(a)
	return a.result
}

type adapter[T any] struct {
	v      Visitor[T]
	result T
}

func (a *adapter[T]) VisitParagraph(p Paragraph) { a.result = a.v.Paragraph(p) }
func (a *adapter[T]) VisitHeading(h Heading)     { a.result = a.v.Heading(h) }
func (a *adapter[T]) VisitImage(i Image)         { a.result = a.v.Image(i) }

// HTMLVisitor renders elements as HTML.
type HTMLVisitor struct{}

func (HTMLVisitor) Paragraph(p Paragraph) string { return "<p>" + p.Text + "</p>" }

func (HTMLVisitor) Heading(h Heading) string {
	return fmt.Sprintf("<h%d>%s</h%d>", h.Level, h.Text, h.Level)
}

func (HTMLVisitor) Image(i Image) string {
	return fmt.Sprintf("<img src=%q alt=%q />", i.Source, i.AltText)
}

type TOCEntry struct {
	Text  string
	Level int
}

func (e TOCEntry) String() string { return fmt.Sprintf("Level %d: %s", e.Level, e.Text) }

// TOCVisitor collects table of contents entries.
type TOCVisitor struct {
	levels  int
	seen    mapset.Set[int]
	entries []TOCEntry
}

// NewTOCVisitor keeps entries of the levels lowest heading levels.
// A negative levels keeps nothing.
func NewTOCVisitor(levels int) *TOCVisitor {
	return &TOCVisitor{levels: max(levels, 0), seen: mapset.NewThreadUnsafeSet[int]()}
}

func (v *TOCVisitor) VisitParagraph(Paragraph) {}
func (v *TOCVisitor) VisitImage(Image)         {}

func (v *TOCVisitor) VisitHeading(h Heading) {
	v.seen.Add(h.Level)
	v.entries = append(v.entries, TOCEntry{Text: h.Text, Level: h.Level})
}

// Entries returns the collected entries in document order.
func (v *TOCVisitor) Entries() []TOCEntry {
	if v.seen.Cardinality() <= v.levels {
		return slices.Clone(v.entries)
	}
	levels := v.seen.ToSlice()
	slices.Sort(levels)
	keep := mapset.NewThreadUnsafeSet(levels[:v.levels]...)

	var out []TOCEntry
	for _, e := range v.entries {
		if keep.Contains(e.Level) {
			out = append(out, e)
		}
	}
	return out
}

// SampleDocument is the document the demo exports.
func SampleDocument() []Element {
	return []Element{
		Heading{Text: "Authors", Level: 5},
		Paragraph{Text: "...."},
		Heading{Text: "Visitor Pattern", Level: 1},
		Paragraph{Text: "A behavioral design pattern."},
		Heading{Text: "Introduction", Level: 3},
		Paragraph{Text: "...."},
		Heading{Text: "Example", Level: 4},
		Paragraph{Text: "...."},
		Heading{Text: "Structure", Level: 3},
		Image{Source: "visitor.jpg", AltText: "Visitor UML"},
		Heading{Text: "Implementation", Level: 3},
		Paragraph{Text: "...."},
	}
}

// Run exports the sample document as HTML and as a two-level TOC.
func Run(_ context.Context, env demo.Env) error {
	doc := SampleDocument()

	html := make([]string, 0, len(doc))
	for _, e := range doc {
		html = append(html, Visit[string](e, HTMLVisitor{}))
	}
	fmt.Fprintln(env.Out, "HTML:\n"+strings.Join(html, "\n"))

	toc := NewTOCVisitor(2)
	for _, e := range doc {
		e.Accept(toc)
	}
	lines := make([]string, 0)
	for _, entry := range toc.Entries() {
		lines = append(lines, entry.String())
	}
	fmt.Fprintln(env.Out, "Table of Contents:\n"+strings.Join(lines, "\n"))
	return nil
}
