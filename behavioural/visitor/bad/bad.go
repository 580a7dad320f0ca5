// Package bad exports a document by type-switching over untyped elements.
//
// Each element carries one method per export format, and every export walks
// the document with its own type switch. A new format touches every element
// type; a new element type touches every switch.
package bad

import (
	"context"
	"fmt"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
)

type Paragraph struct {
	Text string
}

func (p Paragraph) ToHTML() string   { return "<p>" + p.Text + "</p>" }
func (p Paragraph) TOCEntry() string { return "" }

type Heading struct {
	Text  string
	Level int
}

func (h Heading) ToHTML() string   { return fmt.Sprintf("<h%d>%s</h%d>", h.Level, h.Text, h.Level) }
func (h Heading) TOCEntry() string { return fmt.Sprintf("Level %d: %s", h.Level, h.Text) }

type Image struct {
	Source  string
	AltText string
}

func (i Image) ToHTML() string   { return fmt.Sprintf("<img src=%q alt=%q />", i.Source, i.AltText) }
func (i Image) TOCEntry() string { return "" }

func toHTML(doc []any) []string {
	var out []string
	for _, e := range doc {
		var s string
		switch v := e.(type) {
		case Paragraph:
			s = v.ToHTML()
		case Heading:
			s = v.ToHTML()
		case Image:
			s = v.ToHTML()
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toTOC(doc []any) []string {
	var out []string
	for _, e := range doc {
		var s string
		switch v := e.(type) {
		case Paragraph:
			s = v.TOCEntry()
		case Heading:
			s = v.TOCEntry()
		case Image:
			s = v.TOCEntry()
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Run prints the HTML export and table of contents of a small document.
func Run(_ context.Context, env demo.Env) error {
	doc := []any{
		Heading{Text: "Visitor Pattern", Level: 1},
		Paragraph{Text: "A behavioral design pattern."},
		Image{Source: "visitor.jpg", AltText: "Visitor UML"},
		Heading{Text: "Implementation", Level: 2},
	}

	fmt.Fprintln(env.Out, "HTML:\n"+strings.Join(toHTML(doc), "\n"))
	fmt.Fprintln(env.Out, "Table of Contents:\n"+strings.Join(toTOC(doc), "\n"))
	return nil
}
