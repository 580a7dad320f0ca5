// Package good gives each workflow state its own type.
//
// The document delegates Publish and Edit to its current state; a state
// decides whether to move the document on by calling TransitionTo.
package good

import (
	"context"
	"fmt"
	"io"

	"github.com/sghaida/patterns/internal/demo"
)

type UserRole int

const (
	Admin UserRole = iota
	Editor
)

func (r UserRole) String() string {
	if r == Admin {
		return "Admin"
	}
	return "Editor"
}

// DocumentState is one step of the review workflow.
type DocumentState interface {
	Name() string
	Publish(role UserRole)
	Edit()
}

// Document is the context.
type Document struct {
	state DocumentState
	out   io.Writer
}

// NewDocument starts in DraftState.
func NewDocument(out io.Writer) *Document {
	d := &Document{out: out}
	d.state = &DraftState{doc: d}
	fmt.Fprintf(out, "Initial state: %s\n", d.state.Name())
	return d
}

func (d *Document) State() DocumentState { return d.state }

func (d *Document) TransitionTo(s DocumentState) { d.state = s }

func (d *Document) Publish(role UserRole) {
	d.state.Publish(role)
	fmt.Fprintf(d.out, "State after publish by %s: %s\n", role, d.state.Name())
}

func (d *Document) Edit() {
	d.state.Edit()
	fmt.Fprintf(d.out, "State after edit: %s\n", d.state.Name())
}

type DraftState struct{ doc *Document }

func (s *DraftState) Name() string      { return "DraftState" }
func (s *DraftState) Publish(UserRole) { s.doc.TransitionTo(&ModerationState{doc: s.doc}) }
func (s *DraftState) Edit()             { fmt.Fprintln(s.doc.out, "Draft: Editing enabled.") }

type ModerationState struct{ doc *Document }

func (s *ModerationState) Name() string { return "ModerationState" }

func (s *ModerationState) Publish(role UserRole) {
	if role != Admin {
		fmt.Fprintln(s.doc.out, "Moderation: ❌ Publish denied. Require admin privileges.")
		return
	}
	s.doc.TransitionTo(&PublishedState{doc: s.doc})
}

func (s *ModerationState) Edit() { s.doc.TransitionTo(&DraftState{doc: s.doc}) }

type PublishedState struct{ doc *Document }

func (s *PublishedState) Name() string { return "PublishedState" }

func (s *PublishedState) Publish(UserRole) {
	fmt.Fprintln(s.doc.out, "Published: ✅ Already published. No action.")
}

func (s *PublishedState) Edit() { s.doc.TransitionTo(&DraftState{doc: s.doc}) }

// Run submits a draft, gets it published by an admin, then reopens it.
func Run(_ context.Context, env demo.Env) error {
	doc := NewDocument(env.Out)
	doc.Publish(Editor)
	doc.Publish(Editor)
	doc.Publish(Admin)
	doc.Edit()
	return nil
}
