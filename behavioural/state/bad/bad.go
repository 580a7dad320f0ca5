// Package bad tracks a document's workflow with an enum and if/else ladders.
//
// Every operation re-checks the current state, so each new state or rule
// touches every method.
package bad

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

type State int

const (
	Draft State = iota
	Moderation
	Published
)

func (s State) String() string {
	switch s {
	case Draft:
		return "Draft"
	case Moderation:
		return "Moderation"
	case Published:
		return "Published"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Document struct {
	CurrentState State
	Out          io.Writer
}

func (d *Document) Publish(role UserRole) {
	if d.CurrentState == Draft {
		d.CurrentState = Moderation
	} else if d.CurrentState == Moderation {
		if role == Admin {
			d.CurrentState = Published
		} else {
			fmt.Fprintln(d.Out, "Moderation: ❌ Publish denied. Require admin privileges.")
		}
	} else if d.CurrentState == Published {
		fmt.Fprintln(d.Out, "Published: ✅ Already published. No action.")
	}
}

func (d *Document) Edit() {
	if d.CurrentState == Draft {
		fmt.Fprintln(d.Out, "Editing allowed.")
	} else if d.CurrentState == Moderation || d.CurrentState == Published {
		d.CurrentState = Draft
	}
}

// Run walks a published document back to draft and through review again.
func Run(_ context.Context, env demo.Env) error {
	doc := &Document{CurrentState: Published, Out: env.Out}
	fmt.Fprintf(env.Out, "Initial state: %s\n", doc.CurrentState)
	doc.Edit()
	fmt.Fprintf(env.Out, "State after edit: %s\n", doc.CurrentState)
	doc.Publish(Editor)
	fmt.Fprintf(env.Out, "State after publish by editor: %s\n", doc.CurrentState)
	doc.Publish(Editor)
	fmt.Fprintf(env.Out, "State after publish by editor again: %s\n", doc.CurrentState)
	doc.Publish(Admin)
	fmt.Fprintf(env.Out, "State after publish by admin: %s\n", doc.CurrentState)
	return nil
}
