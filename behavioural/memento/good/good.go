// Package good snapshots editor state into opaque mementos.
//
// Only the Editor can create or read a snapshot's contents. History (the
// caretaker) just stacks them for undo and redo without knowing what is inside.
package good

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/demo"
)

// Memento is a read-only snapshot of an Editor.
type Memento interface {
	Text() string
	CursorPosition() int

	// metadata
	Name() string
	ID() uuid.UUID
}

// Editor is the originator.
type Editor struct {
	text   []rune
	cursor int
	clock  clock.Clock
}

func NewEditor(clk clock.Clock) *Editor {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Editor{clock: clk}
}

func (e *Editor) Text() string        { return string(e.text) }
func (e *Editor) CursorPosition() int { return e.cursor }

// Type inserts text at the cursor and moves the cursor past it.
func (e *Editor) Type(text string) {
	ins := []rune(text)
	out := make([]rune, 0, len(e.text)+len(ins))
	out = append(out, e.text[:e.cursor]...)
	out = append(out, ins...)
	out = append(out, e.text[e.cursor:]...)
	e.text = out
	e.cursor += len(ins)
}

// MoveCursor places the cursor at pos, clamped to the text.
func (e *Editor) MoveCursor(pos int) {
	e.cursor = min(max(pos, 0), len(e.text))
}

// Save captures the current state.
func (e *Editor) Save() Memento {
	return snapshot{
		id:      uuid.New(),
		text:    string(e.text),
		cursor:  e.cursor,
		created: e.clock.Now(),
	}
}

// Restore rolls the editor back to m. A nil memento is ignored.
func (e *Editor) Restore(m Memento) {
	if m == nil {
		return
	}
	e.text = []rune(m.Text())
	e.cursor = m.CursorPosition()
}

type snapshot struct {
	id      uuid.UUID
	text    string
	cursor  int
	created time.Time
}

func (s snapshot) Text() string        { return s.text }
func (s snapshot) CursorPosition() int { return s.cursor }
func (s snapshot) Name() string        { return "TextEditor - " + s.created.Format(time.DateTime) }
func (s snapshot) ID() uuid.UUID       { return s.id }

// History is the caretaker.
type History struct {
	undo []Memento
	redo []Memento
}

// Save pushes m and forgets anything that could have been redone.
func (h *History) Save(m Memento) {
	h.undo = append(h.undo, m)
	h.redo = h.redo[:0]
}

// Undo steps back one snapshot and returns the one to restore.
// The first snapshot is the initial state and is never undone.
func (h *History) Undo() (Memento, bool) {
	if len(h.undo) <= 1 {
		return nil, false
	}
	current := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return h.undo[len(h.undo)-1], true
}

// Redo reapplies the most recently undone snapshot.
func (h *History) Redo() (Memento, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	m := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, m)
	return m, true
}

func printState(env demo.Env, e *Editor) {
	fmt.Fprintf(env.Out, "Text: %s, Cursor Position: %d\n", e.Text(), e.CursorPosition())
}

// Run types twice, saving after each, then undoes once.
func Run(_ context.Context, env demo.Env) error {
	editor := NewEditor(env.Clock)
	var history History

	editor.Type("Hello, World!")
	history.Save(editor.Save())

	editor.Type(" How are you?")
	history.Save(editor.Save())
	printState(env, editor)

	if m, ok := history.Undo(); ok {
		fmt.Fprintf(env.Out, "Undoing to: %s\n", m.Name())
		editor.Restore(m)
		printState(env, editor)
	}
	return nil
}
