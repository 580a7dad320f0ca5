// Package bad undoes editor changes by reaching into the editor's fields.
//
// The editor exposes its state publicly so History can copy it in and out.
// Any caller can now corrupt the editor, and History has to know its layout.
package bad

import (
	"context"
	"fmt"

	"github.com/sghaida/patterns/internal/demo"
)

// TextEditor exposes everything.
type TextEditor struct {
	Text           string
	CursorPosition int
}

type TextEditorState struct {
	Text           string
	CursorPosition int
}

type History struct {
	states []TextEditorState
}

func (h *History) SaveState(editor *TextEditor) {
	h.states = append(h.states, TextEditorState{Text: editor.Text, CursorPosition: editor.CursorPosition})
}

// Undo writes the last saved state back into editor. It panics when nothing was saved.
func (h *History) Undo(editor *TextEditor) {
	prev := h.states[len(h.states)-1]
	editor.Text = prev.Text
	editor.CursorPosition = prev.CursorPosition
}

// Run saves, edits and undoes.
func Run(_ context.Context, env demo.Env) error {
	editor := &TextEditor{}
	history := &History{}

	editor.Text = "Hello, World!"
	history.SaveState(editor)

	editor.Text = "Hello, Universe!"
	history.Undo(editor)
	fmt.Fprintln(env.Out, editor.Text)
	return nil
}
