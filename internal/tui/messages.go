package tui

import (
	"github.com/alexisbeaulieu97/flexforge/internal/editor"
	"github.com/alexisbeaulieu97/flexforge/internal/publish"
)

// Mode determines which screen handles keys.
type Mode int

const (
	ModeEdit Mode = iota
	ModeInput
	ModeCode
)

// ExportDoneMsg reports the outcome of writing the export artifacts.
type ExportDoneMsg struct {
	Dir    string
	Result *publish.Result
	Err    error
}

// LayoutSavedMsg reports the outcome of saving the layout document.
type LayoutSavedMsg struct {
	Path string
	Err  error
}

// noticeQueue collects editor notices until Update shows them. It is shared
// by pointer so every copy of Model sees the same queue.
type noticeQueue struct {
	pending []editor.Notice
}

func (q *noticeQueue) Notify(n editor.Notice) {
	q.pending = append(q.pending, n)
}

func (q *noticeQueue) drain() (editor.Notice, bool) {
	if len(q.pending) == 0 {
		return editor.Notice{}, false
	}
	last := q.pending[len(q.pending)-1]
	q.pending = q.pending[:0]
	return last, true
}
