package tui

import (
	"tasklite/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewProjects
	viewBoard
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewProject
	modalTaskForm
	modalConfirmDeleteTask
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// authDoneMsg completes a login or registration round-trip.
type authDoneMsg struct {
	register bool
	user     model.User
	token    string
	err      error
}

// projectsLoadedMsg carries the project list fetch result. seq guards against
// completions from a superseded load (view re-entered, logout).
type projectsLoadedMsg struct {
	seq      int
	projects []model.Project
	err      error
}

type projectCreatedMsg struct {
	seq int
	// name/description echo the submitted draft so the offline fallback can
	// mint a local record when the backend was unreachable.
	name        string
	description string
	project     model.Project
	err         error
}

type projectDeletedMsg struct {
	seq int
	id  string
	err error
}

// tasksLoadedMsg carries the board fetch result. gen is the board generation:
// completions for a torn-down or reloaded board are dropped.
type tasksLoadedMsg struct {
	gen   int
	tasks []model.Task
	err   error
}

// taskMovedMsg completes an optimistic column move. snapshot is the full
// pre-move collection; rollback restores it wholesale rather than patching
// the single task back.
type taskMovedMsg struct {
	gen      int
	id       string
	snapshot []model.Task
	err      error
}

type taskSavedMsg struct {
	gen     int
	editing bool
	task    model.Task
	err     error
}

type taskDeletedMsg struct {
	gen int
	id  string
	err error
}

// toastExpiredMsg fires when a toast's display duration elapses. Dismissal by
// id is a no-op if the user already closed it.
type toastExpiredMsg struct {
	id string
}
