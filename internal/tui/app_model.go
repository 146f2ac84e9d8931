package tui

import (
	"io"

	"tasklite/internal/api"
	"tasklite/internal/model"
	"tasklite/internal/session"
	"tasklite/internal/toast"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sirupsen/logrus"
)

const (
	maxContentW  = 96
	minDetailW   = 60
	boardColGapW = 2
)

type appModel struct {
	client *api.Client
	sess   session.Store
	toasts *toast.Center
	log    *logrus.Logger

	width  int
	height int

	view  view
	modal modalKind

	user    model.User
	hasUser bool

	// Auth forms (login + register share the inputs).
	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	authFocus     int
	authErr       string
	authBusy      bool

	// Project list.
	projects    []model.Project
	searchInput textinput.Model
	searching   bool
	sortKey     sortKey
	sortDir     sortDir
	projCursor  int
	projectsSeq int

	// New-project modal. The draft survives cancel; it is reset only after a
	// successful (or offline-fallback) create.
	projName  textinput.Model
	projDesc  textarea.Model
	projFocus int

	// Board.
	boardProjectID   string
	boardProjectName string
	tasks            []model.Task
	boardLoading     bool
	boardErr         string
	boardGen         int
	boardSel         boardSelection

	// Task form modal (create + edit).
	form         taskForm
	confirmForID string
	confirmFocus confirmModalFocus
}

// taskForm is the modal draft for task create/edit.
type taskForm struct {
	editing bool
	id      string

	name textinput.Model
	desc textarea.Model
	tags textinput.Model
	due  textinput.Model // date-only, YYYY-MM-DD

	status   model.Status
	priority model.Priority

	focus int
	err   string
	busy  bool
}

const (
	taskFocusName = iota
	taskFocusDesc
	taskFocusTags
	taskFocusStatus
	taskFocusPriority
	taskFocusDue
	taskFocusCount
)

func newAppModel(opts Options) appModel {
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	m := appModel{
		client:  api.New(opts.BaseURL, opts.Session),
		sess:    opts.Session,
		toasts:  toast.NewCenter(),
		log:     log,
		view:    viewLogin,
		sortKey: sortByUpdated,
		sortDir: sortDesc,
	}

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Your name"
	m.nameInput.CharLimit = 120
	m.nameInput.Width = 40

	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "you@example.com"
	m.emailInput.CharLimit = 200
	m.emailInput.Width = 40

	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "Your password"
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.CharLimit = 200
	m.passwordInput.Width = 40

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search projects..."
	m.searchInput.CharLimit = 200
	m.searchInput.Width = 32

	m.projName = textinput.New()
	m.projName.Placeholder = "Project name"
	m.projName.CharLimit = 200
	m.projName.Width = 40

	m.projDesc = textarea.New()
	m.projDesc.Placeholder = "What is this project about?"
	m.projDesc.CharLimit = 0
	m.projDesc.SetWidth(56)
	m.projDesc.SetHeight(4)
	m.projDesc.ShowLineNumbers = false

	m.form = newTaskForm()

	// A persisted session skips straight to the project list; expiry is
	// discovered reactively on the first 401.
	if _, ok := m.sess.Token(); ok {
		if u, ok := m.sess.User(); ok {
			m.user = u
			m.hasUser = true
		}
		m.view = viewProjects
	} else {
		m.emailInput.Focus()
	}

	return m
}

func newTaskForm() taskForm {
	f := taskForm{
		status:   model.StatusTodo,
		priority: model.PriorityMedium,
	}

	f.name = textinput.New()
	f.name.Placeholder = "Task name"
	f.name.CharLimit = 200
	f.name.Width = 40

	f.desc = textarea.New()
	f.desc.Placeholder = "Describe the task (optional)"
	f.desc.CharLimit = 0
	f.desc.SetWidth(56)
	f.desc.SetHeight(4)
	f.desc.ShowLineNumbers = false

	f.tags = textinput.New()
	f.tags.Placeholder = "Comma-separated tags"
	f.tags.CharLimit = 400
	f.tags.Width = 40

	f.due = textinput.New()
	f.due.Placeholder = "YYYY-MM-DD"
	f.due.CharLimit = 10
	f.due.Width = 12

	return f
}

func (f *taskForm) blurAll() {
	f.name.Blur()
	f.desc.Blur()
	f.tags.Blur()
	f.due.Blur()
}

func (f *taskForm) focusCurrent() {
	f.blurAll()
	switch f.focus {
	case taskFocusName:
		f.name.Focus()
	case taskFocusDesc:
		f.desc.Focus()
	case taskFocusTags:
		f.tags.Focus()
	case taskFocusDue:
		f.due.Focus()
	}
}
