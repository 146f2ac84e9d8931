package tui

import (
	"errors"
	"strings"
	"time"

	"tasklite/internal/api"
	"tasklite/internal/model"
	"tasklite/internal/toast"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (m appModel) Init() tea.Cmd {
	if m.view == viewProjects {
		return tea.Batch(textinput.Blink, m.loadProjectsCmd())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authDoneMsg:
		m.authBusy = false
		if msg.err != nil {
			// Deliberately vague: do not disclose which field was wrong.
			if msg.register {
				m.authErr = "Registration failed."
			} else {
				m.authErr = "Login failed."
			}
			m.log.WithError(msg.err).Warn("auth failed")
			return m, nil
		}
		if err := m.sess.SetSession(msg.token, msg.user); err != nil {
			m.log.WithError(err).Warn("persist session")
		}
		m.user = msg.user
		m.hasUser = true
		m.authErr = ""
		m.passwordInput.SetValue("")
		m.view = viewProjects
		m.projectsSeq++
		return m, m.loadProjectsCmd()

	case projectsLoadedMsg:
		if msg.seq != m.projectsSeq {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			// No stale display: a failed load empties the list rather than
			// keeping the previous collection.
			m.projects = nil
			m.projCursor = 0
			m.log.WithError(msg.err).Warn("load projects")
			return m, m.pushToast(toast.Error, "Failed to load projects")
		}
		m.projects = msg.projects
		if m.projCursor >= len(m.visibleProjects()) {
			m.projCursor = 0
		}
		m.log.WithField("total", len(msg.projects)).Info("projects loaded")
		return m, nil

	case projectCreatedMsg:
		if msg.seq != m.projectsSeq {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			if api.IsTransport(msg.err) {
				// Backend unreachable: keep working with a locally-minted
				// record so the list stays usable offline.
				now := time.Now()
				local := model.Project{
					ID:          uuid.NewString(),
					UserID:      m.user.ID,
					Name:        msg.name,
					Description: msg.description,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				m.projects = append([]model.Project{local}, m.projects...)
				m.resetProjectDraft()
				m.log.WithError(msg.err).Warn("create project offline fallback")
				return m, m.pushToast(toast.Success, "Project created (offline)")
			}
			// Server rejected the draft; reopen the dialog so nothing is lost.
			m.modal = modalNewProject
			m.projFocus = 0
			m.projName.Focus()
			m.projDesc.Blur()
			m.log.WithError(msg.err).Warn("create project")
			return m, m.pushToast(toast.Error, "Failed to create project")
		}
		m.projects = append([]model.Project{msg.project}, m.projects...)
		m.resetProjectDraft()
		return m, m.pushToast(toast.Success, "Project created")

	case projectDeletedMsg:
		if msg.seq != m.projectsSeq {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			m.log.WithError(msg.err).Warn("delete project")
			return m, m.pushToast(toast.Error, "Failed to delete project")
		}
		kept := m.projects[:0]
		for _, p := range m.projects {
			if p.ID != msg.id {
				kept = append(kept, p)
			}
		}
		m.projects = kept
		if m.projCursor >= len(m.visibleProjects()) && m.projCursor > 0 {
			m.projCursor--
		}
		return m, m.pushToast(toast.Error, "Project deleted")

	case tasksLoadedMsg:
		if msg.gen != m.boardGen {
			return m, nil
		}
		m.boardLoading = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			m.boardErr = "Failed to load tasks"
			m.log.WithError(msg.err).Warn("load tasks")
			return m, nil
		}
		m.boardErr = ""
		// The endpoint returns every task for the user; scope to the open
		// project here.
		scoped := make([]model.Task, 0, len(msg.tasks))
		for _, t := range msg.tasks {
			if t.ProjectID == m.boardProjectID {
				scoped = append(scoped, t)
			}
		}
		m.tasks = scoped
		m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)
		m.log.WithFields(logrus.Fields{
			"total":    len(msg.tasks),
			"filtered": len(scoped),
			"project":  m.boardProjectID,
		}).Info("tasks loaded")
		return m, nil

	case taskMovedMsg:
		if msg.gen != m.boardGen {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			// Roll the whole collection back to the pre-move snapshot. The
			// revert itself is the only feedback; no toast.
			m.tasks = msg.snapshot
			m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)
			m.log.WithError(msg.err).Warn("move task")
			return m, nil
		}
		return m, m.pushToast(toast.Warning, "Task updated")

	case taskSavedMsg:
		if msg.gen != m.boardGen {
			return m, nil
		}
		m.form.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			// Create/edit failures surface nowhere beyond the log; the dialog
			// stays open with the draft intact.
			m.log.WithError(msg.err).Warn("save task")
			return m, nil
		}
		if m.modal == modalTaskForm {
			m.modal = modalNone
		}
		if msg.editing {
			for i := range m.tasks {
				if m.tasks[i].ID == msg.task.ID {
					m.tasks[i] = mergeTask(m.tasks[i], msg.task)
					break
				}
			}
			m.boardSel.ItemID = msg.task.ID
			m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)
			return m, m.pushToast(toast.Warning, "Task updated")
		}
		m.tasks = append([]model.Task{msg.task}, m.tasks...)
		m.boardSel.ItemID = msg.task.ID
		m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)
		return m, m.pushToast(toast.Success, "Task created")

	case taskDeletedMsg:
		if msg.gen != m.boardGen {
			return m, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrUnauthorized) {
				return m.resetToLogin()
			}
			// The confirm dialog is still open; nothing was removed.
			m.log.WithError(msg.err).Warn("delete task")
			return m, m.pushToast(toast.Error, "Failed to delete task")
		}
		if m.modal == modalConfirmDeleteTask && m.confirmForID == msg.id {
			m.modal = modalNone
			m.confirmForID = ""
		}
		kept := m.tasks[:0]
		for _, t := range m.tasks {
			if t.ID != msg.id {
				kept = append(kept, t)
			}
		}
		m.tasks = kept
		m.boardSel.ItemID = ""
		m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)
		return m, m.pushToast(toast.Error, "Task deleted")

	case toastExpiredMsg:
		// No-op when the toast was already dismissed.
		m.toasts.Dismiss(msg.id)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		switch m.view {
		case viewLogin, viewRegister:
			return m.updateAuth(msg)
		case viewProjects:
			return m.updateProjects(msg)
		case viewBoard:
			return m.updateBoard(msg)
		}
	}

	return m, nil
}

// resetToLogin tears down the authenticated UI after a 401: the persisted
// session is cleared and every in-flight completion is invalidated.
func (m appModel) resetToLogin() (tea.Model, tea.Cmd) {
	if err := m.sess.Clear(); err != nil {
		m.log.WithError(err).Warn("clear session")
	}
	m.hasUser = false
	m.user = model.User{}
	m.projects = nil
	m.tasks = nil
	m.projectsSeq++
	m.boardGen++
	m.modal = modalNone
	m.view = viewLogin
	m.authBusy = false
	m.authErr = "Session expired. Please sign in again."
	m.passwordInput.SetValue("")
	m.authFocus = 0
	m.focusAuthInputs()
	return m, textinput.Blink
}

func (m *appModel) focusAuthInputs() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passwordInput.Blur()

	fields := m.authFields()
	if m.authFocus < 0 || m.authFocus >= len(fields) {
		m.authFocus = 0
	}
	fields[m.authFocus].Focus()
}

// authFields returns the active form's inputs in tab order.
func (m *appModel) authFields() []*textinput.Model {
	if m.view == viewRegister {
		return []*textinput.Model{&m.nameInput, &m.emailInput, &m.passwordInput}
	}
	return []*textinput.Model{&m.emailInput, &m.passwordInput}
}

func (m appModel) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.authFocus = (m.authFocus + 1) % len(m.authFields())
		m.focusAuthInputs()
		return m, textinput.Blink
	case "shift+tab", "up":
		n := len(m.authFields())
		m.authFocus = (m.authFocus - 1 + n) % n
		m.focusAuthInputs()
		return m, textinput.Blink
	case "ctrl+r":
		// Toggle between sign-in and registration; field values survive.
		if m.view == viewLogin {
			m.view = viewRegister
		} else {
			m.view = viewLogin
		}
		m.authErr = ""
		m.authFocus = 0
		m.focusAuthInputs()
		return m, textinput.Blink
	case "enter":
		if m.authBusy {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if m.view == viewRegister {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" || email == "" || password == "" {
				m.authErr = "All fields are required."
				return m, nil
			}
			m.authBusy = true
			m.authErr = ""
			return m, m.registerCmd(name, email, password)
		}
		if email == "" || password == "" {
			m.authErr = "Email and password are required."
			return m, nil
		}
		m.authBusy = true
		m.authErr = ""
		return m, m.loginCmd(email, password)
	}

	fields := m.authFields()
	var cmd tea.Cmd
	*fields[m.authFocus], cmd = fields[m.authFocus].Update(msg)
	return m, cmd
}

func (m appModel) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.projCursor = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.projCursor = 0
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.projCursor > 0 {
			m.projCursor--
		}
		return m, nil
	case "down", "j":
		if m.projCursor < len(m.visibleProjects())-1 {
			m.projCursor++
		}
		return m, nil
	case "enter":
		visible := m.visibleProjects()
		if m.projCursor < 0 || m.projCursor >= len(visible) {
			return m, nil
		}
		return m.openBoard(visible[m.projCursor])
	case "n":
		m.modal = modalNewProject
		m.projFocus = 0
		m.projName.Focus()
		m.projDesc.Blur()
		return m, textinput.Blink
	case "d":
		visible := m.visibleProjects()
		if m.projCursor < 0 || m.projCursor >= len(visible) {
			return m, nil
		}
		return m, m.deleteProjectCmd(visible[m.projCursor].ID)
	case "s":
		m.sortKey = nextSortKey(m.sortKey)
		m.projCursor = 0
		return m, nil
	case "o":
		if m.sortDir == sortAsc {
			m.sortDir = sortDesc
		} else {
			m.sortDir = sortAsc
		}
		m.projCursor = 0
		return m, nil
	case "r":
		m.projectsSeq++
		return m, m.loadProjectsCmd()
	case "x":
		m.dismissOldestToast()
		return m, nil
	case "T":
		return m.toggleTheme()
	case "L":
		return m.logout()
	}
	return m, nil
}

func (m appModel) openBoard(p model.Project) (tea.Model, tea.Cmd) {
	m.view = viewBoard
	m.boardProjectID = p.ID
	m.boardProjectName = p.Name
	m.tasks = nil
	m.boardLoading = true
	m.boardErr = ""
	m.boardSel = boardSelection{}
	m.boardGen++
	return m, m.loadTasksCmd()
}

func (m appModel) toggleTheme() (tea.Model, tea.Cmd) {
	dark := !lipgloss.HasDarkBackground()
	lipgloss.SetHasDarkBackground(dark)
	theme := "light"
	if dark {
		theme = "dark"
	}
	if err := m.sess.SetTheme(theme); err != nil {
		m.log.WithError(err).Warn("persist theme")
	}
	return m, nil
}

func (m appModel) logout() (tea.Model, tea.Cmd) {
	if err := m.sess.Clear(); err != nil {
		m.log.WithError(err).Warn("clear session")
	}
	m.hasUser = false
	m.user = model.User{}
	m.projects = nil
	m.tasks = nil
	m.projectsSeq++
	m.boardGen++
	m.view = viewLogin
	m.authErr = ""
	m.passwordInput.SetValue("")
	m.authFocus = 0
	m.focusAuthInputs()
	return m, textinput.Blink
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := buildBoard(m.tasks)
	m.boardSel = b.clamp(m.boardSel)

	switch msg.String() {
	case "q", "esc":
		m.view = viewProjects
		m.boardGen++ // drop any in-flight board completions
		m.tasks = nil
		// The list reloads on every activation, like the board itself.
		m.projectsSeq++
		return m, m.loadProjectsCmd()
	case "up", "k":
		if m.boardSel.Item > 0 {
			m.boardSel.Item--
			m.boardSel.ItemID = ""
			m.boardSel = b.clamp(m.boardSel)
		}
		return m, nil
	case "down", "j":
		m.boardSel.Item++
		m.boardSel.ItemID = ""
		m.boardSel = b.clamp(m.boardSel)
		return m, nil
	case "left", "h":
		if m.boardSel.Col > 0 {
			m.boardSel.Col--
			m.boardSel.Item = 0
			m.boardSel.ItemID = ""
			m.boardSel = b.clamp(m.boardSel)
		}
		return m, nil
	case "right", "l":
		if m.boardSel.Col < len(b.cols)-1 {
			m.boardSel.Col++
			m.boardSel.Item = 0
			m.boardSel.ItemID = ""
			m.boardSel = b.clamp(m.boardSel)
		}
		return m, nil
	case "H", "shift+left":
		return m.moveSelectedTask(-1)
	case "L", "shift+right":
		return m.moveSelectedTask(1)
	case "n":
		m.openTaskForm(model.Task{}, false)
		return m, textinput.Blink
	case "e", "enter":
		if t, ok := b.selectedTask(m.boardSel); ok {
			m.openTaskForm(t, true)
			return m, textinput.Blink
		}
		return m, nil
	case "d":
		if t, ok := b.selectedTask(m.boardSel); ok {
			m.modal = modalConfirmDeleteTask
			m.confirmForID = t.ID
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "r":
		m.boardGen++
		m.boardLoading = true
		return m, m.loadTasksCmd()
	case "x":
		m.dismissOldestToast()
		return m, nil
	}
	return m, nil
}

// moveSelectedTask shifts the focused card one column left or right,
// optimistically: the collection is updated before the PATCH resolves, and
// restored from a snapshot if it fails.
func (m appModel) moveSelectedTask(dir int) (tea.Model, tea.Cmd) {
	b := buildBoard(m.tasks)
	t, ok := b.selectedTask(m.boardSel)
	if !ok {
		return m, nil
	}

	sel := b.clamp(m.boardSel)
	destCol := sel.Col + dir
	if destCol < 0 || destCol >= len(model.Statuses) {
		return m, nil
	}
	dest := model.Statuses[destCol]

	snapshot := make([]model.Task, len(m.tasks))
	copy(snapshot, m.tasks)

	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i].Status = dest
			m.tasks[i].UpdatedAt = time.Now()
			break
		}
	}
	m.boardSel.ItemID = t.ID
	m.boardSel = buildBoard(m.tasks).clamp(m.boardSel)

	return m, m.moveTaskCmd(t.ID, dest, snapshot)
}

func (m *appModel) resetProjectDraft() {
	m.projName.SetValue("")
	m.projDesc.SetValue("")
	m.projFocus = 0
}

// openTaskForm seeds the modal from an existing task (edit) or from the
// focused column (create).
func (m *appModel) openTaskForm(t model.Task, editing bool) {
	f := newTaskForm()
	f.editing = editing

	if editing {
		f.id = t.ID
		f.name.SetValue(t.Name)
		f.desc.SetValue(t.Description)
		f.tags.SetValue(strings.Join(t.Tags, ", "))
		f.due.SetValue(dateOnly(t.Due))
		f.status = t.Status
		f.priority = t.Priority
	} else {
		b := buildBoard(m.tasks)
		sel := b.clamp(m.boardSel)
		if sel.Col >= 0 && sel.Col < len(model.Statuses) {
			f.status = model.Statuses[sel.Col]
		}
	}

	f.focus = taskFocusName
	f.focusCurrent()
	m.form = f
	m.modal = modalTaskForm
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalNewProject:
		return m.updateNewProjectModal(msg)
	case modalTaskForm:
		return m.updateTaskFormModal(msg)
	case modalConfirmDeleteTask:
		return m.updateConfirmDeleteTask(msg)
	}
	m.modal = modalNone
	return m, nil
}

func (m appModel) updateNewProjectModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Close without resetting: the draft survives cancel.
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab":
		m.projFocus = 1 - m.projFocus
		if m.projFocus == 0 {
			m.projName.Focus()
			m.projDesc.Blur()
		} else {
			m.projName.Blur()
			m.projDesc.Focus()
		}
		return m, textinput.Blink
	case "ctrl+s":
		return m.submitNewProject()
	case "enter":
		// Enter in the description textarea inserts a newline instead.
		if m.projFocus == 0 {
			return m.submitNewProject()
		}
	}

	var cmd tea.Cmd
	if m.projFocus == 0 {
		m.projName, cmd = m.projName.Update(msg)
	} else {
		m.projDesc, cmd = m.projDesc.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitNewProject() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.projName.Value())
	if name == "" {
		name = "Untitled Project"
	}
	description := strings.TrimSpace(m.projDesc.Value())
	m.modal = modalNone
	return m, m.createProjectCmd(name, description)
}

func (m appModel) updateTaskFormModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		f.focus = (f.focus + 1) % taskFocusCount
		f.focusCurrent()
		return m, textinput.Blink
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + taskFocusCount) % taskFocusCount
		f.focusCurrent()
		return m, textinput.Blink
	case "left", "right":
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		switch f.focus {
		case taskFocusStatus:
			f.status = cycleStatus(f.status, step)
			return m, nil
		case taskFocusPriority:
			f.priority = cyclePriority(f.priority, step)
			return m, nil
		}
	case "ctrl+s":
		return m.submitTaskForm()
	case "enter":
		if f.focus != taskFocusDesc {
			return m.submitTaskForm()
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case taskFocusName:
		f.name, cmd = f.name.Update(msg)
	case taskFocusDesc:
		f.desc, cmd = f.desc.Update(msg)
	case taskFocusTags:
		f.tags, cmd = f.tags.Update(msg)
	case taskFocusDue:
		f.due, cmd = f.due.Update(msg)
	}
	return m, cmd
}

func cycleStatus(s model.Status, step int) model.Status {
	for i, v := range model.Statuses {
		if v == s {
			n := len(model.Statuses)
			return model.Statuses[(i+step+n)%n]
		}
	}
	return s
}

func cyclePriority(p model.Priority, step int) model.Priority {
	for i, v := range model.Priorities {
		if v == p {
			n := len(model.Priorities)
			return model.Priorities[(i+step+n)%n]
		}
	}
	return p
}

func (m appModel) submitTaskForm() (tea.Model, tea.Cmd) {
	f := &m.form
	if f.busy {
		return m, nil
	}

	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		// Invalid drafts never leave the dialog; no request is issued.
		f.err = "Name is required"
		f.focus = taskFocusName
		f.focusCurrent()
		return m, nil
	}

	var due *time.Time
	if v := strings.TrimSpace(f.due.Value()); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			f.err = "Due must be YYYY-MM-DD"
			f.focus = taskFocusDue
			f.focusCurrent()
			return m, nil
		}
		due = &parsed
	}

	description := f.desc.Value()
	tags := splitTagList(f.tags.Value())

	// The dialog stays open until the save lands; success closes it.
	f.err = ""
	f.busy = true

	if f.editing {
		status := f.status
		priority := f.priority
		patch := api.TaskPatch{
			Name:        &name,
			Description: &description,
			Tags:        &tags,
			Status:      &status,
			Priority:    &priority,
			Due:         due,
		}
		return m, m.updateTaskCmd(f.id, patch)
	}

	draft := api.TaskDraft{
		Name:        name,
		Description: description,
		Tags:        tags,
		Status:      f.status,
		Priority:    f.priority,
		Due:         due,
		ProjectID:   m.boardProjectID,
	}
	return m, m.createTaskCmd(draft)
}

func splitTagList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func (m appModel) updateConfirmDeleteTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.modal = modalNone
		m.confirmForID = ""
		return m, nil
	case "tab", "shift+tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		// Dialog stays open until the delete lands; a failure leaves it up.
		return m, m.deleteTaskCmd(m.confirmForID)
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m, m.deleteTaskCmd(m.confirmForID)
		}
		m.modal = modalNone
		m.confirmForID = ""
		return m, nil
	}
	return m, nil
}

// mergeTask folds an updated record into the local one, keeping local values
// for anything the response omitted.
func mergeTask(local, updated model.Task) model.Task {
	out := updated
	if out.ID == "" {
		out.ID = local.ID
	}
	if out.ProjectID == "" {
		out.ProjectID = local.ProjectID
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = local.CreatedAt
	}
	if out.UpdatedAt.IsZero() {
		out.UpdatedAt = local.UpdatedAt
	}
	return out
}
