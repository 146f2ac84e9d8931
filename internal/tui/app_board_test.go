package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"tasklite/internal/api"
	"tasklite/internal/model"
	"tasklite/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	sess := session.Store{Path: filepath.Join(t.TempDir(), "session.sqlite")}
	return newAppModel(Options{BaseURL: "http://localhost:3000", Session: sess})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func boardModel(t *testing.T) appModel {
	t.Helper()
	m := newTestModel(t)
	m.view = viewBoard
	m.boardProjectID = "p1"
	m.boardProjectName = "Project One"
	m.tasks = sampleTasks()
	m.boardSel = boardSelection{Col: 0, Item: 0, ItemID: "t1"}
	return m
}

func TestMoveSelectedTask_OptimisticThenRollback(t *testing.T) {
	t.Parallel()

	m := boardModel(t)

	// Move t1 from todo to in-progress; the collection updates before the
	// request resolves.
	m2Any, cmd := m.Update(keyRunes("L"))
	m2 := m2Any.(appModel)
	if cmd == nil {
		t.Fatalf("expected a move command to be issued")
	}
	var moved model.Task
	for _, task := range m2.tasks {
		if task.ID == "t1" {
			moved = task
		}
	}
	if moved.Status != model.StatusInProgress {
		t.Fatalf("expected t1 optimistically moved to in-progress; got %s", moved.Status)
	}
	if m2.boardSel.ItemID != "t1" {
		t.Fatalf("expected selection to follow the moved card; got %q", m2.boardSel.ItemID)
	}

	// Failure restores the snapshot wholesale.
	snapshot := sampleTasks()
	m3Any, _ := m2.Update(taskMovedMsg{
		gen:      m2.boardGen,
		id:       "t1",
		snapshot: snapshot,
		err:      errors.New("boom"),
	})
	m3 := m3Any.(appModel)
	for _, task := range m3.tasks {
		if task.ID == "t1" && task.Status != model.StatusTodo {
			t.Fatalf("expected rollback to restore t1 to todo; got %s", task.Status)
		}
	}
	if len(m3.toasts.Toasts()) != 0 {
		t.Fatalf("expected a silent revert with no toast; got %+v", m3.toasts.Toasts())
	}
}

func TestMoveSelectedTask_SuccessKeepsOptimisticState(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m2Any, _ := m.Update(keyRunes("L"))
	m2 := m2Any.(appModel)

	m3Any, _ := m2.Update(taskMovedMsg{gen: m2.boardGen, id: "t1", snapshot: sampleTasks()})
	m3 := m3Any.(appModel)

	for _, task := range m3.tasks {
		if task.ID == "t1" && task.Status != model.StatusInProgress {
			t.Fatalf("expected t1 to stay in-progress on success; got %s", task.Status)
		}
	}
	ts := m3.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "Task updated" {
		t.Fatalf("expected a 'Task updated' toast; got %+v", ts)
	}
}

func TestMoveSelectedTask_NoColumnPastTheEdge(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	_, cmd := m.Update(keyRunes("H"))
	if cmd != nil {
		t.Fatalf("expected no command when moving left from the first column")
	}
}

func TestTaskMovedMsg_StaleGenerationIgnored(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.boardGen = 5

	m2Any, _ := m.Update(taskMovedMsg{
		gen:      4, // board was reloaded since this request went out
		id:       "t1",
		snapshot: nil,
		err:      errors.New("late failure"),
	})
	m2 := m2Any.(appModel)

	if len(m2.tasks) != len(sampleTasks()) {
		t.Fatalf("expected stale completion to leave the collection alone")
	}
	if len(m2.toasts.Toasts()) != 0 {
		t.Fatalf("expected no toast for a stale completion")
	}
}

func TestTasksLoadedMsg_ScopesToOpenProject(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.boardLoading = true
	fetched := append(sampleTasks(), model.Task{ID: "x1", ProjectID: "other", Status: model.StatusTodo})

	m2Any, _ := m.Update(tasksLoadedMsg{gen: m.boardGen, tasks: fetched})
	m2 := m2Any.(appModel)

	if m2.boardLoading {
		t.Fatalf("expected loading to clear")
	}
	for _, task := range m2.tasks {
		if task.ProjectID != "p1" {
			t.Fatalf("expected only p1 tasks on the board; got %s", task.ProjectID)
		}
	}
	if len(m2.tasks) != 4 {
		t.Fatalf("expected four scoped tasks; got %d", len(m2.tasks))
	}
}

func TestUnauthorized_ResetsToLoginAndClearsSession(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	if err := m.sess.SetSession("tok", model.User{ID: "u1", Name: "U"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	m2Any, _ := m.Update(tasksLoadedMsg{gen: m.boardGen, err: api.ErrUnauthorized})
	m2 := m2Any.(appModel)

	if m2.view != viewLogin {
		t.Fatalf("expected login view after 401; got %v", m2.view)
	}
	if _, ok := m2.sess.Token(); ok {
		t.Fatalf("expected the persisted token to be cleared")
	}
	if m2.authErr == "" {
		t.Fatalf("expected an explanation on the login screen")
	}
}

func TestTaskForm_EmptyNameNeverLeavesTheDialog(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.openTaskForm(model.Task{}, false)

	m2Any, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := m2Any.(appModel)

	if cmd != nil {
		t.Fatalf("expected no request for an invalid draft")
	}
	if m2.modal != modalTaskForm {
		t.Fatalf("expected the dialog to stay open")
	}
	if m2.form.err == "" {
		t.Fatalf("expected a validation message")
	}
}

func TestTaskForm_NewTaskDefaultsToFocusedColumn(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.boardSel = boardSelection{Col: 1, Item: 0, ItemID: "t3"}
	m.openTaskForm(model.Task{}, false)

	if m.form.status != model.StatusInProgress {
		t.Fatalf("expected the draft to start in the focused column; got %s", m.form.status)
	}
}

func TestTaskForm_BadDueDateRejected(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.openTaskForm(model.Task{}, false)
	m.form.name.SetValue("Valid name")
	m.form.due.SetValue("03/15/2026")

	m2Any, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := m2Any.(appModel)

	if cmd != nil {
		t.Fatalf("expected no request for a malformed due date")
	}
	if m2.modal != modalTaskForm || m2.form.err == "" {
		t.Fatalf("expected the dialog open with a due-date message")
	}
}

func TestTaskSave_SuccessClosesDialogAndPrepends(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.openTaskForm(model.Task{}, false)
	m.form.busy = true

	created := model.Task{ID: "t9", ProjectID: "p1", Name: "New", Status: model.StatusTodo}
	m2Any, _ := m.Update(taskSavedMsg{gen: m.boardGen, task: created})
	m2 := m2Any.(appModel)

	if m2.modal != modalNone {
		t.Fatalf("expected the dialog closed after a successful create")
	}
	if m2.tasks[0].ID != "t9" {
		t.Fatalf("expected the created task prepended; got %s", m2.tasks[0].ID)
	}
	if m2.boardSel.ItemID != "t9" {
		t.Fatalf("expected the new card selected; got %q", m2.boardSel.ItemID)
	}
}

func TestTaskSave_FailureIsSilentAndKeepsDialog(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.openTaskForm(model.Task{}, false)
	m.form.name.SetValue("Draft")
	m.form.busy = true
	before := len(m.tasks)

	m2Any, _ := m.Update(taskSavedMsg{gen: m.boardGen, err: errors.New("500")})
	m2 := m2Any.(appModel)

	if m2.modal != modalTaskForm {
		t.Fatalf("expected the dialog to stay open on failure")
	}
	if m2.form.busy {
		t.Fatalf("expected busy cleared so the user can retry")
	}
	if len(m2.tasks) != before {
		t.Fatalf("expected no board mutation")
	}
	if len(m2.toasts.Toasts()) != 0 {
		t.Fatalf("expected no toast for a failed save")
	}
}

func TestTaskEdit_MergePreservesOmittedFields(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.form = newTaskForm()
	m.form.editing = true

	// Response without timestamps keeps the local ones.
	updated := model.Task{ID: "t1", Name: "Renamed", Status: model.StatusTodo}
	m2Any, _ := m.Update(taskSavedMsg{gen: m.boardGen, editing: true, task: updated})
	m2 := m2Any.(appModel)

	for _, task := range m2.tasks {
		if task.ID == "t1" {
			if task.Name != "Renamed" {
				t.Fatalf("expected the rename applied; got %q", task.Name)
			}
			if task.ProjectID != "p1" {
				t.Fatalf("expected the local project id preserved; got %q", task.ProjectID)
			}
		}
	}
}

func TestConfirmDelete_FailureKeepsDialogOpen(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.modal = modalConfirmDeleteTask
	m.confirmForID = "t1"
	m.confirmFocus = confirmFocusConfirm

	m2Any, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := m2Any.(appModel)
	if cmd == nil {
		t.Fatalf("expected a delete command")
	}
	if m2.modal != modalConfirmDeleteTask {
		t.Fatalf("expected the dialog open while the delete is in flight")
	}

	m3Any, _ := m2.Update(taskDeletedMsg{gen: m2.boardGen, id: "t1", err: errors.New("500")})
	m3 := m3Any.(appModel)
	if m3.modal != modalConfirmDeleteTask {
		t.Fatalf("expected the dialog to stay open on failure")
	}
	if len(m3.tasks) != len(sampleTasks()) {
		t.Fatalf("expected no mutation on failure")
	}
}

func TestConfirmDelete_SuccessRemovesAndCloses(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	m.modal = modalConfirmDeleteTask
	m.confirmForID = "t1"

	m2Any, _ := m.Update(taskDeletedMsg{gen: m.boardGen, id: "t1"})
	m2 := m2Any.(appModel)

	if m2.modal != modalNone {
		t.Fatalf("expected the dialog closed after a successful delete")
	}
	for _, task := range m2.tasks {
		if task.ID == "t1" {
			t.Fatalf("expected t1 removed")
		}
	}
	ts := m2.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "Task deleted" {
		t.Fatalf("expected a deletion toast; got %+v", ts)
	}
}

func TestBoardEsc_ReturnsToProjectsAndReloads(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	prevSeq := m.projectsSeq
	prevGen := m.boardGen

	m2Any, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := m2Any.(appModel)

	if m2.view != viewProjects {
		t.Fatalf("expected the project list; got %v", m2.view)
	}
	if cmd == nil {
		t.Fatalf("expected a project reload on re-entry")
	}
	if m2.projectsSeq != prevSeq+1 {
		t.Fatalf("expected the projects sequence bumped; got %d", m2.projectsSeq)
	}
	if m2.boardGen != prevGen+1 {
		t.Fatalf("expected in-flight board completions invalidated; got %d", m2.boardGen)
	}
}

func TestDismissKey_RemovesOldestToast(t *testing.T) {
	t.Parallel()

	m := boardModel(t)
	first := m.toasts.Push("first", "success", 0)
	m.toasts.Push("second", "success", 0)

	m2Any, _ := m.Update(keyRunes("x"))
	m2 := m2Any.(appModel)

	ts := m2.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "second" {
		t.Fatalf("expected only the newer toast to remain; got %+v", ts)
	}

	// The expiry tick pending for the dismissed toast no-ops.
	m3Any, _ := m2.Update(toastExpiredMsg{id: first.ID})
	m3 := m3Any.(appModel)
	if len(m3.toasts.Toasts()) != 1 {
		t.Fatalf("expected the stale expiry to change nothing")
	}
}

func TestToastExpiredMsg_DismissesByID(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	pushed := m.toasts.Push("hello", "success", 0)

	m2Any, _ := m.Update(toastExpiredMsg{id: pushed.ID})
	m2 := m2Any.(appModel)

	if len(m2.toasts.Toasts()) != 0 {
		t.Fatalf("expected the expired toast to be removed")
	}

	// A second expiry for the same id is harmless.
	if _, cmd := m2.Update(toastExpiredMsg{id: pushed.ID}); cmd != nil {
		t.Fatalf("expected no follow-up command")
	}
}
