package tui

import (
	"errors"
	"testing"

	"tasklite/internal/api"
	"tasklite/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func projectsModel(t *testing.T) appModel {
	t.Helper()
	m := newTestModel(t)
	m.view = viewProjects
	m.user = model.User{ID: "u1", Name: "U"}
	m.hasUser = true
	m.projects = sampleProjects()
	return m
}

func TestProjectCreated_TransportFailureFallsBackToLocalRecord(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	before := len(m.projects)

	m2Any, _ := m.Update(projectCreatedMsg{
		seq:         m.projectsSeq,
		name:        "Offline Project",
		description: "drafted while the backend was down",
		err:         errors.New("dial tcp: connection refused"),
	})
	m2 := m2Any.(appModel)

	if len(m2.projects) != before+1 {
		t.Fatalf("expected a locally-minted project; got %d projects", len(m2.projects))
	}
	local := m2.projects[0]
	if local.Name != "Offline Project" || local.ID == "" || local.UserID != "u1" {
		t.Fatalf("unexpected local project: %+v", local)
	}
	ts := m2.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "Project created (offline)" {
		t.Fatalf("expected the offline toast; got %+v", ts)
	}
}

func TestProjectCreated_BackendRejectionReopensDialog(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.projName.SetValue("Rejected")
	before := len(m.projects)

	m2Any, _ := m.Update(projectCreatedMsg{
		seq:  m.projectsSeq,
		name: "Rejected",
		err:  &api.APIError{Status: 422, Message: "name taken"},
	})
	m2 := m2Any.(appModel)

	if len(m2.projects) != before {
		t.Fatalf("expected no project added on an explicit rejection")
	}
	if m2.modal != modalNewProject {
		t.Fatalf("expected the dialog to reopen so the draft is not lost")
	}
	if m2.projName.Value() != "Rejected" {
		t.Fatalf("expected the draft to survive; got %q", m2.projName.Value())
	}
}

func TestProjectCreated_SuccessPrependsAndResetsDraft(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.projName.SetValue("Fresh")

	created := model.Project{ID: "p9", UserID: "u1", Name: "Fresh"}
	m2Any, _ := m.Update(projectCreatedMsg{seq: m.projectsSeq, name: "Fresh", project: created})
	m2 := m2Any.(appModel)

	if m2.projects[0].ID != "p9" {
		t.Fatalf("expected the new project first; got %s", m2.projects[0].ID)
	}
	if m2.projName.Value() != "" {
		t.Fatalf("expected the draft reset after success")
	}
}

func TestProjectDeleted_RemovesAndToasts(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m2Any, _ := m.Update(projectDeletedMsg{seq: m.projectsSeq, id: "p2"})
	m2 := m2Any.(appModel)

	for _, p := range m2.projects {
		if p.ID == "p2" {
			t.Fatalf("expected p2 removed")
		}
	}
	ts := m2.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "Project deleted" {
		t.Fatalf("expected a deletion toast; got %+v", ts)
	}
}

func TestProjectsLoaded_FailureEmptiesTheList(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.projCursor = 2

	m2Any, _ := m.Update(projectsLoadedMsg{seq: m.projectsSeq, err: errors.New("boom")})
	m2 := m2Any.(appModel)

	if len(m2.projects) != 0 {
		t.Fatalf("expected no stale display after a failed load; got %d projects", len(m2.projects))
	}
	if m2.projCursor != 0 {
		t.Fatalf("expected the cursor reset; got %d", m2.projCursor)
	}
	ts := m2.toasts.Toasts()
	if len(ts) != 1 || ts[0].Message != "Failed to load projects" {
		t.Fatalf("expected the load-failure toast; got %+v", ts)
	}
}

func TestProjectsLoaded_StaleSequenceIgnored(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.projectsSeq = 3

	m2Any, _ := m.Update(projectsLoadedMsg{seq: 2, projects: nil, err: errors.New("late")})
	m2 := m2Any.(appModel)

	if len(m2.projects) != len(sampleProjects()) {
		t.Fatalf("expected the stale completion to be dropped")
	}
	if len(m2.toasts.Toasts()) != 0 {
		t.Fatalf("expected no toast from a stale completion")
	}
}

func TestNewProjectModal_BlankNameBecomesUntitled(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.modal = modalNewProject
	m.projFocus = 0
	m.projName.SetValue("   ")

	m2Any, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := m2Any.(appModel)

	if cmd == nil {
		t.Fatalf("expected a create command")
	}
	if m2.modal != modalNone {
		t.Fatalf("expected the dialog to close on submit")
	}
}

func TestNewProjectModal_CancelKeepsDraft(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.modal = modalNewProject
	m.projName.SetValue("Half-typed")

	m2Any, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m2 := m2Any.(appModel)

	if m2.modal != modalNone {
		t.Fatalf("expected esc to close the dialog")
	}
	if m2.projName.Value() != "Half-typed" {
		t.Fatalf("expected the draft to survive cancel; got %q", m2.projName.Value())
	}
}

func TestSearchResetsCursor(t *testing.T) {
	t.Parallel()

	m := projectsModel(t)
	m.projCursor = 2

	m2Any, _ := m.Update(keyRunes("/"))
	m2 := m2Any.(appModel)
	if !m2.searching {
		t.Fatalf("expected search mode")
	}

	m3Any, _ := m2.Update(keyRunes("a"))
	m3 := m3Any.(appModel)
	if m3.projCursor != 0 {
		t.Fatalf("expected the cursor reset when the query changes; got %d", m3.projCursor)
	}
}
