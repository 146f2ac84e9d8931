package tui

import (
	"context"
	"time"

	"tasklite/internal/api"
	"tasklite/internal/model"
	"tasklite/internal/toast"

	tea "github.com/charmbracelet/bubbletea"
)

// Network calls run as commands off the update loop; each completion message
// carries the seq/gen it was issued under so stale results (view torn down,
// board reloaded, session replaced) are dropped instead of mutating state
// that no longer exists.

const requestTimeout = 30 * time.Second

func (m *appModel) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, token, err := client.Login(ctx, email, password)
		return authDoneMsg{register: false, user: user, token: token, err: err}
	}
}

func (m *appModel) registerCmd(name, email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, token, err := client.Register(ctx, name, email, password)
		return authDoneMsg{register: true, user: user, token: token, err: err}
	}
}

func (m *appModel) loadProjectsCmd() tea.Cmd {
	client := m.client
	seq := m.projectsSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		projects, err := client.ListProjects(ctx)
		return projectsLoadedMsg{seq: seq, projects: projects, err: err}
	}
}

func (m *appModel) createProjectCmd(name, description string) tea.Cmd {
	client := m.client
	seq := m.projectsSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		p, err := client.CreateProject(ctx, name, description)
		return projectCreatedMsg{seq: seq, name: name, description: description, project: p, err: err}
	}
}

func (m *appModel) deleteProjectCmd(id string) tea.Cmd {
	client := m.client
	seq := m.projectsSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := client.DeleteProject(ctx, id)
		return projectDeletedMsg{seq: seq, id: id, err: err}
	}
}

func (m *appModel) loadTasksCmd() tea.Cmd {
	client := m.client
	gen := m.boardGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tasks, err := client.ListTasks(ctx)
		return tasksLoadedMsg{gen: gen, tasks: tasks, err: err}
	}
}

// moveTaskCmd issues the status-only PATCH behind an optimistic column move.
// snapshot is the full pre-move collection for wholesale rollback.
func (m *appModel) moveTaskCmd(id string, dest model.Status, snapshot []model.Task) tea.Cmd {
	client := m.client
	gen := m.boardGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := client.UpdateTaskStatus(ctx, id, dest)
		return taskMovedMsg{gen: gen, id: id, snapshot: snapshot, err: err}
	}
}

func (m *appModel) createTaskCmd(draft api.TaskDraft) tea.Cmd {
	client := m.client
	gen := m.boardGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		t, err := client.CreateTask(ctx, draft)
		return taskSavedMsg{gen: gen, editing: false, task: t, err: err}
	}
}

func (m *appModel) updateTaskCmd(id string, patch api.TaskPatch) tea.Cmd {
	client := m.client
	gen := m.boardGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		t, err := client.UpdateTask(ctx, id, patch)
		return taskSavedMsg{gen: gen, editing: true, task: t, err: err}
	}
}

func (m *appModel) deleteTaskCmd(id string) tea.Cmd {
	client := m.client
	gen := m.boardGen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := client.DeleteTask(ctx, id)
		return taskDeletedMsg{gen: gen, id: id, err: err}
	}
}

// expireToastCmd schedules the automatic removal of a toast.
func expireToastCmd(t toast.Toast) tea.Cmd {
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: t.ID}
	})
}
