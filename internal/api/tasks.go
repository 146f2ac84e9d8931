package api

import (
	"context"
	"net/http"
	"time"

	"tasklite/internal/model"
)

type tasksEnvelope struct {
	Tasks []model.Task `json:"tasks"`
}

// TaskDraft is the create payload. Status defaults to the column the user
// started from; Due, when set, is a full timestamp (the form's date-only
// input is widened before it gets here).
type TaskDraft struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Status      model.Status   `json:"status"`
	Priority    model.Priority `json:"priority"`
	Due         *time.Time     `json:"due,omitempty"`
	ProjectID   string         `json:"projectId"`
}

// TaskPatch carries only the fields to change; nil fields are omitted from
// the PATCH body.
type TaskPatch struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Tags        *[]string       `json:"tags,omitempty"`
	Status      *model.Status   `json:"status,omitempty"`
	Priority    *model.Priority `json:"priority,omitempty"`
	Due         *time.Time      `json:"due,omitempty"`
}

// ListTasks fetches every task visible to the session. The endpoint is not
// project-scoped server-side; boards filter client-side by project id.
func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var env tasksEnvelope
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, draft TaskDraft) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPost, "/tasks", draft, &t)
	return t, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (model.Task, error) {
	var t model.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+id, patch, &t)
	return t, err
}

// UpdateTaskStatus patches status alone (the board-move mutation).
func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status model.Status) (model.Task, error) {
	return c.UpdateTask(ctx, id, TaskPatch{Status: &status})
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}
