package api

import (
	"context"
	"net/http"

	"tasklite/internal/model"
)

type projectsEnvelope struct {
	Projects []model.Project `json:"projects"`
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var env projectsEnvelope
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &env); err != nil {
		return nil, err
	}
	return env.Projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (model.Project, error) {
	var p model.Project
	err := c.do(ctx, http.MethodPost, "/projects", createProjectRequest{Name: name, Description: description}, &p)
	return p, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}
