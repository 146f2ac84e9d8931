package api

import (
	"context"
	"net/http"

	"tasklite/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the flat user+token payload both auth endpoints return.
type authResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (model.User, string, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return model.User{}, "", err
	}
	return model.User{ID: res.ID, Name: res.Name, Email: res.Email}, res.Token, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (model.User, string, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return model.User{}, "", err
	}
	return model.User{ID: res.ID, Name: res.Name, Email: res.Email}, res.Token, nil
}
