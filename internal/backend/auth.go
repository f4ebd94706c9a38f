package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

// ErrIncompleteAuth is returned when the backend answers a login or registration
// without both a user and a token.
var ErrIncompleteAuth = errors.New("invalid response from server: missing user or token")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	var out model.AuthResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
		out:    &out,
	})
	if err != nil {
		return model.AuthResult{}, err
	}
	return out, checkAuth(out)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (model.AuthResult, error) {
	var out model.AuthResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   req,
		out:    &out,
	})
	if err != nil {
		return model.AuthResult{}, err
	}
	return out, checkAuth(out)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/logout"})
}

func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.do(ctx, call{method: http.MethodGet, path: "/auth/profile", out: &out})
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, user model.User) (model.User, error) {
	var out model.User
	err := c.do(ctx, call{method: http.MethodPut, path: "/auth/profile", body: user, out: &out})
	return out, err
}

func checkAuth(res model.AuthResult) error {
	if res.Token == "" || res.User.ID == "" {
		return ErrIncompleteAuth
	}
	return nil
}
