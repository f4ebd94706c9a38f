package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dtroode/medsetu-storefront/internal/logger"
)

// RoleHeader carries the caller role for the backend role guard.
const RoleHeader = "x-role"

// NewTransport creates the shared HTTP transport for the backend API.
func NewTransport(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// Client is the typed backend API bound to one browser's credentials.
type Client struct {
	http   *resty.Client
	creds  Credentials
	logger *logger.Logger
}

// New creates a Client. creds may be nil for anonymous calls.
func New(transport *resty.Client, creds Credentials, logger *logger.Logger) *Client {
	return &Client{http: transport, creds: creds, logger: logger}
}

type call struct {
	method string
	path   string
	params map[string]string
	query  map[string]string
	body   any
	file   *upload
	out    any
}

// upload is a single file sent as a multipart form part.
type upload struct {
	param string
	name  string
	r     io.Reader
}

func (c *Client) do(ctx context.Context, cl call) error {
	req := c.http.R().SetContext(ctx)

	if c.creds != nil {
		tok, err := c.creds.Token(ctx)
		if err != nil {
			return err
		}
		if tok != "" {
			req.SetAuthToken(tok)
		}

		role, err := c.creds.Role(ctx)
		if err != nil {
			return err
		}
		if role != "" {
			req.SetHeader(RoleHeader, string(role))
		}
	}

	if cl.params != nil {
		req.SetPathParams(cl.params)
	}
	for k, v := range cl.query {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if cl.file != nil {
		req.SetFileReader(cl.file.param, cl.file.name, cl.file.r)
	}
	if cl.out != nil {
		req.SetResult(cl.out)
	}
	var apiErr errorBody
	req.SetError(&apiErr)

	resp, err := req.Execute(cl.method, cl.path)
	if err != nil {
		return fmt.Errorf("failed to call backend %s %s: %w", cl.method, cl.path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized && c.creds != nil {
		c.logger.Info("Backend client: unauthorized, dropping auth token",
			"path", cl.path)
		if err := c.creds.Forget(ctx); err != nil {
			c.logger.Error("Backend client: failed to drop auth token",
				"error", err.Error())
		}
	}

	if resp.IsError() {
		msg := apiErr.text()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		c.logger.Debug("Backend client: request failed",
			"method", cl.method,
			"path", cl.path,
			"status", resp.StatusCode(),
			"message", msg)
		return &Error{Status: resp.StatusCode(), Message: msg}
	}

	return nil
}
