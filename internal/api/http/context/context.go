package context

import (
	"context"

	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/workspace"
)

type contextKey int

const (
	browserIDKey contextKey = iota
	workspaceKey
)

var _ model.ContextManager = (*Manager)(nil)

// Manager represents an HTTP request context manager.
// It stores the browser identity and its resolved workspace on the request context.
type Manager struct{}

// NewManager creates a new HTTP context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetBrowserIDToContext stores the browser id in the context.
//
// Parameters:
//   - ctx: The request context
//   - browserID: The opaque browser identifier taken from the cookie
//
// Returns a new context carrying the browser id.
func (m *Manager) SetBrowserIDToContext(ctx context.Context, browserID string) context.Context {
	return context.WithValue(ctx, browserIDKey, browserID)
}

// GetBrowserIDFromContext retrieves the browser id from the context.
//
// Parameters:
//   - ctx: The request context
//
// Returns the browser id and a boolean indicating if it was found.
func (m *Manager) GetBrowserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(browserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// SetWorkspaceToContext stores the resolved workspace in the context.
//
// Parameters:
//   - ctx: The request context
//   - ws: The workspace of the calling browser
//
// Returns a new context carrying the workspace.
func (m *Manager) SetWorkspaceToContext(ctx context.Context, ws *workspace.Workspace) context.Context {
	return context.WithValue(ctx, workspaceKey, ws)
}

// GetWorkspaceFromContext retrieves the workspace from the context.
//
// Parameters:
//   - ctx: The request context
//
// Returns the workspace and a boolean indicating if it was found.
func (m *Manager) GetWorkspaceFromContext(ctx context.Context) (*workspace.Workspace, bool) {
	ws, ok := ctx.Value(workspaceKey).(*workspace.Workspace)
	if !ok || ws == nil {
		return nil, false
	}
	return ws, true
}
