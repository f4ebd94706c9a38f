package model

import "context"

// ContextManager carries the browser identity through request contexts.
type ContextManager interface {
	SetBrowserIDToContext(ctx context.Context, browserID string) context.Context
	GetBrowserIDFromContext(ctx context.Context) (string, bool)
}
