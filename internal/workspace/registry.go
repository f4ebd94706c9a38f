package workspace

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Registry keeps recently used workspaces in memory. Evicted workspaces are
// disposed; their state is rebuilt from storage on the next request.
type Registry struct {
	deps  Deps
	cache *expirable.LRU[string, *Workspace]
	opens singleflight.Group
}

// NewRegistry creates a Registry holding at most size workspaces, each for at most ttl
// after it was opened.
func NewRegistry(deps Deps, size int, ttl time.Duration) *Registry {
	r := &Registry{deps: deps}
	r.cache = expirable.NewLRU[string, *Workspace](size, func(key string, w *Workspace) {
		deps.Logger.Debug("Workspace registry: evicting workspace",
			"browser_id", w.ID)
		w.Dispose()
	}, ttl)
	return r
}

// Get returns the workspace of id, opening it on first use. Concurrent first
// requests of one identity share a single open; other identities are not blocked.
func (r *Registry) Get(ctx context.Context, id Identity) (*Workspace, error) {
	key := id.key()
	if w, ok := r.cache.Get(key); ok {
		return w, nil
	}

	v, err, _ := r.opens.Do(key, func() (any, error) {
		if w, ok := r.cache.Get(key); ok {
			return w, nil
		}

		w, err := Open(context.WithoutCancel(ctx), id, r.deps)
		if err != nil {
			r.deps.Logger.Error("Workspace registry: failed to open workspace",
				"browser_id", id.BrowserID,
				"error", err.Error())
			return nil, err
		}

		r.cache.Add(key, w)
		r.deps.Logger.Debug("Workspace registry: opened workspace",
			"browser_id", id.BrowserID)
		return w, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Workspace), nil
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close disposes every live workspace.
func (r *Registry) Close() {
	r.cache.Purge()
}
