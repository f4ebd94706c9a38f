package session

import "github.com/dtroode/medsetu-storefront/internal/model"

// State is a point-in-time view of the session.
type State struct {
	User            *model.User
	Token           string
	IsAuthenticated bool
	IsInitialized   bool
}

// UserID returns the current user id or "" when nobody is signed in.
func (s State) UserID() model.ID {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// Role returns the current user role or "" when nobody is signed in.
func (s State) Role() model.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// snapshot holds the persisted fields. IsInitialized is never persisted:
// a fresh load always starts uninitialized.
type snapshot struct {
	User            *model.User `json:"user"`
	Token           *string     `json:"token"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

func toSnapshot(s State) snapshot {
	snap := snapshot{User: s.User, IsAuthenticated: s.IsAuthenticated}
	if s.Token != "" {
		token := s.Token
		snap.Token = &token
	}
	return snap
}

// consistent reports whether a persisted snapshot satisfies
// isAuthenticated => user != nil && token != nil, and carries no half identity.
func (s snapshot) consistent() bool {
	hasUser := s.User != nil
	hasToken := s.Token != nil && *s.Token != ""

	if s.IsAuthenticated {
		return hasUser && hasToken
	}
	return !hasUser && !hasToken
}
