// Package access decides whether the current session may reach a role-gated area.
package access

import (
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

// Outcome is the kind of guard decision.
type Outcome int

const (
	// Pending means startup validation has not finished; nothing should be decided yet.
	Pending Outcome = iota
	// Allow lets the request through.
	Allow
	// Login sends an anonymous caller to the login page.
	Login
	// Redirect sends a caller with the wrong role to their own home.
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case Login:
		return "login"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// LoginPath is where unauthenticated callers are sent.
const LoginPath = "/login"

// Decision is the guard result. Location is set for Login and Redirect.
type Decision struct {
	Outcome  Outcome
	Location string
}

// HomePath returns the landing page of a role.
func HomePath(role model.Role) string {
	switch role {
	case model.RoleStoreOperator:
		return "/admin"
	case model.RolePlatformAdmin:
		return "/platform-admin"
	default:
		return "/"
	}
}

// Check evaluates state against the allowed roles. No roles means any
// authenticated user is allowed.
func Check(state session.State, allowed ...model.Role) Decision {
	if !state.IsInitialized {
		return Decision{Outcome: Pending}
	}
	if !state.IsAuthenticated || state.User == nil {
		return Decision{Outcome: Login, Location: LoginPath}
	}
	if len(allowed) == 0 {
		return Decision{Outcome: Allow}
	}

	role := state.Role()
	for _, r := range allowed {
		if r == role {
			return Decision{Outcome: Allow}
		}
	}
	return Decision{Outcome: Redirect, Location: HomePath(role)}
}
