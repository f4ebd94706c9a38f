package service

import (
	"context"
	"fmt"

	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

// Auth runs the login, registration and logout flows of one browser.
type Auth struct {
	api     AuthAPI
	session SessionManager
	logger  *logger.Logger
}

func NewAuth(api AuthAPI, session SessionManager, logger *logger.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		logger:  logger,
	}
}

func (a *Auth) Login(ctx context.Context, email, password string) (session.State, error) {
	a.logger.Debug("Auth service: logging in",
		"email", email)

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Info("Auth service: backend rejected login",
			"email", email,
			"error", err.Error())
		return session.State{}, fmt.Errorf("failed to login: %w", err)
	}

	return a.establish(ctx, res)
}

func (a *Auth) Register(ctx context.Context, req backend.RegisterRequest) (session.State, error) {
	if req.Role == "" {
		req.Role = model.RoleCustomer
	}

	a.logger.Debug("Auth service: registering",
		"email", req.Email,
		"role", req.Role)

	res, err := a.api.Register(ctx, req)
	if err != nil {
		a.logger.Info("Auth service: backend rejected registration",
			"email", req.Email,
			"error", err.Error())
		return session.State{}, fmt.Errorf("failed to register: %w", err)
	}

	return a.establish(ctx, res)
}

func (a *Auth) establish(ctx context.Context, res model.AuthResult) (session.State, error) {
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		a.logger.Error("Auth service: failed to persist session",
			"user_id", res.User.ID,
			"error", err.Error())
		return a.session.State(), fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info("Auth service: signed in",
		"user_id", res.User.ID,
		"role", res.User.Role)
	return a.session.State(), nil
}

// Logout tells the backend best-effort and always clears the local session.
func (a *Auth) Logout(ctx context.Context) error {
	if a.session.State().IsAuthenticated {
		if err := a.api.Logout(ctx); err != nil {
			a.logger.Info("Auth service: backend logout failed",
				"error", err.Error())
		}
	}

	if err := a.session.Logout(ctx); err != nil {
		a.logger.Error("Auth service: failed to clear session",
			"error", err.Error())
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// Validate checks the stored token and clears the session when it is unusable.
func (a *Auth) Validate(ctx context.Context) (bool, error) {
	if a.session.ValidateToken() {
		return true, nil
	}

	if !a.session.State().IsAuthenticated {
		return false, nil
	}

	a.logger.Info("Auth service: token expired, clearing session")
	if err := a.session.ClearAuth(ctx); err != nil {
		return false, fmt.Errorf("failed to clear expired session: %w", err)
	}
	return false, nil
}
