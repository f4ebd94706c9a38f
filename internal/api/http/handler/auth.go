package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/access"
	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string     `json:"name" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=6"`
	Role     model.Role `json:"role" binding:"omitempty,oneof=USER STORE"`
}

type sessionResponse struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsInitialized   bool        `json:"isInitialized"`
	Home            string      `json:"home,omitempty"`
}

func newSessionResponse(state session.State) sessionResponse {
	resp := sessionResponse{
		User:            state.User,
		IsAuthenticated: state.IsAuthenticated,
		IsInitialized:   state.IsInitialized,
	}
	if state.IsAuthenticated {
		resp.Home = access.HomePath(state.Role())
	}
	return resp
}

// Auth serves the sign-in flows and the session view. The token never leaves the gateway.
type Auth struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewAuth(workspaces WorkspaceContext, logger *logger.Logger) *Auth {
	return &Auth{workspaces: workspaces, logger: logger}
}

func (h *Auth) Session(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(ws.Session.State()))
}

func (h *Auth) Login(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := ws.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(state))
}

func (h *Auth) Register(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := ws.Auth.Register(c.Request.Context(), backend.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionResponse(state))
}

func (h *Auth) Logout(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	if err := ws.Auth.Logout(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(ws.Session.State()))
}

func (h *Auth) Validate(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	valid, err := ws.Auth.Validate(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

func (h *Auth) Profile(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	user, err := ws.Backend.Profile(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile saves the profile and refreshes the session's user record.
func (h *Auth) UpdateProfile(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req model.User
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state := ws.Session.State()
	if state.User != nil {
		req.ID = state.User.ID
		req.Role = state.User.Role
	}

	updated, err := ws.Backend.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	if updated.ID == "" {
		updated.ID, updated.Role = req.ID, req.Role
	}

	if err := ws.Session.Login(c.Request.Context(), updated, state.Token); err != nil {
		h.logger.Error("Auth handler: failed to persist updated profile",
			"user_id", updated.ID,
			"error", err.Error())
	}
	c.JSON(http.StatusOK, updated)
}
