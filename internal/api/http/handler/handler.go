package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/workspace"
)

// WorkspaceContext resolves the workspace attached by the browser middleware.
type WorkspaceContext interface {
	GetWorkspaceFromContext(ctx context.Context) (*workspace.Workspace, bool)
}

func currentWorkspace(c *gin.Context, wc WorkspaceContext) (*workspace.Workspace, bool) {
	ws, ok := wc.GetWorkspaceFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	return ws, true
}
