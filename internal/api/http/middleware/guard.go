package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/access"
	httpctx "github.com/dtroode/medsetu-storefront/internal/api/http/context"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// RequireRole admits only sessions whose role is one of roles. With no roles any
// authenticated session passes.
func RequireRole(contextManager *httpctx.Manager, logger *logger.Logger, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, ok := contextManager.GetWorkspaceFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		state := ws.Session.State()
		decision := access.Check(state, roles...)

		switch decision.Outcome {
		case access.Allow:
			c.Next()
		case access.Pending:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session is initializing"})
		case access.Login:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    model.ErrUnauthenticated.Error(),
				"redirect": decision.Location,
			})
		default:
			logger.Info("Role guard: access denied",
				"browser_id", ws.ID,
				"role", state.Role(),
				"path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    model.ErrForbidden.Error(),
				"redirect": decision.Location,
			})
		}
	}
}
