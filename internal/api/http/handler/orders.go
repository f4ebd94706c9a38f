package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// Orders serves the customer's order history.
type Orders struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewOrders(workspaces WorkspaceContext, logger *logger.Logger) *Orders {
	return &Orders{workspaces: workspaces, logger: logger}
}

func (h *Orders) List(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	orders, err := ws.Backend.Orders(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(orders))
}

func (h *Orders) Get(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	order, err := ws.Backend.Order(c.Request.Context(), model.ID(c.Param("id")))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Orders) Cancel(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	if err := ws.Backend.CancelOrder(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
