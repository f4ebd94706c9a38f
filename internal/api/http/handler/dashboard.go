package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

type orderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=NEW PACKING READY DELIVERED CANCELLED"`
}

type storeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StoreDashboard serves the store operator area.
type StoreDashboard struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewStoreDashboard(workspaces WorkspaceContext, logger *logger.Logger) *StoreDashboard {
	return &StoreDashboard{workspaces: workspaces, logger: logger}
}

func (h *StoreDashboard) MyStore(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	store, err := ws.Backend.MyStore(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreDashboard) Orders(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	orders, err := ws.Backend.StoreOrders(c.Request.Context(), page, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	orders.Orders = orEmpty(orders.Orders)
	c.JSON(http.StatusOK, orders)
}

func (h *StoreDashboard) UpdateOrderStatus(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := ws.Backend.UpdateStoreOrderStatus(c.Request.Context(), model.ID(c.Param("id")), req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Store dashboard: order status updated",
		"order_id", c.Param("id"),
		"status", req.Status)
	c.JSON(http.StatusOK, order)
}

func (h *StoreDashboard) Stats(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	stats, err := ws.Backend.StoreStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PlatformAdmin serves the platform back office.
type PlatformAdmin struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewPlatformAdmin(workspaces WorkspaceContext, logger *logger.Logger) *PlatformAdmin {
	return &PlatformAdmin{workspaces: workspaces, logger: logger}
}

func (h *PlatformAdmin) Stats(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	stats, err := ws.Backend.PlatformStats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *PlatformAdmin) Users(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	users, err := ws.Backend.PlatformUsers(c.Request.Context(), model.Role(c.Query("role")))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(users))
}

func (h *PlatformAdmin) Stores(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	stores, err := ws.Backend.PlatformStores(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(stores))
}

func (h *PlatformAdmin) UpdateStoreStatus(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req storeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ws.Backend.UpdatePlatformStoreStatus(c.Request.Context(), model.ID(c.Param("id")), req.Status); err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Platform admin: store status updated",
		"store_id", c.Param("id"),
		"status", req.Status)
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
