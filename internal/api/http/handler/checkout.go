package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/service"
)

type checkoutRequest struct {
	Type           model.FulfillmentType `json:"type" binding:"omitempty,oneof=DELIVERY PICKUP"`
	Address        string                `json:"address"`
	PrescriptionID string                `json:"prescriptionId"`
}

// Checkout places orders from the cart.
type Checkout struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewCheckout(workspaces WorkspaceContext, logger *logger.Logger) *Checkout {
	return &Checkout{workspaces: workspaces, logger: logger}
}

func (h *Checkout) PlaceOrder(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Type != model.FulfillmentPickup && req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address is required"})
		return
	}

	order, err := ws.Checkout.PlaceOrder(c.Request.Context(), service.CheckoutRequest{
		Type:           req.Type,
		Address:        req.Address,
		PrescriptionID: req.PrescriptionID,
	})
	if err != nil && order.ID == "" {
		handleError(c, err)
		return
	}
	if err != nil {
		// The order exists; only the local cart cleanup failed.
		h.logger.Error("Checkout handler: order placed but cart not cleared",
			"order_id", order.ID,
			"error", err.Error())
	}
	c.JSON(http.StatusCreated, order)
}
