package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/cart"
	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

type addItemRequest struct {
	MedicineID model.ID `json:"medicineId" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartResponse struct {
	Items      []model.CartItem `json:"items"`
	UserID     *model.ID        `json:"userId"`
	TotalPrice float64          `json:"totalPrice"`
	ItemCount  int              `json:"itemCount"`
	HasRxItems bool             `json:"hasRxItems"`
}

func newCartResponse(s *cart.Store) cartResponse {
	resp := cartResponse{
		Items:      s.Items(),
		TotalPrice: s.TotalPrice(),
		ItemCount:  s.ItemCount(),
		HasRxItems: s.HasRxItems(),
	}
	if resp.Items == nil {
		resp.Items = []model.CartItem{}
	}
	if id := s.UserID(); id != "" {
		resp.UserID = &id
	}
	return resp
}

// Cart serves the browser's cart.
type Cart struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewCart(workspaces WorkspaceContext, logger *logger.Logger) *Cart {
	return &Cart{workspaces: workspaces, logger: logger}
}

func (h *Cart) Get(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newCartResponse(ws.Cart))
}

// AddItem adds one unit of a catalog medicine. The product snapshot comes from
// the catalog, never from the request.
func (h *Cart) AddItem(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	medicine, err := ws.Backend.Medicine(c.Request.Context(), req.MedicineID)
	if err != nil {
		handleError(c, err)
		return
	}
	if !medicine.InStock {
		c.JSON(http.StatusConflict, gin.H{"error": "medicine is out of stock"})
		return
	}

	if err := ws.Cart.AddItem(c.Request.Context(), medicine); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(ws.Cart))
}

func (h *Cart) UpdateQuantity(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := ws.Cart.UpdateQuantity(c.Request.Context(), model.ID(c.Param("id")), *req.Quantity); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(ws.Cart))
}

func (h *Cart) RemoveItem(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	if err := ws.Cart.RemoveItem(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(ws.Cart))
}

func (h *Cart) Clear(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	if err := ws.Cart.ClearCart(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(ws.Cart))
}

func (h *Cart) Quote(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws.Cart.Quote())
}
