package service

import (
	"context"
	"fmt"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// CheckoutRequest carries the customer's choices at checkout.
type CheckoutRequest struct {
	Type           model.FulfillmentType
	Address        string
	PrescriptionID string
}

// Checkout turns the cart into a backend order.
type Checkout struct {
	session SessionManager
	cart    CartManager
	orders  OrderAPI
	logger  *logger.Logger
}

func NewCheckout(session SessionManager, cart CartManager, orders OrderAPI, logger *logger.Logger) *Checkout {
	return &Checkout{
		session: session,
		cart:    cart,
		orders:  orders,
		logger:  logger,
	}
}

// PlaceOrder places an order for the whole cart. The session token is
// validated first; a rejected token signs the user out. The cart is cleared
// only after the backend accepted the order.
func (c *Checkout) PlaceOrder(ctx context.Context, req CheckoutRequest) (model.Order, error) {
	state := c.session.State()
	if !state.IsAuthenticated || state.User == nil {
		return model.Order{}, model.ErrUnauthenticated
	}

	if !c.session.ValidateToken() {
		c.logger.Info("Checkout service: session token rejected, clearing",
			"user_id", state.User.ID)
		if err := c.session.ClearAuth(ctx); err != nil {
			c.logger.Error("Checkout service: failed to clear rejected session",
				"user_id", state.User.ID,
				"error", err.Error())
		}
		return model.Order{}, model.ErrUnauthenticated
	}

	if len(c.cart.Items()) == 0 {
		return model.Order{}, model.ErrEmptyCart
	}

	if c.cart.HasRxItems() && req.PrescriptionID == "" {
		return model.Order{}, model.ErrPrescriptionRequired
	}

	if req.Type == "" {
		req.Type = model.FulfillmentDelivery
	}

	quote := c.cart.Quote()
	order, err := c.orders.CreateOrder(ctx, model.CreateOrderRequest{
		CustomerName:   state.User.Name,
		Items:          quote.ItemCount,
		Amount:         quote.Total,
		Address:        req.Address,
		Type:           req.Type,
		PrescriptionID: req.PrescriptionID,
	})
	if err != nil {
		c.logger.Error("Checkout service: failed to create order",
			"user_id", state.User.ID,
			"error", err.Error())
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	c.logger.Info("Checkout service: order placed",
		"user_id", state.User.ID,
		"order_id", order.ID,
		"amount", quote.Total)

	if err := c.cart.ClearCart(ctx); err != nil {
		c.logger.Error("Checkout service: failed to clear cart after order",
			"order_id", order.ID,
			"error", err.Error())
		return order, fmt.Errorf("failed to clear cart: %w", err)
	}

	return order, nil
}
