package backend

import (
	"context"
	"net/http"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, call{method: http.MethodGet, path: "/orders", out: &out})
	return out, err
}

func (c *Client) Order(ctx context.Context, id model.ID) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/orders/{id}",
		params: map[string]string{"id": id.String()},
		out:    &out,
	})
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, call{method: http.MethodPost, path: "/orders", body: req, out: &out})
	return out, err
}

func (c *Client) CancelOrder(ctx context.Context, id model.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/orders/{id}",
		params: map[string]string{"id": id.String()},
	})
}
