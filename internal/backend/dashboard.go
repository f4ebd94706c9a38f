package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

// OrderPage is one page of store orders.
type OrderPage struct {
	Orders     []model.Order `json:"orders"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

type statusUpdate struct {
	Status string `json:"status"`
}

func (c *Client) MyStore(ctx context.Context) (model.Store, error) {
	var out model.Store
	err := c.do(ctx, call{method: http.MethodGet, path: "/store/my-store", out: &out})
	return out, err
}

func (c *Client) StoreOrders(ctx context.Context, page, limit int) (OrderPage, error) {
	var out OrderPage
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/store/orders",
		query:  map[string]string{"page": strconv.Itoa(page), "limit": strconv.Itoa(limit)},
		out:    &out,
	})
	return out, err
}

func (c *Client) UpdateStoreOrderStatus(ctx context.Context, id model.ID, status model.OrderStatus) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   "/store/orders/{id}/status",
		params: map[string]string{"id": id.String()},
		body:   statusUpdate{Status: string(status)},
		out:    &out,
	})
	return out, err
}

func (c *Client) StoreStats(ctx context.Context) (model.StoreStats, error) {
	var out model.StoreStats
	err := c.do(ctx, call{method: http.MethodGet, path: "/store/stats", out: &out})
	return out, err
}

func (c *Client) PlatformStats(ctx context.Context) (model.PlatformStats, error) {
	var out model.PlatformStats
	err := c.do(ctx, call{method: http.MethodGet, path: "/platform-admin/stats", out: &out})
	return out, err
}

func (c *Client) PlatformUsers(ctx context.Context, role model.Role) ([]model.PlatformUser, error) {
	var out []model.PlatformUser
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/platform-admin/users",
		query:  map[string]string{"role": string(role)},
		out:    &out,
	})
	return out, err
}

func (c *Client) PlatformStores(ctx context.Context, status string) ([]model.PlatformStore, error) {
	var out []model.PlatformStore
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/platform-admin/stores",
		query:  map[string]string{"status": status},
		out:    &out,
	})
	return out, err
}

func (c *Client) UpdatePlatformStoreStatus(ctx context.Context, id model.ID, status string) error {
	return c.do(ctx, call{
		method: http.MethodPut,
		path:   "/platform-admin/stores/{id}/status",
		params: map[string]string{"id": id.String()},
		body:   statusUpdate{Status: status},
	})
}
