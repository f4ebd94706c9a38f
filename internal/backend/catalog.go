package backend

import (
	"context"
	"net/http"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

func (c *Client) Medicines(ctx context.Context, search, category string) ([]model.Medicine, error) {
	var out []model.Medicine
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/medicines",
		query:  map[string]string{"search": search, "category": category},
		out:    &out,
	})
	return out, err
}

func (c *Client) Medicine(ctx context.Context, id model.ID) (model.Medicine, error) {
	var out model.Medicine
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/medicines/{id}",
		params: map[string]string{"id": id.String()},
		out:    &out,
	})
	return out, err
}

func (c *Client) SearchMedicines(ctx context.Context, q string) ([]model.Medicine, error) {
	var out []model.Medicine
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/medicines/search",
		query:  map[string]string{"q": q},
		out:    &out,
	})
	return out, err
}

func (c *Client) FeaturedMedicines(ctx context.Context) ([]model.Medicine, error) {
	var out []model.Medicine
	err := c.do(ctx, call{method: http.MethodGet, path: "/medicines/featured", out: &out})
	return out, err
}
