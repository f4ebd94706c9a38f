package backend

import (
	"context"
	"io"
	"net/http"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

func (c *Client) CreateMedicine(ctx context.Context, req model.CreateMedicineRequest) (model.Medicine, error) {
	var out model.Medicine
	err := c.do(ctx, call{method: http.MethodPost, path: "/medicines", body: req, out: &out})
	return out, err
}

func (c *Client) UpdateMedicine(ctx context.Context, id model.ID, req model.UpdateMedicineRequest) (model.Medicine, error) {
	var out model.Medicine
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   "/medicines/{id}",
		params: map[string]string{"id": id.String()},
		body:   req,
		out:    &out,
	})
	return out, err
}

func (c *Client) DeleteMedicine(ctx context.Context, id model.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "/medicines/{id}",
		params: map[string]string{"id": id.String()},
	})
}

// BulkUploadMedicines forwards a spreadsheet to the backend importer as the "file" form part.
func (c *Client) BulkUploadMedicines(ctx context.Context, name string, r io.Reader) (model.BulkUploadResult, error) {
	var out model.BulkUploadResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/medicines/bulk-upload",
		file:   &upload{param: "file", name: name, r: r},
		out:    &out,
	})
	return out, err
}

func (c *Client) SubmitStoreApplication(ctx context.Context, req model.StoreApplicationRequest) (model.StoreApplicationStatus, error) {
	var out model.StoreApplicationStatus
	err := c.do(ctx, call{method: http.MethodPost, path: "/store-application/submit", body: req, out: &out})
	return out, err
}

func (c *Client) StoreApplicationStatus(ctx context.Context) (model.StoreApplicationStatus, error) {
	var out model.StoreApplicationStatus
	err := c.do(ctx, call{method: http.MethodGet, path: "/store-application/status", out: &out})
	return out, err
}
