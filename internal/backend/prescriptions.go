package backend

import (
	"context"
	"net/http"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

func (c *Client) Prescriptions(ctx context.Context) ([]model.Prescription, error) {
	var out []model.Prescription
	err := c.do(ctx, call{method: http.MethodGet, path: "/prescriptions", out: &out})
	return out, err
}

func (c *Client) CreatePrescription(ctx context.Context, req model.CreatePrescriptionRequest) (model.Prescription, error) {
	var out model.Prescription
	err := c.do(ctx, call{method: http.MethodPost, path: "/prescriptions", body: req, out: &out})
	return out, err
}
