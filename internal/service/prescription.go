package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// PrescriptionPrefix is the object-storage folder for prescription scans.
const PrescriptionPrefix = "prescriptions/"

// Prescriptions stores prescription scans and registers them with the backend.
type Prescriptions struct {
	session SessionManager
	objects model.ObjectStorage
	api     PrescriptionAPI
	logger  *logger.Logger
}

func NewPrescriptions(session SessionManager, objects model.ObjectStorage, api PrescriptionAPI, logger *logger.Logger) *Prescriptions {
	return &Prescriptions{
		session: session,
		objects: objects,
		api:     api,
		logger:  logger,
	}
}

// Upload stores image under a fresh key and creates the prescription record.
// The stored object is removed again if the backend rejects the record.
func (p *Prescriptions) Upload(ctx context.Context, filename string, image io.Reader, req model.CreatePrescriptionRequest) (model.Prescription, error) {
	state := p.session.State()
	if !state.IsAuthenticated {
		return model.Prescription{}, model.ErrUnauthenticated
	}

	key := PrescriptionPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
	if err := p.objects.Upload(ctx, key, image); err != nil {
		p.logger.Error("Prescription service: failed to store image",
			"key", key,
			"error", err.Error())
		return model.Prescription{}, fmt.Errorf("failed to store prescription image: %w", err)
	}

	req.ImageURL = key
	if req.PatientName == "" && state.User != nil {
		req.PatientName = state.User.Name
	}

	created, err := p.api.CreatePrescription(ctx, req)
	if err != nil {
		p.logger.Error("Prescription service: failed to create record",
			"key", key,
			"error", err.Error())
		if delErr := p.objects.Delete(ctx, key); delErr != nil {
			p.logger.Error("Prescription service: failed to remove orphaned image",
				"key", key,
				"error", delErr.Error())
		}
		return model.Prescription{}, fmt.Errorf("failed to create prescription: %w", err)
	}

	p.logger.Info("Prescription service: prescription uploaded",
		"prescription_id", created.ID,
		"key", key)
	return created, nil
}

// Image opens a stored prescription scan. Only scans referenced by the
// caller's own prescriptions are served; anything else is ErrNotFound.
func (p *Prescriptions) Image(ctx context.Context, key string) (io.ReadCloser, error) {
	if !p.session.State().IsAuthenticated {
		return nil, model.ErrUnauthenticated
	}
	if !strings.HasPrefix(key, PrescriptionPrefix) {
		return nil, model.ErrNotFound
	}

	owned, err := p.api.Prescriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	if !slices.ContainsFunc(owned, func(rx model.Prescription) bool { return rx.ImageURL == key }) {
		p.logger.Warn("Prescription service: image requested outside own prescriptions",
			"user_id", p.session.State().UserID(),
			"key", key)
		return nil, model.ErrNotFound
	}

	return p.objects.Download(ctx, key)
}
