package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// MaxPrescriptionSize bounds an uploaded prescription scan.
const MaxPrescriptionSize = 10 << 20

var prescriptionTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// Prescriptions serves prescription uploads and listings.
type Prescriptions struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewPrescriptions(workspaces WorkspaceContext, logger *logger.Logger) *Prescriptions {
	return &Prescriptions{workspaces: workspaces, logger: logger}
}

func (h *Prescriptions) List(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	items, err := ws.Backend.Prescriptions(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(items))
}

// Upload accepts a multipart form with an "image" file and the prescription fields.
// Medications are sent as a JSON array in the "medications" field.
func (h *Prescriptions) Upload(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxPrescriptionSize+1<<20)

	header, err := c.FormFile("image")
	if err != nil {
		badRequest(c, err)
		return
	}
	if header.Size > MaxPrescriptionSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "prescription file is too large"})
		return
	}
	if !prescriptionTypes[strings.ToLower(path.Ext(header.Filename))] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prescription must be a JPG, PNG or PDF file"})
		return
	}

	req := model.CreatePrescriptionRequest{
		DoctorName:    c.PostForm("doctorName"),
		DoctorLicense: c.PostForm("doctorLicense"),
		PatientName:   c.PostForm("patientName"),
		IssuedDate:    c.PostForm("issuedDate"),
		ExpiryDate:    c.PostForm("expiryDate"),
	}
	if raw := c.PostForm("medications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Medications); err != nil {
			badRequest(c, fmt.Errorf("failed to decode medications: %w", err))
			return
		}
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	created, err := ws.Prescriptions.Upload(c.Request.Context(), header.Filename, file, req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Image streams a stored prescription scan identified by the "key" query parameter.
func (h *Prescriptions) Image(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	key := c.Query("key")
	rc, err := ws.Prescriptions.Image(c.Request.Context(), key)
	if err != nil {
		handleError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.logger.Error("Prescriptions handler: failed to stream image",
			"key", key,
			"error", err.Error())
	}
}
