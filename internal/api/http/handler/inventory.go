package handler

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// MaxBulkUploadSize bounds an inventory spreadsheet.
const MaxBulkUploadSize = 5 << 20

var spreadsheetTypes = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

type createMedicineRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	InStock    bool    `json:"inStock"`
	RxRequired bool    `json:"rxRequired"`
	Category   string  `json:"category"`
}

type updateMedicineRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=1"`
	Price      *float64 `json:"price" binding:"omitempty,gt=0"`
	InStock    *bool    `json:"inStock"`
	RxRequired *bool    `json:"rxRequired"`
	Category   *string  `json:"category"`
}

// Inventory serves the store operator's medicine catalog management.
type Inventory struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewInventory(workspaces WorkspaceContext, logger *logger.Logger) *Inventory {
	return &Inventory{workspaces: workspaces, logger: logger}
}

func (h *Inventory) Create(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req createMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	med, err := ws.Backend.CreateMedicine(c.Request.Context(), model.CreateMedicineRequest(req))
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Inventory: medicine created",
		"medicine_id", med.ID,
		"name", med.Name)
	c.JSON(http.StatusCreated, med)
}

func (h *Inventory) Update(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req updateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	med, err := ws.Backend.UpdateMedicine(c.Request.Context(), model.ID(c.Param("id")), model.UpdateMedicineRequest(req))
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Inventory: medicine updated",
		"medicine_id", c.Param("id"))
	c.JSON(http.StatusOK, med)
}

func (h *Inventory) Delete(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	if err := ws.Backend.DeleteMedicine(c.Request.Context(), model.ID(c.Param("id"))); err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Inventory: medicine deleted",
		"medicine_id", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// BulkUpload forwards an Excel or CSV sheet sent as the "file" form part.
func (h *Inventory) BulkUpload(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBulkUploadSize+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	if header.Size > MaxBulkUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "inventory file is too large"})
		return
	}
	if !spreadsheetTypes[strings.ToLower(path.Ext(header.Filename))] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory file must be an Excel (.xlsx, .xls) or CSV file"})
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	res, err := ws.Backend.BulkUploadMedicines(c.Request.Context(), header.Filename, file)
	if err != nil {
		handleError(c, err)
		return
	}
	res.Errors = orEmpty(res.Errors)

	h.logger.Info("Inventory: bulk upload processed",
		"file", header.Filename,
		"rows", res.TotalRows,
		"imported", res.SuccessCount)
	c.JSON(http.StatusOK, res)
}

type storeApplicationRequest struct {
	StoreName     string `json:"storeName" binding:"required"`
	StoreAddress  string `json:"storeAddress" binding:"required"`
	StorePhone    string `json:"storePhone" binding:"required"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	OwnerName     string `json:"ownerName" binding:"required"`
}

// StoreApplication lets a signed-in user apply to become a partner store.
type StoreApplication struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewStoreApplication(workspaces WorkspaceContext, logger *logger.Logger) *StoreApplication {
	return &StoreApplication{workspaces: workspaces, logger: logger}
}

func (h *StoreApplication) Submit(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	var req storeApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := ws.Backend.SubmitStoreApplication(c.Request.Context(), model.StoreApplicationRequest(req))
	if err != nil {
		handleError(c, err)
		return
	}

	h.logger.Info("Store application: submitted",
		"store_name", req.StoreName,
		"status", status.StoreStatus)
	c.JSON(http.StatusOK, status)
}

func (h *StoreApplication) Status(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	status, err := ws.Backend.StoreApplicationStatus(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
