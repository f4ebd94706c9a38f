package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/medsetu-storefront/internal/logger"
	"github.com/dtroode/medsetu-storefront/internal/model"
)

// Catalog proxies the public medicine catalog.
type Catalog struct {
	workspaces WorkspaceContext
	logger     *logger.Logger
}

func NewCatalog(workspaces WorkspaceContext, logger *logger.Logger) *Catalog {
	return &Catalog{workspaces: workspaces, logger: logger}
}

func (h *Catalog) List(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	meds, err := ws.Backend.Medicines(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(meds))
}

func (h *Catalog) Featured(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	meds, err := ws.Backend.FeaturedMedicines(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(meds))
}

func (h *Catalog) Search(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusOK, []model.Medicine{})
		return
	}

	meds, err := ws.Backend.SearchMedicines(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(meds))
}

func (h *Catalog) Get(c *gin.Context) {
	ws, ok := currentWorkspace(c, h.workspaces)
	if !ok {
		return
	}

	med, err := ws.Backend.Medicine(c.Request.Context(), model.ID(c.Param("id")))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, med)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
