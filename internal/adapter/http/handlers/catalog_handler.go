package handlers

import (
	"errors"
	"net/http"

	request "cotizador_inprotar/internal/adapter/http/dto/request"
	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves catalog search and administration.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// List godoc
// @Summary      List or search the catalog
// @Description  With q, returns up to 20 matches on name, brand or category.
// @Tags         catalog
// @Produce      json
// @Param        q    query     string  false  "Search text"
// @Success      200  {array}   entities.CatalogEntry
// @Router       /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if q, ok := c.GetQuery("q"); ok {
		found, err := h.usecase.Search(ctx, q)
		if err != nil {
			writeError(c, mapCatalogError(err))
			return
		}
		c.JSON(http.StatusOK, response.NonNil(found))
		return
	}

	all, err := h.usecase.List(ctx)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.NonNil(all))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Update edits a catalog entry. The SKU cannot be changed.
func (h *CatalogHandler) Update(c *gin.Context) {
	var payload request.CatalogPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogID), errors.Is(err, usecase.ErrInvalidCatalogName), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogNameTaken):
		return pkg.NewDomainErrorSimple("CATALOG_NAME_TAKEN", "Another catalog entry already uses this name", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
