package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/usecase"

	"github.com/gin-gonic/gin"
)

const mimePDF = "application/pdf"

// FinalizeHandler turns a quote into its PDF document and saved history entry.
type FinalizeHandler struct {
	usecase usecase.IFinalizeUseCase
}

func NewFinalizeHandler(uc usecase.IFinalizeUseCase) *FinalizeHandler {
	return &FinalizeHandler{usecase: uc}
}

// Finalize godoc
// @Summary      Finalize a quote
// @Description  Assigns SKUs, renders the PDF and saves the quote. When only saving fails the
// @Description  document is still available and persistence_error is set.
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.FinalizeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/finalize [post]
func (h *FinalizeHandler) Finalize(c *gin.Context) {
	id := c.Param("id")
	res, err := h.usecase.Finalize(c.Request.Context(), id)

	var persistErr *entities.PersistenceError
	if err != nil && !errors.As(err, &persistErr) {
		writeError(c, mapSessionError(err))
		return
	}

	if res.Session == nil {
		// The session is gone, so the document cannot be fetched later.
		h.sendDocument(c, res.Document)
		return
	}

	documentURL := fmt.Sprintf("%s/%s/document", sessionsBasePath(c), id)
	var cause error
	if persistErr != nil {
		cause = persistErr
	}
	c.JSON(http.StatusOK, response.FromFinalize(res, documentURL, cause))
}

// Document godoc
// @Summary      Download the last quote document
// @Tags         sessions
// @Produce      application/pdf
// @Param        id   path      string  true  "Session ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id}/document [get]
func (h *FinalizeHandler) Document(c *gin.Context) {
	doc, err := h.usecase.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	h.sendDocument(c, doc)
}

func (h *FinalizeHandler) sendDocument(c *gin.Context, doc session.Document) {
	if doc.QuoteID != "" {
		c.Header("X-Quote-Id", doc.QuoteID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, mimePDF, doc.Data)
}

// sessionsBasePath is the route prefix the session routes are mounted on.
func sessionsBasePath(c *gin.Context) string {
	if base, ok := strings.CutSuffix(c.FullPath(), "/:id/finalize"); ok {
		return base
	}
	return "/v1/sessions"
}
