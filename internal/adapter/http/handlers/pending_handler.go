package handlers

import (
	"errors"
	"net/http"

	request "cotizador_inprotar/internal/adapter/http/dto/request"
	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gin-gonic/gin"
)

// PendingHandler serves the review queue of candidates nobody selected.
type PendingHandler struct {
	usecase usecase.IPendingReviewUseCase
}

func NewPendingHandler(uc usecase.IPendingReviewUseCase) *PendingHandler {
	return &PendingHandler{usecase: uc}
}

// List godoc
// @Summary      List queued candidates
// @Tags         pending
// @Produce      json
// @Param        status  query     string  false  "pending, approved or rejected"  default(pending)
// @Success      200  {array}   entities.PendingReviewRecord
// @Router       /pending [get]
func (h *PendingHandler) List(c *gin.Context) {
	status := entities.PendingStatus(c.DefaultQuery("status", string(entities.PendingStatusPending)))
	records, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapPendingError(err))
		return
	}
	c.JSON(http.StatusOK, response.NonNil(records))
}

func (h *PendingHandler) Count(c *gin.Context) {
	n, err := h.usecase.CountPending(c.Request.Context())
	if err != nil {
		writeError(c, mapPendingError(err))
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// Approve godoc
// @Summary      Approve a queued candidate into the catalog
// @Tags         pending
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Pending record ID"
// @Param        payload  body      request.ApproveRequest  true  "Review data"
// @Success      200  {object}  response.ApprovalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /pending/{id}/approve [post]
func (h *PendingHandler) Approve(c *gin.Context) {
	var payload request.ApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPendingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApproval(res))
}

func (h *PendingHandler) Reject(c *gin.Context) {
	rec, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPendingError(err))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func mapPendingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPendingID), errors.Is(err, usecase.ErrInvalidPendingStatus), errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryRequired):
		return pkg.NewDomainErrorSimple("CATEGORY_REQUIRED", "A category is required to approve a product", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPendingNotFound):
		return pkg.NewDomainErrorSimple("PENDING_NOT_FOUND", "Pending product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPendingAlreadyHandled):
		return pkg.NewDomainErrorSimple("PENDING_ALREADY_REVIEWED", "Pending product was already reviewed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
