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

type CategoryHandler struct {
	usecase usecase.ICategoryUseCase
}

func NewCategoryHandler(uc usecase.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{usecase: uc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.JSON(http.StatusOK, response.NonNil(cats))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cat, err := h.usecase.Create(c.Request.Context(), payload.Name)
	if err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCategoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryID), errors.Is(err, usecase.ErrInvalidCategoryName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryExists):
		return pkg.NewDomainErrorSimple("CATEGORY_EXISTS", "Category already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
