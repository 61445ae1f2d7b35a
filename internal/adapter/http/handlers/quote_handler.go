package handlers

import (
	"errors"
	"net/http"

	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the saved quote history and its payment links.
type QuoteHandler struct {
	history  usecase.IQuoteHistoryUseCase
	payments usecase.IPaymentLinkUseCase
}

func NewQuoteHandler(history usecase.IQuoteHistoryUseCase, payments usecase.IPaymentLinkUseCase) *QuoteHandler {
	return &QuoteHandler{history: history, payments: payments}
}

// List godoc
// @Summary      List saved quotes, newest first
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   entities.SavedQuote
// @Router       /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.history.List(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NonNil(quotes))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.history.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.history.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePaymentLink godoc
// @Summary      Create a Mercado Pago checkout link for a saved quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      201  {object}  response.PaymentLinkResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /quotes/{id}/payment-link [post]
func (h *QuoteHandler) CreatePaymentLink(c *gin.Context) {
	q, err := h.payments.CreatePaymentLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentLink(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Quote total must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payments are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment gateway rejected the request", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment gateway credentials are invalid", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
