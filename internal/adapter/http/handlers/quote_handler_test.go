package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"cotizador_inprotar/internal/adapter/http/handlers/mocks"
	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.List)
	r.GET("/v1/quotes/:id", h.Get)
	r.DELETE("/v1/quotes/:id", h.Delete)
	r.POST("/v1/quotes/:id/payment-link", h.CreatePaymentLink)
	return r
}

func TestQuoteHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	history := mocks.NewMockIQuoteHistoryUseCase(ctrl)
	h := NewQuoteHandler(history, mocks.NewMockIPaymentLinkUseCase(ctrl))

	history.EXPECT().List(gomock.Any()).Return([]entities.SavedQuote{{ID: "q-2"}, {ID: "q-1"}}, nil)
	history.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.SavedQuote{}, usecase.ErrQuoteNotFound)
	history.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

	w := doJSON(quoteRouter(h), http.MethodGet, "/v1/quotes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []entities.SavedQuote
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || len(out) != 2 || out[0].ID != "q-2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if w := doJSON(quoteRouter(h), http.MethodGet, "/v1/quotes/q-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(quoteRouter(h), http.MethodDelete, "/v1/quotes/q-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestQuoteHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not configured", usecase.ErrPaymentGatewayUnavailable, http.StatusServiceUnavailable},
		{"zero total", usecase.ErrNothingToCharge, http.StatusUnprocessableEntity},
		{"gateway rejected", usecase.ErrPaymentGatewayBadRequest, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			payments := mocks.NewMockIPaymentLinkUseCase(ctrl)
			h := NewQuoteHandler(mocks.NewMockIQuoteHistoryUseCase(ctrl), payments)

			payments.EXPECT().CreatePaymentLink(gomock.Any(), "q-1").Return(entities.PaymentLink{}, tc.err)

			w := doJSON(quoteRouter(h), http.MethodPost, "/v1/quotes/q-1/payment-link", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIQuoteHistoryUseCase(ctrl), payments)

		payments.EXPECT().CreatePaymentLink(gomock.Any(), "q-1").Return(entities.PaymentLink{
			QuoteID: "q-1", QuoteNumber: "COT-4821", URL: "https://mp/checkout",
		}, nil)

		w := doJSON(quoteRouter(h), http.MethodPost, "/v1/quotes/q-1/payment-link", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var out map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out["payment_link"] != "https://mp/checkout" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
