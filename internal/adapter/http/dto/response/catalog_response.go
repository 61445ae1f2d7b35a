package response

import (
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase"
)

type ApprovalResponse struct {
	Record entities.PendingReviewRecord `json:"record"`
	Entry  entities.CatalogEntry        `json:"entry"`
}

func FromApproval(r usecase.ApprovalResult) ApprovalResponse {
	return ApprovalResponse{Record: r.Record, Entry: r.Entry}
}

type CountResponse struct {
	Count int `json:"count"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

func FromLogin(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Username: r.Username, Token: r.Token}
}

// PaymentLinkResponse carries the checkout link issued for a saved quote.
type PaymentLinkResponse struct {
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
	PaymentLink string `json:"payment_link"`
	CreatedAt   string `json:"created_at"`
}

func FromPaymentLink(l entities.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		QuoteID:     l.QuoteID,
		QuoteNumber: l.QuoteNumber,
		PaymentLink: l.URL,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NonNil keeps empty collections as [] in JSON.
func NonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
