package interfaces

//go:generate mockgen -source=payment_link_repository_interface.go -destination=mocks/mock_payment_link_repository_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

// IPaymentLinkRepository stores at most one checkout link per quote.
//
// Create returns a zero value (empty QuoteID) when the quote already has a
// link; GetByQuoteID returns a zero value when it has none.
type IPaymentLinkRepository interface {
	Create(ctx context.Context, link entities.PaymentLink) (entities.PaymentLink, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.PaymentLink, error)
}
