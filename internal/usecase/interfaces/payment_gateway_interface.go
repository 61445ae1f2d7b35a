package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutRequest describes the amount a customer pays for a saved quote.
type CheckoutRequest struct {
	QuoteID     string
	QuoteNumber string
	Title       string
	PayerEmail  string
	Amount      decimal.Decimal
}

// CheckoutLink is the provider's answer to a checkout request.
type CheckoutLink struct {
	ProviderID string
	URL        string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The quoting service uses it to create a checkout link for a saved quote total.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutLink, error)
}
