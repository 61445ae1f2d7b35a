package usecase

//go:generate mockgen -source=payment_link_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_link_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrNothingToCharge            = errors.New("quote total must be greater than zero")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
)

// IPaymentLinkUseCase creates a checkout link for a saved quote.
//
// The link is created once; later calls return the stored one. The saved
// quote itself is never written.
type IPaymentLinkUseCase interface {
	CreatePaymentLink(ctx context.Context, quoteID string) (entities.PaymentLink, error)
}

type PaymentLinkUseCase struct {
	quotes  interfaces.IQuoteRepository
	links   interfaces.IPaymentLinkRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(quotes interfaces.IQuoteRepository, links interfaces.IPaymentLinkRepository, gateway interfaces.IPaymentGateway) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{quotes: quotes, links: links, gateway: gateway}
}

func (u *PaymentLinkUseCase) CreatePaymentLink(ctx context.Context, quoteID string) (entities.PaymentLink, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.PaymentLink{}, ErrInvalidQuoteID
	}
	if u.gateway == nil {
		return entities.PaymentLink{}, ErrPaymentGatewayUnavailable
	}

	existing, err := u.links.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	if existing.QuoteID != "" {
		return existing, nil
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	if q.ID == "" {
		return entities.PaymentLink{}, ErrQuoteNotFound
	}
	if !q.Total.IsPositive() {
		return entities.PaymentLink{}, ErrNothingToCharge
	}

	log := zap.L().With(zap.String("quote_id", q.ID), zap.String("quote_number", q.QuoteNumber))
	log.Info("creating payment link", zap.String("total", q.Total.String()))

	checkout, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		Title:       "Cotización " + q.QuoteNumber + " - Inprotar",
		PayerEmail:  q.Info.CustomerEmail,
		Amount:      q.Total,
	})
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.PaymentLink{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.PaymentLink{}, ErrPaymentGatewayBadRequest
		}
		return entities.PaymentLink{}, err
	}

	created, err := u.links.Create(ctx, entities.PaymentLink{
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		URL:         checkout.URL,
		ProviderID:  checkout.ProviderID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return entities.PaymentLink{}, err
	}
	if created.QuoteID == "" {
		// A concurrent request stored its link first.
		log.Warn("payment link already stored, discarding new checkout", zap.String("provider_id", checkout.ProviderID))
		return u.links.GetByQuoteID(ctx, quoteID)
	}
	log.Info("payment link stored", zap.String("provider_id", checkout.ProviderID))
	return created, nil
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
