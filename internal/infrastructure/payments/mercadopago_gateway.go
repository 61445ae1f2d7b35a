package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	appconfig "cotizador_inprotar/internal/config"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutBaseURL = "https://www.mercadopago.cl/checkout/v1/redirect?pref_id="

// MercadoPagoGateway creates checkout preferences for saved quotes.
type MercadoPagoGateway struct {
	client     preference.Client
	currencyID string
	mockMode   bool
	logger     *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	currency := cfg.CurrencyID
	if currency == "" {
		currency = "CLP"
	}

	if cfg.Mock {
		logger.Info("payment gateway mock mode enabled")
		return &MercadoPagoGateway{currencyID: currency, mockMode: true, logger: logger}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, eris.Wrap(err, "mercado pago: sdk config")
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		client:     preference.NewClient(sdkCfg),
		currencyID: currency,
		logger:     logger,
	}, nil
}

// CreateCheckout creates a single-item preference for the quote total. The
// quote id travels as external_reference.
func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutLink, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.logger.Info("mock checkout created",
			zap.String("quote_id", req.QuoteID),
			zap.String("provider_id", id),
			zap.String("amount", req.Amount.String()),
		)
		return interfaces.CheckoutLink{ProviderID: id, URL: mockCheckoutBaseURL + id}, nil
	}
	if g == nil || g.client == nil {
		return interfaces.CheckoutLink{}, ErrMercadoPagoGatewayNotConfigured
	}

	pref := preference.Request{
		ExternalReference: req.QuoteID,
		Items: []preference.ItemRequest{{
			ID:         req.QuoteNumber,
			Title:      req.Title,
			Quantity:   1,
			CurrencyID: g.currencyID,
			UnitPrice:  req.Amount.Round(0).InexactFloat64(),
		}},
	}
	if req.PayerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.client.Create(ctx, pref)
	if err != nil {
		g.logger.Error("mercado pago preference failed", zap.String("quote_id", req.QuoteID), zap.Error(err))
		return interfaces.CheckoutLink{}, eris.Wrapf(err, "mercado pago: create preference for quote %s", req.QuoteID)
	}

	g.logger.Info("mercado pago preference created",
		zap.String("quote_id", req.QuoteID),
		zap.String("provider_id", resp.ID),
	)
	return interfaces.CheckoutLink{ProviderID: resp.ID, URL: resp.InitPoint}, nil
}
