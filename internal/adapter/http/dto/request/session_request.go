package request

import (
	"strings"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// QuoteInfoRequest is used both to replace (PUT) and to patch (PATCH) the
// customer block. Omitted fields are empty on PUT and kept on PATCH.
type QuoteInfoRequest struct {
	CustomerName    *string `json:"customer_name"`
	CustomerCompany *string `json:"customer_company"`
	CustomerRut     *string `json:"customer_rut"`
	CustomerGiro    *string `json:"customer_giro"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
	QuoteNumber     *string `json:"quote_number"`
	Date            *string `json:"date"`
}

func (r QuoteInfoRequest) ToInfo() entities.QuoteInfo {
	return entities.QuoteInfo{
		CustomerName:    deref(r.CustomerName),
		CustomerCompany: deref(r.CustomerCompany),
		CustomerRut:     deref(r.CustomerRut),
		CustomerGiro:    deref(r.CustomerGiro),
		CustomerEmail:   deref(r.CustomerEmail),
		CustomerPhone:   deref(r.CustomerPhone),
		QuoteNumber:     deref(r.QuoteNumber),
		Date:            deref(r.Date),
	}
}

func (r QuoteInfoRequest) ToPatch() entities.QuoteInfoPatch {
	return entities.QuoteInfoPatch{
		CustomerName:    r.CustomerName,
		CustomerCompany: r.CustomerCompany,
		CustomerRut:     r.CustomerRut,
		CustomerGiro:    r.CustomerGiro,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		QuoteNumber:     r.QuoteNumber,
		Date:            r.Date,
	}
}

type JumpRequest struct {
	Step int `json:"step" binding:"required"`
}

// LineItemRequest adds a hand-entered product to the quote.
type LineItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Brand        string          `json:"brand"`
	Description  string          `json:"description"`
	Quantity     *int            `json:"quantity"`
	Unit         string          `json:"unit"`
	NetPrice     decimal.Decimal `json:"net_price"`
	DeliveryType string          `json:"delivery_type"`
	DeliveryDays int             `json:"delivery_days"`
	Category     string          `json:"category"`
}

// ToLineItem applies the form defaults: quantity 1, unit u, immediate delivery.
func (r LineItemRequest) ToLineItem() entities.LineItem {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	delivery := entities.DeliveryType(strings.TrimSpace(r.DeliveryType))
	if !delivery.IsValid() {
		delivery = entities.DeliveryImmediate
	}
	return entities.LineItem{
		Name:         r.Name,
		Brand:        strings.TrimSpace(r.Brand),
		Description:  r.Description,
		Quantity:     qty,
		Unit:         entities.ParseUnit(r.Unit),
		NetPrice:     r.NetPrice,
		DeliveryType: delivery,
		DeliveryDays: r.DeliveryDays,
		Category:     strings.TrimSpace(r.Category),
	}
}

// LineItemPatchRequest edits an item in place. Omitted fields are kept.
type LineItemPatchRequest struct {
	Name         *string          `json:"name"`
	Brand        *string          `json:"brand"`
	Description  *string          `json:"description"`
	Quantity     *int             `json:"quantity"`
	Unit         *string          `json:"unit"`
	NetPrice     *decimal.Decimal `json:"net_price"`
	DeliveryType *string          `json:"delivery_type"`
	DeliveryDays *int             `json:"delivery_days"`
	Category     *string          `json:"category"`
}

func (r LineItemPatchRequest) ToPatch() entities.LineItemPatch {
	p := entities.LineItemPatch{
		Name:         r.Name,
		Brand:        r.Brand,
		Description:  r.Description,
		Quantity:     r.Quantity,
		NetPrice:     r.NetPrice,
		DeliveryDays: r.DeliveryDays,
		Category:     r.Category,
	}
	if r.Unit != nil {
		u := entities.ParseUnit(*r.Unit)
		p.Unit = &u
	}
	if r.DeliveryType != nil {
		d := entities.DeliveryType(strings.TrimSpace(*r.DeliveryType))
		p.DeliveryType = &d
	}
	return p
}

// Valid rejects delivery types other than immediate and import.
func (r LineItemPatchRequest) Valid() bool {
	if r.DeliveryType != nil && !entities.DeliveryType(strings.TrimSpace(*r.DeliveryType)).IsValid() {
		return false
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return false
	}
	if r.NetPrice != nil && r.NetPrice.IsNegative() {
		return false
	}
	return true
}

type AddFromCatalogRequest struct {
	CatalogID string `json:"catalog_id" binding:"required"`
}

// SelectionRequest resolves a staged multi-candidate extraction.
type SelectionRequest struct {
	Selected    []int  `json:"selected"`
	Disposition string `json:"disposition"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
