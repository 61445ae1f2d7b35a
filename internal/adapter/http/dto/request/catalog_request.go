package request

import (
	"strings"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase"

	"github.com/shopspring/decimal"
)

// CatalogPatchRequest edits a catalog entry. SKU is not accepted.
type CatalogPatchRequest struct {
	Name         *string          `json:"name"`
	Brand        *string          `json:"brand"`
	Description  *string          `json:"description"`
	Unit         *string          `json:"unit"`
	NetPrice     *decimal.Decimal `json:"net_price"`
	DeliveryType *string          `json:"delivery_type"`
	DeliveryDays *int             `json:"delivery_days"`
	Category     *string          `json:"category"`
}

func (r CatalogPatchRequest) ToPatch() entities.CatalogEntryPatch {
	p := entities.CatalogEntryPatch{
		Name:         r.Name,
		Brand:        r.Brand,
		Description:  r.Description,
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

// ApproveRequest is filled in by the reviewer before a candidate enters the
// catalog.
type ApproveRequest struct {
	Category     string           `json:"category" binding:"required"`
	NetPrice     *decimal.Decimal `json:"net_price"`
	Unit         *string          `json:"unit"`
	DeliveryType *string          `json:"delivery_type"`
	DeliveryDays *int             `json:"delivery_days"`
}

func (r ApproveRequest) ToInput() usecase.ApproveInput {
	in := usecase.ApproveInput{
		Category:     r.Category,
		NetPrice:     r.NetPrice,
		DeliveryDays: r.DeliveryDays,
	}
	if r.Unit != nil {
		u := entities.ParseUnit(*r.Unit)
		in.Unit = &u
	}
	if r.DeliveryType != nil {
		d := entities.DeliveryType(strings.TrimSpace(*r.DeliveryType))
		in.DeliveryType = &d
	}
	return in
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
