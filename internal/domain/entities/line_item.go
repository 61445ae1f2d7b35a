package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UnitType is the unit a line item is quoted in.
type UnitType string

const (
	UnitPiece      UnitType = "u"
	UnitMeter      UnitType = "m"
	UnitKilogram   UnitType = "kg"
	UnitCentimeter UnitType = "cm"
)

func (u UnitType) IsValid() bool {
	switch u {
	case UnitPiece, UnitMeter, UnitKilogram, UnitCentimeter:
		return true
	}
	return false
}

// ParseUnit maps loose unit spellings to a UnitType. Unknown values fall back to UnitPiece.
func ParseUnit(s string) UnitType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "mt", "mts", "metro", "metros", "meter", "meters":
		return UnitMeter
	case "kg", "kilo", "kilos", "kilogram", "kilograms", "kilogramo", "kilogramos":
		return UnitKilogram
	case "cm", "centimetro", "centímetro", "centimetros", "centímetros", "centimeter":
		return UnitCentimeter
	default:
		return UnitPiece
	}
}

// DeliveryType says whether an item ships from stock or has to be imported.
type DeliveryType string

const (
	DeliveryImmediate DeliveryType = "immediate"
	DeliveryImport    DeliveryType = "import"
)

func (d DeliveryType) IsValid() bool {
	return d == DeliveryImmediate || d == DeliveryImport
}

const (
	DefaultBrand              = "INPROTAR"
	DefaultCategory           = "Sin Categoría"
	DefaultImportDeliveryDays = 15
)

// LineItem is one priced product row within a quote in progress.
//
// ID is session-local. SKU is only set by catalog reconciliation at finalization
// or when the item was picked from the catalog.
type LineItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	Unit         UnitType        `json:"unit"`
	NetPrice     decimal.Decimal `json:"net_price"`
	DeliveryType DeliveryType    `json:"delivery_type"`
	DeliveryDays int             `json:"delivery_days"`
	Category     string          `json:"category,omitempty"`
	SKU          string          `json:"sku,omitempty"`
}

// Subtotal is quantity × net price.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.NetPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Normalized enforces the field invariants: non-negative amounts, a known unit
// and delivery type, and zero delivery days for immediate delivery.
func (l LineItem) Normalized() LineItem {
	if l.Quantity < 0 {
		l.Quantity = 0
	}
	if l.NetPrice.IsNegative() {
		l.NetPrice = decimal.Zero
	}
	if !l.Unit.IsValid() {
		l.Unit = ParseUnit(string(l.Unit))
	}
	if !l.DeliveryType.IsValid() {
		l.DeliveryType = DeliveryImmediate
	}
	if l.DeliveryType == DeliveryImmediate || l.DeliveryDays < 0 {
		l.DeliveryDays = 0
	}
	return l
}

// LineItemPatch carries the fields of a partial update. Nil means "keep".
type LineItemPatch struct {
	Name         *string
	Brand        *string
	Description  *string
	Quantity     *int
	Unit         *UnitType
	NetPrice     *decimal.Decimal
	DeliveryType *DeliveryType
	DeliveryDays *int
	Category     *string
}

// Apply merges the patch into item and re-normalizes it.
//
// Switching to import without explicit days defaults to DefaultImportDeliveryDays.
func (p LineItemPatch) Apply(item LineItem) LineItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Brand != nil {
		item.Brand = *p.Brand
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.NetPrice != nil {
		item.NetPrice = *p.NetPrice
	}
	if p.DeliveryType != nil {
		if *p.DeliveryType == DeliveryImport && item.DeliveryType != DeliveryImport && p.DeliveryDays == nil && item.DeliveryDays == 0 {
			item.DeliveryDays = DefaultImportDeliveryDays
		}
		item.DeliveryType = *p.DeliveryType
	}
	if p.DeliveryDays != nil {
		item.DeliveryDays = *p.DeliveryDays
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	return item.Normalized()
}
