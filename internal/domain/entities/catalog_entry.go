package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogEntry is a master product record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - product_names table: PK name -> product id (uniqueness guard)
//
// Name is the reconciliation key; SKU is assigned once and never changes.
type CatalogEntry struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Description  string          `json:"description"`
	Unit         UnitType        `json:"unit"`
	NetPrice     decimal.Decimal `json:"net_price"`
	DeliveryType DeliveryType    `json:"delivery_type"`
	DeliveryDays int             `json:"delivery_days"`
	Category     string          `json:"category"`
	SKU          string          `json:"sku"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CatalogEntryFromLineItem builds the record inserted for an unknown line item.
func CatalogEntryFromLineItem(id string, item LineItem, sku string, now time.Time) CatalogEntry {
	item = item.Normalized()
	brand := item.Brand
	if brand == "" {
		brand = DefaultBrand
	}
	category := item.Category
	if category == "" {
		category = DefaultCategory
	}
	return CatalogEntry{
		ID:           id,
		Name:         item.Name,
		Brand:        brand,
		Description:  item.Description,
		Unit:         item.Unit,
		NetPrice:     item.NetPrice,
		DeliveryType: item.DeliveryType,
		DeliveryDays: item.DeliveryDays,
		Category:     category,
		SKU:          sku,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ToLineItem copies the entry into a new line item with quantity 1.
func (c CatalogEntry) ToLineItem(id string) LineItem {
	return LineItem{
		ID:           id,
		Name:         c.Name,
		Brand:        c.Brand,
		Description:  c.Description,
		Quantity:     1,
		Unit:         c.Unit,
		NetPrice:     c.NetPrice,
		DeliveryType: c.DeliveryType,
		DeliveryDays: c.DeliveryDays,
		Category:     c.Category,
		SKU:          c.SKU,
	}.Normalized()
}

// CatalogEntryPatch carries an administrative edit. SKU is not editable.
type CatalogEntryPatch struct {
	Name         *string
	Brand        *string
	Description  *string
	Unit         *UnitType
	NetPrice     *decimal.Decimal
	DeliveryType *DeliveryType
	DeliveryDays *int
	Category     *string
}
