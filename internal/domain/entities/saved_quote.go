package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavedQuote is the immutable snapshot persisted at finalization.
//
// Storage model (DynamoDB):
//   - PK: id (uuid, so a repeated quote number never overwrites history)
type SavedQuote struct {
	ID              string          `json:"id"`
	QuoteNumber     string          `json:"quote_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerCompany string          `json:"customer_company"`
	Date            string          `json:"date"`
	Products        []LineItem      `json:"products"`
	Info            QuoteInfo       `json:"info"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
}

// QuoteDocumentFileName is the download name of a rendered quote.
func QuoteDocumentFileName(quoteNumber string) string {
	return "Cotizacion_Inprotar_" + quoteNumber + ".pdf"
}
