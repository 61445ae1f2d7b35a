package entities

import "time"

// PaymentLink is the checkout link issued for a saved quote. It is stored
// apart from the quote, one per quote id, and outlives the quote's deletion.
type PaymentLink struct {
	QuoteID     string    `json:"quote_id"`
	QuoteNumber string    `json:"quote_number"`
	URL         string    `json:"url"`
	ProviderID  string    `json:"provider_id"`
	CreatedAt   time.Time `json:"created_at"`
}
