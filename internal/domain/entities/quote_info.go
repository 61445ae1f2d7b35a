package entities

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteDateLayout is the es-CL short date used on quotes (day-month-year).
const QuoteDateLayout = "02-01-2006"

// DefaultTaxRate is the Chilean IVA applied to every quote.
var DefaultTaxRate = decimal.RequireFromString("0.19")

// QuoteInfo is the customer and document metadata of a quote.
type QuoteInfo struct {
	CustomerName    string          `json:"customer_name"`
	CustomerCompany string          `json:"customer_company"`
	CustomerRut     string          `json:"customer_rut"`
	CustomerGiro    string          `json:"customer_giro"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	QuoteNumber     string          `json:"quote_number"`
	Date            string          `json:"date"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

// NewQuoteInfo returns empty customer fields with a fresh quote number and date.
// The new number is guaranteed to differ from previousNumber.
func NewQuoteInfo(now time.Time, previousNumber string) QuoteInfo {
	return QuoteInfo{
		QuoteNumber: NextQuoteNumber(previousNumber),
		Date:        now.Format(QuoteDateLayout),
		TaxRate:     DefaultTaxRate,
	}
}

// MissingRequired lists the required customer fields that are blank.
func (q QuoteInfo) MissingRequired() []string {
	var missing []string
	required := []struct {
		field string
		value string
	}{
		{"customer_company", q.CustomerCompany},
		{"customer_rut", q.CustomerRut},
		{"customer_name", q.CustomerName},
		{"customer_email", q.CustomerEmail},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	return missing
}

// QuoteInfoPatch carries the fields of a partial update. Nil means "keep".
type QuoteInfoPatch struct {
	CustomerName    *string
	CustomerCompany *string
	CustomerRut     *string
	CustomerGiro    *string
	CustomerEmail   *string
	CustomerPhone   *string
	QuoteNumber     *string
	Date            *string
}

func (p QuoteInfoPatch) Apply(info QuoteInfo) QuoteInfo {
	if p.CustomerName != nil {
		info.CustomerName = *p.CustomerName
	}
	if p.CustomerCompany != nil {
		info.CustomerCompany = *p.CustomerCompany
	}
	if p.CustomerRut != nil {
		info.CustomerRut = FormatRut(*p.CustomerRut)
	}
	if p.CustomerGiro != nil {
		info.CustomerGiro = *p.CustomerGiro
	}
	if p.CustomerEmail != nil {
		info.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		info.CustomerPhone = *p.CustomerPhone
	}
	if p.QuoteNumber != nil {
		info.QuoteNumber = *p.QuoteNumber
	}
	if p.Date != nil {
		info.Date = *p.Date
	}
	return info
}

// quoteNumberSource is swapped in tests.
var quoteNumberSource = func() int { return 1000 + rand.IntN(9000) }

// NextQuoteNumber returns "COT-" plus four digits, never equal to previous.
func NextQuoteNumber(previous string) string {
	for {
		n := fmt.Sprintf("COT-%d", quoteNumberSource())
		if n != previous {
			return n
		}
	}
}
