// Package printing renders quote documents: an HTML page built from a template
// and printed to PDF by headless Chrome.
package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// QuoteValidityDays is printed in the footer.
const QuoteValidityDays = 15

//go:embed templates/quote.html.tmpl
var templateFS embed.FS

var quoteTemplate = template.Must(
	template.New("quote.html.tmpl").
		Funcs(template.FuncMap{"orNA": orNA}).
		ParseFS(templateFS, "templates/quote.html.tmpl"),
)

// Letterhead is the seller block printed on every quote.
type Letterhead struct {
	Tagline   string
	Executive string
	Email     string
	Phone     string
	Web       string
	LegalName string
	LegalRut  string
	Address   string
}

var DefaultLetterhead = Letterhead{
	Tagline:   "Soluciones Eléctricas e Industriales",
	Executive: "Enzo Tardones",
	Email:     "info@inprotar.cl",
	Phone:     "+56 9 9089 4601",
	Web:       "www.inprotar.cl",
	LegalName: "COMERCIALIZADORA DE BIENES Y SERVICIOS TARDONES SPA",
	LegalRut:  "77.223.082-6",
	Address:   "CAMINO DEL PARQUE 425 LT 84 PORTAL CHAMISERO",
}

type documentRow struct {
	Index       int
	Code        string
	Description string
	Delivery    string
	Quantity    int
	Unit        string
	UnitPrice   string
	Subtotal    string
}

type documentView struct {
	Info         entities.QuoteInfo
	Letterhead   Letterhead
	Rows         []documentRow
	Net          string
	Tax          string
	Total        string
	TaxPercent   string
	ValidityDays int
}

// QuoteHTML renders the quote page. Totals are derived from items and the
// info's tax rate.
func QuoteHTML(items []entities.LineItem, info entities.QuoteInfo, lh Letterhead) (string, error) {
	rate := info.TaxRate
	if rate.IsZero() {
		rate = entities.DefaultTaxRate
	}

	view := documentView{
		Info:         info,
		Letterhead:   lh,
		Rows:         make([]documentRow, 0, len(items)),
		TaxPercent:   rate.Mul(decimal.NewFromInt(100)).String(),
		ValidityDays: QuoteValidityDays,
	}

	net := decimal.Zero
	for i, it := range items {
		sub := it.Subtotal()
		net = net.Add(sub)

		code := strings.TrimSpace(it.SKU)
		if code == "" {
			code = it.Name
		}
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			desc = it.Name
		}
		view.Rows = append(view.Rows, documentRow{
			Index:       i + 1,
			Code:        code,
			Description: desc,
			Delivery:    DeliveryText(it),
			Quantity:    it.Quantity,
			Unit:        UnitLabel(it.Unit),
			UnitPrice:   FormatCLP(it.NetPrice),
			Subtotal:    FormatCLP(sub),
		})
	}
	tax := net.Mul(rate)
	view.Net = FormatCLP(net)
	view.Tax = FormatCLP(tax)
	view.Total = FormatCLP(net.Add(tax))

	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, view); err != nil {
		return "", eris.Wrap(err, "render quote template")
	}
	return buf.String(), nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
