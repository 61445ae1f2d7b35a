package printing

import (
	"strconv"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// x/text groups four-digit amounts too ($2.975), matching the printed quotes.
var chileanSpanish = language.MustParse("es-CL")

var unitLabels = map[entities.UnitType]string{
	entities.UnitPiece:      "Unid.",
	entities.UnitMeter:      "Mts",
	entities.UnitKilogram:   "Kg",
	entities.UnitCentimeter: "cm",
}

// UnitLabel is the printed label for a unit.
func UnitLabel(u entities.UnitType) string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}

// DeliveryText is the bracketed delivery note printed under each item.
func DeliveryText(item entities.LineItem) string {
	if item.DeliveryType == entities.DeliveryImport {
		return "[Importación: " + strconv.Itoa(item.DeliveryDays) + " días hábiles]"
	}
	return "[Entrega Inmediata]"
}

// FormatCLP renders an amount the way es-CL does: "$" prefix, "." thousands
// separator, "," before at most three decimals, trailing zeros dropped.
func FormatCLP(d decimal.Decimal) string {
	d = d.Round(3)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	p := message.NewPrinter(chileanSpanish)
	return sign + "$" + p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}
