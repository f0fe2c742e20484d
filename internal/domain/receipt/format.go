package receipt

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// Placeholder se imprime en lugar de un campo vacío.
const Placeholder = "-"

// TimestampLayout formato de "Bill Time" (ej. 05 Mar 2025 19:42:07).
const TimestampLayout = "02 Jan 2006 15:04:05"

// Sanitize prepara un texto para el PDF: saltos de línea y retornos de carro
// pasan a espacio y se descartan los caracteres que no existen en Windows-1252
// (codificación de las fuentes base del PDF). Un resultado vacío se imprime como "-".
func Sanitize(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Placeholder
	}
	return b.String()
}

// FormatMoney antepone el símbolo de moneda y fija dos decimales: "Rs.90.00".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatDeduction igual que FormatMoney pero con signo negativo delante,
// también cuando el monto es cero: "-Rs.0.00".
func FormatDeduction(symbol string, amount decimal.Decimal) string {
	return "-" + FormatMoney(symbol, amount)
}

// FormatRate porcentaje con un decimal: "5.0".
func FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(1)
}
