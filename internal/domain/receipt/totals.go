// Package receipt contiene el cálculo de totales del recibo y las reglas de
// formato de texto y moneda que comparten la vista y el PDF.
package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Policy parámetros de cálculo. TaxRate en porcentaje (5.0 = 5%).
type Policy struct {
	TaxRate  decimal.Decimal
	Discount decimal.Decimal
}

// DefaultPolicy IVA 5% y sin descuento.
func DefaultPolicy() Policy {
	return Policy{TaxRate: decimal.NewFromInt(5), Discount: decimal.Zero}
}

// Totals resultado derivado de la cuenta; nunca se persiste.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto, descuento y total.
// TaxAmount = round(Subtotal * TaxRate / 100, 2); GrandTotal = Subtotal + TaxAmount - Discount.
// Con la cuenta vacía todo queda en cero (salvo el descuento configurado).
func ComputeTotals(items []entity.LineItem, p Policy) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price)
	}
	tax := subtotal.Mul(p.TaxRate).Div(hundred).Round(2)
	return Totals{
		Subtotal:   subtotal,
		TaxRate:    p.TaxRate,
		TaxAmount:  tax,
		Discount:   p.Discount,
		GrandTotal: subtotal.Add(tax).Sub(p.Discount),
	}
}
