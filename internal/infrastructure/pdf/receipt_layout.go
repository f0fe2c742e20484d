// Package pdf implementa la generación del recibo térmico (80 mm x 200 mm).
//
// Layout del recibo:
//
//	┌──────────────────────────────┐
//	│        Nombre del local      │  negrita, centrado
//	│     Dirección | Teléfono     │  centrado, más pequeño
//	│ ──────────────────────────── │
//	│ Bill Time / Customer /       │
//	│ Phone / Address              │
//	│ ──────────────────────────── │
//	│ Item                   Price │  negrita
//	│ Plato (Half)         Rs.90.00│  una fila por línea
//	│ ──────────────────────────── │
//	│ Subtotal / Tax / Discount /  │
//	│ Grand Total                  │
//	│   Thank you for visiting!    │  cursiva, centrado
//	└──────────────────────────────┘
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/dhaliwal-pos/internal/application/billing"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
)

// RowKind tipo de fila del recibo.
type RowKind int

const (
	RowText RowKind = iota
	RowRule
	RowSpace
)

// Alturas de fila en mm (cursor vertical).
const (
	heightTitle   = 4.5
	heightLine    = 3.6
	heightRule    = 3.0
	heightSection = 4.2
	heightFooter  = 5.0
)

// Tamaños de fuente en puntos.
const (
	sizeTitle = 10
	sizeBody  = 8
)

// Row fila ya formateada y saneada. Center excluye a Left/Right.
type Row struct {
	Kind   RowKind
	Height float64
	Left   string
	Right  string
	Center string
	Size   float64
	Style  fontstyle.Type
}

// BuildLayout arma las filas del recibo en orden vertical. Todo texto que
// proviene del usuario o de la carta pasa por receipt.Sanitize.
func BuildLayout(doc appbilling.ReceiptDocument) []Row {
	cur := doc.Shop.CurrencySymbol
	money := func(v decimal.Decimal) string { return receipt.Sanitize(receipt.FormatMoney(cur, v)) }

	rows := []Row{
		centered(heightTitle, sizeTitle, fontstyle.Bold, receipt.Sanitize(doc.Shop.Name)),
		centered(heightLine, sizeBody, fontstyle.Normal, receipt.Sanitize(doc.Shop.AddressLine)),
		rule(),
		left("Bill Time: " + doc.IssuedAt.Format(receipt.TimestampLayout)),
		left("Customer: " + receipt.Sanitize(doc.Customer.Name)),
		left("Phone: " + receipt.Sanitize(doc.Customer.Phone)),
		left("Address: " + receipt.Sanitize(doc.Customer.Address)),
		rule(),
		pair(heightSection, fontstyle.Bold, "Item", "Price"),
	}

	for _, it := range doc.Items {
		label := receipt.Sanitize(fmt.Sprintf("%s (%s)", it.ItemName, it.Size))
		rows = append(rows, pair(heightLine, fontstyle.Normal, label, money(it.Price)))
	}

	t := doc.Totals
	rows = append(rows,
		rule(),
		pair(heightSection, fontstyle.Bold, "Subtotal", money(t.Subtotal)),
		pair(heightLine, fontstyle.Bold, "Tax ("+receipt.FormatRate(t.TaxRate)+"%)", money(t.TaxAmount)),
		pair(heightLine, fontstyle.Bold, "Discount", receipt.Sanitize(receipt.FormatDeduction(cur, t.Discount))),
		pair(heightLine, fontstyle.Bold, "Grand Total", money(t.GrandTotal)),
		Row{Kind: RowSpace, Height: heightLine / 2},
		centered(heightFooter, sizeBody, fontstyle.Italic, receipt.Sanitize(doc.Shop.Footer)),
	)
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func centered(h, size float64, style fontstyle.Type, s string) Row {
	return Row{Kind: RowText, Height: h, Center: s, Size: size, Style: style}
}

func left(s string) Row {
	return Row{Kind: RowText, Height: heightLine, Left: s, Size: sizeBody, Style: fontstyle.Normal}
}

func pair(h float64, style fontstyle.Type, l, r string) Row {
	return Row{Kind: RowText, Height: h, Left: l, Right: r, Size: sizeBody, Style: style}
}

func rule() Row {
	return Row{Kind: RowRule, Height: heightRule}
}
