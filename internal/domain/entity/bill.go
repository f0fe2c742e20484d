package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
)

// Size porción pedida. Las etiquetas se imprimen tal cual en el recibo.
type Size string

const (
	SizeHalf Size = "Half"
	SizeFull Size = "Full"
)

// ParseSize valida la etiqueta recibida ("Half" | "Full").
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeHalf, SizeFull:
		return Size(s), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// LineItem una línea de la cuenta. Inmutable una vez agregada.
type LineItem struct {
	ItemName string
	Size     Size
	Price    decimal.Decimal
}

// BillLedger cuenta en curso: líneas en orden de captura y total acumulado.
// Invariante: total == suma de Price de items.
type BillLedger struct {
	items []LineItem
	total decimal.Decimal
}

// Add agrega una línea y actualiza el total en la misma operación.
func (b *BillLedger) Add(itemName string, price decimal.Decimal, size Size) error {
	if price.IsNegative() {
		return domain.ErrInvalidInput
	}
	b.items = append(b.items, LineItem{ItemName: itemName, Size: size, Price: price})
	b.total = b.total.Add(price)
	return nil
}

// Clear vuelve la cuenta a estado vacío.
func (b *BillLedger) Clear() {
	b.items = nil
	b.total = decimal.Zero
}

// Items devuelve una copia de las líneas.
func (b *BillLedger) Items() []LineItem {
	out := make([]LineItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b *BillLedger) Total() decimal.Decimal { return b.total }

func (b *BillLedger) IsEmpty() bool { return len(b.items) == 0 }

// CustomerInfo datos de contacto del cliente; vacíos por defecto.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}
