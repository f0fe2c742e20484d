package billing

import (
	"context"
	"time"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
)

// ShopProfile datos del local impresos en encabezado y pie del recibo.
type ShopProfile struct {
	Name           string
	AddressLine    string
	Footer         string
	CurrencySymbol string
}

// ReceiptDocument todo lo que el generador necesita para dibujar un recibo.
type ReceiptDocument struct {
	Shop     ShopProfile
	Items    []entity.LineItem
	Customer entity.CustomerInfo
	Totals   receipt.Totals
	IssuedAt time.Time
}

// ReceiptRenderer puerto del generador de PDF térmico.
// Available se consulta en cada intento: si es false no se llama a RenderReceipt.
type ReceiptRenderer interface {
	Available() bool
	RenderReceipt(ctx context.Context, doc ReceiptDocument) ([]byte, error)
}
