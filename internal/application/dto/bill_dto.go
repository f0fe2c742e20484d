package dto

import "github.com/shopspring/decimal"

// AddItemRequest body para POST /api/bill/items (botón Half/Full de un plato).
type AddItemRequest struct {
	Item string `json:"item"`
	Size string `json:"size"` // "Half" | "Full"
}

// CustomerRequest body para PUT /api/bill/customer.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse datos del cliente de la sesión.
type CustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItemResponse línea de la cuenta.
type LineItemResponse struct {
	Item  string          `json:"item"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// TotalsResponse totales calculados del recibo. TaxRate en porcentaje.
type TotalsResponse struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// BillResponse estado de la cuenta de la sesión.
type BillResponse struct {
	Items            []LineItemResponse `json:"items"`
	RunningTotal     decimal.Decimal    `json:"running_total"`
	Customer         CustomerResponse   `json:"customer"`
	Totals           TotalsResponse     `json:"totals"`
	Currency         string             `json:"currency"`
	ReceiptAvailable bool               `json:"receipt_available"`
}
