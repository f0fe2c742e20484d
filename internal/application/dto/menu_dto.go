package dto

import "github.com/shopspring/decimal"

// MenuItemResponse plato de la carta. HalfOffered/FullOffered indican qué
// botones de porción se muestran (precio > 0).
type MenuItemResponse struct {
	Name        string          `json:"name"`
	Half        decimal.Decimal `json:"half"`
	Full        decimal.Decimal `json:"full"`
	HalfOffered bool            `json:"half_offered"`
	FullOffered bool            `json:"full_offered"`
}

// MenuResponse respuesta de GET /api/menu. Warning no vacío significa que la
// carta no se pudo leer y se muestra vacía.
type MenuResponse struct {
	Items   []MenuItemResponse `json:"items"`
	Warning string             `json:"warning,omitempty"`
}

// MenuItemInput fila del editor de la carta.
type MenuItemInput struct {
	Name string          `json:"name"`
	Half decimal.Decimal `json:"half"`
	Full decimal.Decimal `json:"full"`
}

// SaveMenuRequest body para PUT /api/admin/menu: reemplaza la carta completa.
type SaveMenuRequest struct {
	Items []MenuItemInput `json:"items"`
}
