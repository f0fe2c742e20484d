package entity

import "github.com/shopspring/decimal"

// MenuEntry representa un plato de la carta con precio por porción.
// Un precio en cero significa que esa porción no se ofrece.
type MenuEntry struct {
	Name      string
	HalfPrice decimal.Decimal
	FullPrice decimal.Decimal
}

// PriceFor devuelve el precio de la porción indicada.
func (m *MenuEntry) PriceFor(size Size) decimal.Decimal {
	if size == SizeHalf {
		return m.HalfPrice
	}
	return m.FullPrice
}

// Offers indica si la porción tiene precio positivo.
func (m *MenuEntry) Offers(size Size) bool {
	return m.PriceFor(size).GreaterThan(decimal.Zero)
}

// Orderable es true si al menos una porción se ofrece.
func (m *MenuEntry) Orderable() bool {
	return m.Offers(SizeHalf) || m.Offers(SizeFull)
}
