// Package pos contiene los casos de uso de caja: la cuenta y los datos del
// cliente de cada sesión.
package pos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// BillUseCase operaciones sobre la cuenta de una sesión.
type BillUseCase struct {
	menu     repository.MenuRepository
	policy   receipt.Policy
	currency string
	log      *logger.Logger
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(menu repository.MenuRepository, policy receipt.Policy, currency string, log *logger.Logger) *BillUseCase {
	return &BillUseCase{menu: menu, policy: policy, currency: currency, log: log.Component("bill")}
}

// GetBill devuelve líneas, total acumulado, cliente y totales calculados.
func (uc *BillUseCase) GetBill(sess *entity.Session) *dto.BillResponse {
	return uc.toBillResponse(sess.Snapshot())
}

// AddItem agrega a la cuenta la porción de un plato con el precio vigente en la carta.
//
// Errores:
//   - domain.ErrInvalidInput    etiqueta de porción o nombre vacío.
//   - domain.ErrNotFound        el plato no está en la carta.
//   - domain.ErrSizeNotOffered  la porción tiene precio 0.
//   - domain.ErrMenuUnavailable la carta no se pudo leer.
func (uc *BillUseCase) AddItem(ctx context.Context, sess *entity.Session, in dto.AddItemRequest) (*dto.BillResponse, error) {
	size, err := entity.ParseSize(in.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: porción %q (use Half o Full)", domain.ErrInvalidInput, in.Size)
	}
	name := strings.TrimSpace(in.Item)
	if name == "" {
		return nil, fmt.Errorf("%w: item requerido", domain.ErrInvalidInput)
	}

	entries, err := uc.menu.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry := findEntry(entries, name)
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if !entry.Offers(size) {
		return nil, domain.ErrSizeNotOffered
	}
	if err := sess.AddItem(entry.Name, entry.PriceFor(size), size); err != nil {
		return nil, err
	}
	uc.log.Debug().
		Str("session", sess.ID).
		Str("item", entry.Name).
		Str("size", string(size)).
		Str("price", entry.PriceFor(size).StringFixed(2)).
		Msg("línea agregada")
	return uc.GetBill(sess), nil
}

// UpdateCustomer reemplaza los datos del cliente de la sesión.
func (uc *BillUseCase) UpdateCustomer(sess *entity.Session, in dto.CustomerRequest) *dto.BillResponse {
	sess.SetCustomer(entity.CustomerInfo{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	})
	return uc.GetBill(sess)
}

// Clear vacía la cuenta y los datos del cliente.
func (uc *BillUseCase) Clear(sess *entity.Session) *dto.BillResponse {
	sess.Clear()
	uc.log.Debug().Str("session", sess.ID).Msg("cuenta limpiada")
	return uc.GetBill(sess)
}

func findEntry(entries []*entity.MenuEntry, name string) *entity.MenuEntry {
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (uc *BillUseCase) toBillResponse(snap entity.SessionSnapshot) *dto.BillResponse {
	items := make([]dto.LineItemResponse, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, dto.LineItemResponse{Item: it.ItemName, Size: string(it.Size), Price: it.Price})
	}
	t := receipt.ComputeTotals(snap.Items, uc.policy)
	return &dto.BillResponse{
		Items:        items,
		RunningTotal: snap.Total,
		Customer: dto.CustomerResponse{
			Name:    snap.Customer.Name,
			Phone:   snap.Customer.Phone,
			Address: snap.Customer.Address,
		},
		Totals: dto.TotalsResponse{
			Subtotal:   t.Subtotal,
			TaxRate:    t.TaxRate,
			TaxAmount:  t.TaxAmount,
			Discount:   t.Discount,
			GrandTotal: t.GrandTotal,
		},
		Currency: uc.currency,
	}
}
