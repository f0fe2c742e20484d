package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/application/pos"
	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/receipt"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

type staticMenu struct {
	entries []*entity.MenuEntry
	err     error
}

func (m staticMenu) Load(context.Context) ([]*entity.MenuEntry, error) { return m.entries, m.err }
func (m staticMenu) Save(context.Context, []*entity.MenuEntry) error   { return nil }

func newUseCase(err error) *pos.BillUseCase {
	menu := staticMenu{
		entries: []*entity.MenuEntry{
			{Name: "Paneer", HalfPrice: decimal.NewFromInt(90), FullPrice: decimal.NewFromInt(160)},
			{Name: "Lassi", HalfPrice: decimal.Zero, FullPrice: decimal.NewFromInt(50)},
		},
		err: err,
	}
	return pos.NewBillUseCase(menu, receipt.DefaultPolicy(), "Rs.", logger.Nop())
}

func newSession() *entity.Session { return entity.NewSession("s1", time.Now()) }

// Half Paneer (90) + Full Paneer (160): subtotal 250, tax 12.50, total 262.50.
func TestAddItem_PrecioDeLaCarta(t *testing.T) {
	uc := newUseCase(nil)
	sess := newSession()

	_, err := uc.AddItem(context.Background(), sess, dto.AddItemRequest{Item: "Paneer", Size: "Half"})
	require.NoError(t, err)
	out, err := uc.AddItem(context.Background(), sess, dto.AddItemRequest{Item: "Paneer", Size: "Full"})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Half", out.Items[0].Size)
	assert.True(t, out.RunningTotal.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "12.50", out.Totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "262.50", out.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "Rs.", out.Currency)
}

func TestAddItem_Errores(t *testing.T) {
	cases := []struct {
		name string
		in   dto.AddItemRequest
		want error
	}{
		{"porción inválida", dto.AddItemRequest{Item: "Paneer", Size: "half"}, domain.ErrInvalidInput},
		{"item vacío", dto.AddItemRequest{Item: " ", Size: "Full"}, domain.ErrInvalidInput},
		{"no está en la carta", dto.AddItemRequest{Item: "Pizza", Size: "Full"}, domain.ErrNotFound},
		{"porción no ofrecida", dto.AddItemRequest{Item: "Lassi", Size: "Half"}, domain.ErrSizeNotOffered},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := newSession()
			_, err := newUseCase(nil).AddItem(context.Background(), sess, tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, sess.Snapshot().Items, "la cuenta no cambia")
		})
	}
}

func TestAddItem_CartaNoDisponible(t *testing.T) {
	_, err := newUseCase(domain.ErrMenuUnavailable).AddItem(context.Background(), newSession(), dto.AddItemRequest{Item: "Paneer", Size: "Full"})
	assert.ErrorIs(t, err, domain.ErrMenuUnavailable)
}

func TestUpdateCustomerYClear(t *testing.T) {
	uc := newUseCase(nil)
	sess := newSession()
	_, err := uc.AddItem(context.Background(), sess, dto.AddItemRequest{Item: "Lassi", Size: "Full"})
	require.NoError(t, err)

	out := uc.UpdateCustomer(sess, dto.CustomerRequest{Name: " Aman ", Phone: "98765", Address: "Civil Lines"})
	assert.Equal(t, "Aman", out.Customer.Name)
	assert.Len(t, out.Items, 1)

	out = uc.Clear(sess)
	assert.Empty(t, out.Items)
	assert.True(t, out.RunningTotal.IsZero())
	assert.Equal(t, dto.CustomerResponse{}, out.Customer)
	assert.True(t, out.Totals.GrandTotal.IsZero())
}
