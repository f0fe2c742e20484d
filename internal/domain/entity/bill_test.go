package entity_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
)

func TestParseSize(t *testing.T) {
	s, err := entity.ParseSize("Half")
	require.NoError(t, err)
	assert.Equal(t, entity.SizeHalf, s)

	s, err = entity.ParseSize("Full")
	require.NoError(t, err)
	assert.Equal(t, entity.SizeFull, s)

	_, err = entity.ParseSize("half")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "las etiquetas distinguen mayúsculas")
}

func TestBillLedger_AddMantieneTotal(t *testing.T) {
	var b entity.BillLedger
	assert.True(t, b.IsEmpty())

	require.NoError(t, b.Add("Dal", decimal.NewFromInt(120), entity.SizeFull))
	require.NoError(t, b.Add("Roti", decimal.NewFromInt(15), entity.SizeHalf))

	assert.False(t, b.IsEmpty())
	assert.True(t, decimal.NewFromInt(135).Equal(b.Total()))
	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Dal", items[0].ItemName, "se conserva el orden de captura")
	assert.Equal(t, entity.SizeHalf, items[1].Size)
}

func TestBillLedger_PrecioNegativoRechazado(t *testing.T) {
	var b entity.BillLedger
	err := b.Add("Dal", decimal.NewFromInt(-1), entity.SizeFull)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, b.IsEmpty())
	assert.True(t, b.Total().IsZero())
}

func TestBillLedger_ItemsEsCopia(t *testing.T) {
	var b entity.BillLedger
	require.NoError(t, b.Add("Dal", decimal.NewFromInt(120), entity.SizeFull))

	items := b.Items()
	items[0].ItemName = "otro"

	assert.Equal(t, "Dal", b.Items()[0].ItemName)
}

// Escenario 4: limpiar tras agregar deja cuenta, total y cliente vacíos.
func TestSession_ClearReiniciaTodo(t *testing.T) {
	s := entity.NewSession("abc", time.Now())
	require.NoError(t, s.AddItem("Paneer", decimal.NewFromInt(90), entity.SizeHalf))
	s.SetCustomer(entity.CustomerInfo{Name: "Aman", Phone: "999", Address: "Meerut"})

	s.Clear()

	snap := s.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Equal(t, "0.00", snap.Total.StringFixed(2))
	assert.Equal(t, entity.CustomerInfo{}, snap.Customer)
}

func TestSession_AddConcurrente(t *testing.T) {
	s := entity.NewSession("abc", time.Now())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AddItem("Roti", decimal.NewFromInt(10), entity.SizeHalf)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Len(t, snap.Items, 50)
	assert.True(t, decimal.NewFromInt(500).Equal(snap.Total))
}

func TestSession_IdleSince(t *testing.T) {
	start := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	s := entity.NewSession("abc", start)

	assert.True(t, s.IdleSince(start.Add(time.Minute)))
	s.Touch(start.Add(2 * time.Minute))
	assert.False(t, s.IdleSince(start.Add(time.Minute)))
}

func TestMenuEntry_Offers(t *testing.T) {
	m := entity.MenuEntry{Name: "Roti", HalfPrice: decimal.Zero, FullPrice: decimal.NewFromInt(20)}
	assert.False(t, m.Offers(entity.SizeHalf))
	assert.True(t, m.Offers(entity.SizeFull))
	assert.True(t, m.Orderable())

	none := entity.MenuEntry{Name: "Agotado"}
	assert.False(t, none.Orderable())
}
