package xlsx_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/infrastructure/xlsx"
)

// writeSheet crea un .xlsx con las filas indicadas en la primera hoja.
func writeSheet(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMenuRepo_GuardarYLeer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DhalisMenu.xlsx")
	repo := xlsx.NewMenuRepository(path)
	entries := []*entity.MenuEntry{
		{Name: "Paneer Tikka", HalfPrice: price("90"), FullPrice: price("170")},
		{Name: "Roti", HalfPrice: decimal.Zero, FullPrice: price("15.50")},
	}

	require.NoError(t, repo.Save(context.Background(), entries))
	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Paneer Tikka", got[0].Name)
	assert.True(t, price("90").Equal(got[0].HalfPrice))
	assert.True(t, price("170").Equal(got[0].FullPrice))
	assert.Equal(t, "Roti", got[1].Name)
	assert.True(t, got[1].HalfPrice.IsZero())
	assert.True(t, price("15.5").Equal(got[1].FullPrice))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".menu-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "no deben quedar temporales")
}

func TestMenuRepo_ConversionDePrecios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"Full", "Notas", "Item", "Half"},
		{120, "picante", "Dal Makhani", "abc"},
		{"n/a", "", "Lassi", -5},
		{30, "", "", 10}, // sin nombre: se omite
		{"", "", "  Jeera Rice  ", 60.5},
	})

	got, err := xlsx.NewMenuRepository(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "Dal Makhani", got[0].Name)
	assert.True(t, got[0].HalfPrice.IsZero(), "texto en Half se lee como 0")
	assert.True(t, price("120").Equal(got[0].FullPrice))
	assert.True(t, got[1].HalfPrice.IsZero(), "negativo se lee como 0")
	assert.True(t, got[1].FullPrice.IsZero())
	assert.Equal(t, "Jeera Rice", got[2].Name, "el nombre se recorta")
	assert.True(t, price("60.5").Equal(got[2].HalfPrice))
	assert.True(t, got[2].FullPrice.IsZero(), "celda vacía se lee como 0")
}

// Escenario 5: archivo inexistente → error recuperable, sin pánico.
func TestMenuRepo_ArchivoInexistente(t *testing.T) {
	repo := xlsx.NewMenuRepository(filepath.Join(t.TempDir(), "no-existe.xlsx"))

	got, err := repo.Load(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrMenuUnavailable)
}

func TestMenuRepo_ColumnasFaltantes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"Item", "Price"},
		{"Dal", 100},
	})

	_, err := xlsx.NewMenuRepository(path).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrMenuUnavailable)
	assert.Contains(t, err.Error(), "Half")
}

func TestMenuRepo_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("esto no es un zip"), 0o644))

	_, err := xlsx.NewMenuRepository(path).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrMenuUnavailable)
}

func TestMenuRepo_FalloAlGuardarNoAplicaCambios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sin-directorio", "menu.xlsx")
	repo := xlsx.NewMenuRepository(path)

	err := repo.Save(context.Background(), []*entity.MenuEntry{{Name: "Dal", FullPrice: price("100")}})

	assert.ErrorIs(t, err, domain.ErrMenuSave)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMenuRepo_GuardarReemplaza(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.xlsx")
	repo := xlsx.NewMenuRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []*entity.MenuEntry{{Name: "Dal", FullPrice: price("100")}, {Name: "Roti", FullPrice: price("15")}}))
	require.NoError(t, repo.Save(ctx, []*entity.MenuEntry{{Name: "Roti", FullPrice: price("15")}}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Roti", got[0].Name)
}
