// Package xlsx implementa el almacén de la carta sobre una hoja de cálculo Excel.
//
// Formato: primera hoja, fila de encabezado con las columnas Item, Half y Full
// (en cualquier orden; columnas extra se ignoran). Los precios no numéricos o
// negativos se leen como 0, que significa "porción no ofrecida".
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
)

// Encabezados obligatorios.
const (
	ColItem = "Item"
	ColHalf = "Half"
	ColFull = "Full"
)

const sheetName = "Sheet1"

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo adaptador de MenuRepository sobre un archivo .xlsx.
type MenuRepo struct {
	path string
}

// NewMenuRepository construye el adaptador para el archivo indicado.
func NewMenuRepository(path string) *MenuRepo {
	return &MenuRepo{path: path}
}

// Path ruta del archivo de la carta.
func (r *MenuRepo) Path() string { return r.path }

// Load lee la carta completa. Archivo inexistente, ilegible o sin las columnas
// requeridas devuelve un error que envuelve domain.ErrMenuUnavailable.
func (r *MenuRepo) Load(ctx context.Context) ([]*entity.MenuEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: archivo %q no encontrado", domain.ErrMenuUnavailable, r.path)
		}
		return nil, fmt.Errorf("%w: abrir %q: %v", domain.ErrMenuUnavailable, r.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %q no tiene hojas", domain.ErrMenuUnavailable, r.path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: leer filas: %v", domain.ErrMenuUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: el archivo debe tener las columnas %s, %s y %s", domain.ErrMenuUnavailable, ColItem, ColHalf, ColFull)
	}

	idx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.MenuEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cellAt(row, idx[ColItem]))
		if name == "" {
			continue
		}
		entries = append(entries, &entity.MenuEntry{
			Name:      name,
			HalfPrice: parsePrice(cellAt(row, idx[ColHalf])),
			FullPrice: parsePrice(cellAt(row, idx[ColFull])),
		})
	}
	return entries, nil
}

// Save escribe la carta completa en un archivo temporal del mismo directorio y
// lo renombra sobre el original; si algo falla el archivo anterior queda intacto.
func (r *MenuRepo) Save(ctx context.Context, entries []*entity.MenuEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{ColItem, ColHalf, ColFull}); err != nil {
		return fmt.Errorf("%w: encabezado: %v", domain.ErrMenuSave, err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: celda fila %d: %v", domain.ErrMenuSave, i+2, err)
		}
		row := []interface{}{e.Name, e.HalfPrice.InexactFloat64(), e.FullPrice.InexactFloat64()}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("%w: fila %d: %v", domain.ErrMenuSave, i+2, err)
		}
	}

	if err := writeAtomic(r.path, f); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMenuSave, err)
	}
	return nil
}

func writeAtomic(path string, f *excelize.File) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".menu-*.xlsx")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("escribir: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("cerrar: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("permisos: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("reemplazar %q: %w", path, err)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headerIndex(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == ColItem || h == ColHalf || h == ColFull {
			if _, dup := idx[h]; !dup {
				idx[h] = i
			}
		}
	}
	for _, col := range []string{ColItem, ColHalf, ColFull} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q (se requieren %s, %s y %s)",
				domain.ErrMenuUnavailable, col, ColItem, ColHalf, ColFull)
		}
	}
	return idx, nil
}

// cellAt tolera filas cortas: GetRows recorta las celdas vacías del final.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parsePrice convierte la celda a decimal; vacío, texto o negativo → 0.
func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
