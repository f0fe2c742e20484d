package repository

import (
	"context"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
)

// MenuRepository puerto del almacén de la carta (hoja de cálculo o tabla).
// Load devuelve las entradas en el orden del almacén; los errores de lectura
// envuelven domain.ErrMenuUnavailable. Save reemplaza la carta completa y,
// si falla, deja el almacén sin cambios (envuelve domain.ErrMenuSave).
type MenuRepository interface {
	Load(ctx context.Context) ([]*entity.MenuEntry, error)
	Save(ctx context.Context, entries []*entity.MenuEntry) error
}
