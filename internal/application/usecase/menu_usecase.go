package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

// MenuWarning texto mostrado en la UI cuando la carta no se pudo leer.
const MenuWarning = "Menu could not be loaded. Check the menu file and reload."

// MenuUseCase lectura y edición de la carta.
type MenuUseCase struct {
	repo repository.MenuRepository
	log  *logger.Logger
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository, log *logger.Logger) *MenuUseCase {
	return &MenuUseCase{repo: repo, log: log.Component("menu")}
}

// List devuelve la carta. Un fallo de lectura nunca es error: se registra y
// se devuelve la carta vacía con Warning.
func (uc *MenuUseCase) List(ctx context.Context) *dto.MenuResponse {
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("carta no disponible, se muestra vacía")
		return &dto.MenuResponse{Items: []dto.MenuItemResponse{}, Warning: MenuWarning}
	}
	return toMenuResponse(entries)
}

// Save valida y reemplaza la carta completa.
func (uc *MenuUseCase) Save(ctx context.Context, in dto.SaveMenuRequest) (*dto.MenuResponse, error) {
	entries, err := validateMenu(in.Items)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, entries); err != nil {
		uc.log.Error().Err(err).Int("items", len(entries)).Msg("error guardando la carta")
		return nil, err
	}
	uc.log.Info().Int("items", len(entries)).Msg("carta guardada")
	return toMenuResponse(entries), nil
}

// Delete quita de la carta los platos con ese nombre y guarda.
// Devuelve domain.ErrNotFound si no hay ninguno.
func (uc *MenuUseCase) Delete(ctx context.Context, name string) (*dto.MenuResponse, error) {
	name = strings.TrimSpace(name)
	entries, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]*entity.MenuEntry, 0, len(entries))
	for _, e := range entries {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Save(ctx, kept); err != nil {
		uc.log.Error().Err(err).Str("item", name).Msg("error eliminando plato")
		return nil, err
	}
	uc.log.Info().Str("item", name).Msg("plato eliminado")
	return toMenuResponse(kept), nil
}

func validateMenu(items []dto.MenuItemInput) ([]*entity.MenuEntry, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]*entity.MenuEntry, 0, len(items))
	for i, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: fila %d sin nombre", domain.ErrInvalidInput, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q aparece más de una vez", domain.ErrDuplicate, name)
		}
		if it.Half.IsNegative() || it.Full.IsNegative() {
			return nil, fmt.Errorf("%w: %q tiene precio negativo", domain.ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
		out = append(out, &entity.MenuEntry{Name: name, HalfPrice: it.Half, FullPrice: it.Full})
	}
	return out, nil
}

func toMenuResponse(entries []*entity.MenuEntry) *dto.MenuResponse {
	items := make([]dto.MenuItemResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.MenuItemResponse{
			Name:        e.Name,
			Half:        e.HalfPrice,
			Full:        e.FullPrice,
			HalfOffered: e.Offers(entity.SizeHalf),
			FullOffered: e.Offers(entity.SizeFull),
		})
	}
	return &dto.MenuResponse{Items: items}
}
