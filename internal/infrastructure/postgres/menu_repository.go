package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/dhaliwal-pos/internal/domain"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/internal/domain/repository"
)

//go:embed schema.sql
var schemaSQL string

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewMenuRepository construye el adaptador de persistencia para la carta.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla menu_items si no existe.
func (r *MenuRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema menu_items: %w", err)
	}
	return nil
}

// Load lista la carta en el orden guardado.
func (r *MenuRepo) Load(ctx context.Context) ([]*entity.MenuEntry, error) {
	entries, err := listMenu(ctx, r.pool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMenuUnavailable, err)
	}
	return entries, nil
}

// Save reemplaza la carta completa dentro de una transacción.
func (r *MenuRepo) Save(ctx context.Context, entries []*entity.MenuEntry) error {
	err := r.tx.Run(ctx, func(q Querier) error {
		return replaceMenu(ctx, q, entries)
	})
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrMenuSave, err)
}

func listMenu(ctx context.Context, q Querier) ([]*entity.MenuEntry, error) {
	rows, err := q.Query(ctx, `SELECT name, half_price, full_price FROM menu_items ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuEntry
	for rows.Next() {
		var e entity.MenuEntry
		if err := rows.Scan(&e.Name, &e.HalfPrice, &e.FullPrice); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func replaceMenu(ctx context.Context, q Querier, entries []*entity.MenuEntry) error {
	if _, err := q.Exec(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	for i, e := range entries {
		_, err := q.Exec(ctx,
			`INSERT INTO menu_items (name, half_price, full_price, position, updated_at) VALUES ($1, $2, $3, $4, now())`,
			e.Name, e.HalfPrice, e.FullPrice, i,
		)
		if err != nil {
			return fmt.Errorf("insert menu item %q: %w", e.Name, err)
		}
	}
	return nil
}
