package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemColumns = `id, name, sku, category, unit, tax_rate, cost_price, sale_price,
	reorder_level, opening_stock, barcode, is_active, created_at`

func scanItem(row pgx.Row) (domain.Item, error) {
	var it domain.Item
	err := row.Scan(
		&it.ItemID,
		&it.Name,
		&it.SKU,
		&it.Category,
		&it.Unit,
		&it.TaxRate,
		&it.CostPrice,
		&it.SalePrice,
		&it.ReorderLevel,
		&it.OpeningStock,
		&it.Barcode,
		&it.IsActive,
		&it.CreatedAt,
	)
	return it, err
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	query := `INSERT INTO item (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	_, err := r.q(ctx).Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.SKU,
		item.Category,
		item.Unit,
		item.TaxRate,
		item.CostPrice,
		item.SalePrice,
		item.ReorderLevel,
		item.OpeningStock,
		item.Barcode,
		item.IsActive,
		item.CreatedAt,
	)
	if err != nil {
		return mapError("failed to insert item "+item.ItemID, err)
	}
	return nil
}

func (r *PgxItemRepository) FindItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM item WHERE sku = $1;`

	item, err := scanItem(r.q(ctx).QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapError("failed to find item by sku", err)
	}
	return &item, nil
}

func (r *PgxItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM item ORDER BY created_at, id;`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query items", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, mapError("failed to scan items", err)
	}
	return items, nil
}
