package pgsql

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHealthRepository struct {
	BaseRepository
}

func newPgxHealthRepository(pool *pgxpool.Pool) *PgxHealthRepository {
	return &PgxHealthRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HealthRepository = (*PgxHealthRepository)(nil)

func (r *PgxHealthRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return mapError("database ping failed", err)
	}
	return nil
}

// ListCollections reports which of the known collections exist as tables.
func (r *PgxHealthRepository) ListCollections(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = ANY($1)
		ORDER BY table_name;
	`
	rows, err := r.Pool.Query(ctx, query, domain.Collections())
	if err != nil {
		return nil, mapError("failed to list collections", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("failed to scan collections", err)
	}
	return names, nil
}
