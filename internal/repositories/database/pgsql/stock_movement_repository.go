package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStockMovementRepository is the append-only movement ledger.
type PgxStockMovementRepository struct {
	BaseRepository
}

func newPgxStockMovementRepository(pool *pgxpool.Pool) *PgxStockMovementRepository {
	return &PgxStockMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockMovementRepositoryFacade = (*PgxStockMovementRepository)(nil)

const (
	movementColumns = `id, item_id, type, qty, reason, ref_type, ref_id, date, seq`
	movementSelect  = `id, item_id, type, qty, reason, ref_type, COALESCE(NULLIF(ref_id, '00000000-0000-0000-0000-000000000000'::uuid)::text, ''), date, seq`
	movementOrder   = `ORDER BY date, ref_id, seq, id`
)

// refIDOrNil stores a missing reference as the nil uuid.
func refIDOrNil(refID string) string {
	if refID == "" {
		return uuid.Nil.String()
	}
	return refID
}

func scanMovement(row pgx.CollectableRow) (domain.StockMovement, error) {
	var m domain.StockMovement
	err := row.Scan(&m.MovementID, &m.ItemID, &m.Type, &m.Qty, &m.Reason, &m.RefType, &m.RefID, &m.Date, &m.Seq)
	return m, err
}

// SaveMovements inserts the batch in one round trip. Callers wanting the
// batch to commit with its purchase or sale run it inside WithinTx.
func (r *PgxStockMovementRepository) SaveMovements(ctx context.Context, movements []domain.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	for i, m := range movements {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("movement %d: %w", i, err)
		}
	}

	query := `INSERT INTO stockmovement (` + movementColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	batch := &pgx.Batch{}
	for _, m := range movements {
		batch.Queue(query, m.MovementID, m.ItemID, m.Type, m.Qty, m.Reason, m.RefType, refIDOrNil(m.RefID), m.Date, m.Seq)
	}

	return r.WithinTx(ctx, func(txCtx context.Context) error {
		br := r.q(txCtx).SendBatch(txCtx, batch)
		for _, m := range movements {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return mapError("failed to insert stock movement "+m.MovementID, err)
			}
		}
		if err := br.Close(); err != nil {
			return mapError("failed to close movement batch", err)
		}
		return nil
	})
}

func (r *PgxStockMovementRepository) ListMovements(ctx context.Context) ([]domain.StockMovement, error) {
	query := `SELECT ` + movementSelect + ` FROM stockmovement ` + movementOrder + `;`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query stock movements", err)
	}
	movements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		return nil, mapError("failed to scan stock movements", err)
	}
	return movements, nil
}

// ListMovementsPage uses keyset pagination on (date, ref_id, seq, id).
func (r *PgxStockMovementRepository) ListMovementsPage(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	// One extra row tells us whether there is a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + movementSelect + ` FROM stockmovement WHERE TRUE`
	var args []any

	if itemID != "" {
		args = append(args, itemID)
		query += ` AND item_id = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeMovementCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid next_token", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		args = append(args, cursor.Date, refIDOrNil(cursor.RefID), cursor.Seq, cursor.MovementID)
		n := len(args)
		query += fmt.Sprintf(` AND (date, ref_id, seq, id) > ($%d, $%d::uuid, $%d, $%d::uuid)`, n-3, n-2, n-1, n)
	}

	args = append(args, fetchLimit)
	query += ` ` + movementOrder + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError("failed to query stock movement page", err)
	}
	movements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		return nil, nil, mapError("failed to scan stock movement page", err)
	}

	var next *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[limit-1]
		token := pagination.EncodeMovementCursor(pagination.MovementCursor{
			Date: last.Date, RefID: last.RefID, Seq: last.Seq, MovementID: last.MovementID,
		})
		next = &token
	}
	return movements, next, nil
}
