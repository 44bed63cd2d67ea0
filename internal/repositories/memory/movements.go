package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/pagination"
)

// SaveMovements appends all movements or none.
func (s *Store) SaveMovements(ctx context.Context, movements []domain.StockMovement) error {
	for i, m := range movements {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("movement %d: %w", i, err)
		}
	}
	defer s.lock(ctx)()
	s.movements = append(s.movements, movements...)
	return nil
}

func (s *Store) ListMovements(ctx context.Context) ([]domain.StockMovement, error) {
	defer s.lock(ctx)()
	return sortedMovements(s.movements), nil
}

func (s *Store) ListMovementsPage(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	var cursor *pagination.MovementCursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeMovementCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid next_token", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		cursor = &c
	}

	defer s.lock(ctx)()

	page := make([]domain.StockMovement, 0, limit)
	var next *string
	for _, m := range sortedMovements(s.movements) {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		if cursor != nil && !cursor.After(m.Date, m.RefID, m.Seq, m.MovementID) {
			continue
		}
		if len(page) == limit {
			last := page[len(page)-1]
			token := pagination.EncodeMovementCursor(pagination.MovementCursor{
				Date: last.Date, RefID: last.RefID, Seq: last.Seq, MovementID: last.MovementID,
			})
			next = &token
			break
		}
		page = append(page, m)
	}
	return page, next, nil
}

func sortedMovements(movements []domain.StockMovement) []domain.StockMovement {
	out := slices.Clone(movements)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.RefID != b.RefID {
			return a.RefID < b.RefID
		}
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		return a.MovementID < b.MovementID
	})
	return out
}
