package repositories

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
)

// StockMovementReader defines read operations for the movement ledger.
type StockMovementReader interface {
	// ListMovements returns the full ledger ordered by (date, ref_id, seq, id).
	ListMovements(ctx context.Context) ([]domain.StockMovement, error)

	// ListMovementsPage returns up to limit movements after nextToken, optionally
	// filtered to one item, plus a token for the following page (nil on the last page).
	ListMovementsPage(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error)
}

// StockMovementWriter appends to the ledger. There is no update or delete.
type StockMovementWriter interface {
	SaveMovements(ctx context.Context, movements []domain.StockMovement) error
}

// StockMovementRepositoryFacade combines reader and writer.
type StockMovementRepositoryFacade interface {
	StockMovementReader
	StockMovementWriter
}
