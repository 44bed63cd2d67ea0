package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository writes as one atomic unit.
//
// Repository calls made with the ctx passed to fn join the unit; if fn returns
// an error nothing written inside it is kept.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
