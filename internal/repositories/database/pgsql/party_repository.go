package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPartyRepository stores vendors and customers in two tables of the same shape.
type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

func partyTable(kind domain.PartyKind) (string, error) {
	switch kind {
	case domain.PartyVendor:
		return domain.CollectionVendor, nil
	case domain.PartyCustomer:
		return domain.CollectionCustomer, nil
	}
	return "", fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	table, err := partyTable(party.Kind)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + table + ` (id, name, phone, email, address, gst_number, notes, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err = r.q(ctx).Exec(ctx, query,
		party.PartyID,
		party.Name,
		party.Phone,
		party.Email,
		party.Address,
		party.GSTNumber,
		party.Notes,
		party.IsActive,
		party.CreatedAt,
	)
	if err != nil {
		return mapError("failed to insert "+table+" "+party.PartyID, err)
	}
	return nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	table, err := partyTable(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, name, phone, email, address, gst_number, notes, is_active, created_at
		FROM ` + table + ` ORDER BY created_at, id;`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query "+table, err)
	}

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		p := domain.Party{Kind: kind}
		err := row.Scan(&p.PartyID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.GSTNumber, &p.Notes, &p.IsActive, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, mapError("failed to scan "+table, err)
	}
	return parties, nil
}
