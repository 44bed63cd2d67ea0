package pgsql

import (
	"context"

	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository stores purchases, sales and payments. Purchase and
// sale lines are embedded in their parent row as JSONB.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.PurchaseRepository = (*PgxTransactionRepository)(nil)
	_ portsrepo.SaleRepository     = (*PgxTransactionRepository)(nil)
	_ portsrepo.PaymentRepository  = (*PgxTransactionRepository)(nil)
)

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxTransactionRepository) SavePurchase(ctx context.Context, p domain.Purchase) error {
	lines := p.Items
	if lines == nil {
		lines = []domain.PurchaseLine{}
	}

	query := `
		INSERT INTO purchase (id, vendor_id, bill_number, bill_date, items, other_charges, notes, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		p.PurchaseID,
		p.VendorID,
		p.BillNumber,
		p.BillDate,
		lines,
		p.OtherCharges,
		p.Notes,
		p.PaymentStatus,
		p.CreatedAt,
	)
	if err != nil {
		return mapError("failed to insert purchase "+p.PurchaseID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `
		SELECT id, vendor_id, bill_number, bill_date, items, other_charges, notes, payment_status, created_at
		FROM purchase ORDER BY created_at, id;
	`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query purchases", err)
	}

	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Purchase, error) {
		var p domain.Purchase
		err := row.Scan(&p.PurchaseID, &p.VendorID, &p.BillNumber, &p.BillDate, &p.Items,
			&p.OtherCharges, &p.Notes, &p.PaymentStatus, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, mapError("failed to scan purchases", err)
	}
	return purchases, nil
}

func (r *PgxTransactionRepository) SaveSale(ctx context.Context, s domain.Sale) error {
	lines := s.Items
	if lines == nil {
		lines = []domain.SaleLine{}
	}

	query := `
		INSERT INTO sale (id, customer_id, invoice_number, invoice_date, items, other_charges, notes, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		s.SaleID,
		nullIfEmpty(s.CustomerID),
		s.InvoiceNumber,
		s.InvoiceDate,
		lines,
		s.OtherCharges,
		s.Notes,
		s.PaymentStatus,
		s.CreatedAt,
	)
	if err != nil {
		return mapError("failed to insert sale "+s.SaleID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `
		SELECT id, customer_id, invoice_number, invoice_date, items, other_charges, notes, payment_status, created_at
		FROM sale ORDER BY created_at, id;
	`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query sales", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		var s domain.Sale
		var customerID *string
		err := row.Scan(&s.SaleID, &customerID, &s.InvoiceNumber, &s.InvoiceDate, &s.Items,
			&s.OtherCharges, &s.Notes, &s.PaymentStatus, &s.CreatedAt)
		if customerID != nil {
			s.CustomerID = *customerID
		}
		return s, err
	})
	if err != nil {
		return nil, mapError("failed to scan sales", err)
	}
	return sales, nil
}

func (r *PgxTransactionRepository) SavePayment(ctx context.Context, p domain.Payment) error {
	query := `
		INSERT INTO payment (id, ref_type, ref_id, amount, method, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.q(ctx).Exec(ctx, query,
		p.PaymentID, p.RefType, p.RefID, p.Amount, p.Method, p.Date, p.Notes, p.CreatedAt)
	if err != nil {
		return mapError("failed to insert payment "+p.PaymentID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT id, ref_type, ref_id, amount, method, date, notes, created_at
		FROM payment ORDER BY created_at, id;
	`
	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapError("failed to query payments", err)
	}

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var p domain.Payment
		err := row.Scan(&p.PaymentID, &p.RefType, &p.RefID, &p.Amount, &p.Method, &p.Date, &p.Notes, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, mapError("failed to scan payments", err)
	}
	return payments, nil
}
