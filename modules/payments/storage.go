package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meetspace/meetspace/pkg/pg"
)

// Payment is one ledger entry. BillingRef holds the encrypted external
// billing reference as stored; decryption happens in the service layer.
type Payment struct {
	ID         uuid.UUID
	PayerID    uuid.UUID
	Amount     int64
	Currency   string
	BillingRef string
	RecordedAt time.Time
}

type paymentStore interface {
	CreatePayment(ctx context.Context, p Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (Payment, error)
	ListByPayer(ctx context.Context, payerID uuid.UUID) ([]Payment, error)
}

type storage struct {
	db *pgxpool.Pool
}

func newStorage(db *pgxpool.Pool) *storage {
	return &storage{db: db}
}

func (s *storage) CreatePayment(ctx context.Context, p Payment) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO payments_ledger (id, payer_id, amount, currency, billing_ref, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.PayerID, p.Amount, p.Currency, p.BillingRef, p.RecordedAt)
	return err
}

func (s *storage) GetPayment(ctx context.Context, id uuid.UUID) (Payment, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, payer_id, amount, currency, billing_ref, recorded_at
		 FROM payments_ledger WHERE id = $1`, id)
	return scanPayment(row)
}

func (s *storage) ListByPayer(ctx context.Context, payerID uuid.UUID) ([]Payment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, payer_id, amount, currency, billing_ref, recorded_at
		 FROM payments_ledger WHERE payer_id = $1 ORDER BY recorded_at`, payerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.PayerID, &p.Amount, &p.Currency, &p.BillingRef, &p.RecordedAt)
	if pg.IsNotFoundError(err) {
		return Payment{}, ErrPaymentNotFound
	}
	return p, err
}
