package postgres

import (
	"context"
	"database/sql"
	"time"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (agency_id, contract_id, amount, method, reference, notes, paid_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		p.AgencyID, p.ContractID, p.Amount, p.Method, p.Reference, p.Notes, p.PaidOn, time.Now(),
	).Scan(&p.ID)
}

func (r *paymentRepository) ListByContract(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, error) {
	query := `SELECT id, agency_id, contract_id, amount, method, reference, notes, paid_on, created_on
	          FROM payments WHERE agency_id = $1 AND contract_id = $2 ORDER BY paid_on`
	rows, err := r.db.QueryContext(ctx, query, agencyID, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.AgencyID, &p.ContractID, &p.Amount, &p.Method, &p.Reference, &p.Notes, &p.PaidOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumByContract(ctx context.Context, agencyID, contractID int32) (string, error) {
	var sum string
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE agency_id = $1 AND contract_id = $2`
	err := r.db.QueryRowContext(ctx, query, agencyID, contractID).Scan(&sum)
	return sum, err
}
