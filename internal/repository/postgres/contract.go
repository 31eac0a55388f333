package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, agency_id, reference, customer_id, vehicle_id, start_date, end_date, actual_return_date,
	daily_rate, daily_km_limit, tier_name, km_bonus_per_day, total_days, total_km_allowed,
	start_mileage, end_mileage, km_overage, overage_charges, additional_charges, total_amount,
	notes, status, created_on, updated_on`

func scanContract(scan func(dest ...interface{}) error) (*domain.Contract, error) {
	c := &domain.Contract{}
	err := scan(&c.ID, &c.AgencyID, &c.Reference, &c.CustomerID, &c.VehicleID, &c.StartDate, &c.EndDate, &c.ActualReturnDate,
		&c.DailyRate, &c.DailyKmLimit, &c.TierName, &c.KmBonusPerDay, &c.TotalDays, &c.TotalKmAllowed,
		&c.StartMileage, &c.EndMileage, &c.KmOverage, &c.OverageCharges, &c.AdditionalCharges, &c.TotalAmount,
		&c.Notes, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (agency_id, reference, customer_id, vehicle_id, start_date, end_date,
	            daily_rate, daily_km_limit, tier_name, km_bonus_per_day, total_days, total_km_allowed,
	            start_mileage, km_overage, overage_charges, additional_charges, total_amount, notes, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.AgencyID, c.Reference, c.CustomerID, c.VehicleID, c.StartDate, c.EndDate,
		c.DailyRate, c.DailyKmLimit, c.TierName, c.KmBonusPerDay, c.TotalDays, c.TotalKmAllowed,
		c.StartMileage, c.KmOverage, c.OverageCharges, c.AdditionalCharges, c.TotalAmount, c.Notes, c.Status,
		time.Now(), time.Now(),
	).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, agencyID, id int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1 AND agency_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, agencyID)
	return scanContract(row.Scan)
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contracts SET start_date=$1, end_date=$2, notes=$3, status=$4, updated_on=$5
	          WHERE id=$6 AND agency_id=$7`
	_, err := r.db.ExecContext(ctx, query, c.StartDate, c.EndDate, c.Notes, c.Status, time.Now(), c.ID, c.AgencyID)
	return err
}

func (r *contractRepository) List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + contractColumns + ` FROM contracts WHERE agency_id = $1`
	args := []interface{}{agencyID}
	argIdx := 2
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	base += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	return r.queryContracts(ctx, base, count, args...)
}

func (r *contractRepository) ListByCustomer(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + contractColumns + ` FROM contracts WHERE agency_id = $1 AND customer_id = $2`

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, agencyID, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	base += " ORDER BY created_on DESC LIMIT $3 OFFSET $4"
	return r.queryContracts(ctx, base, count, agencyID, customerID, pageSize, offset)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, count int32, args ...interface{}) ([]domain.Contract, int32, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) CompleteTx(ctx context.Context, tx *sql.Tx, c *domain.Contract) error {
	query := `UPDATE contracts SET actual_return_date=$1, end_mileage=$2, km_overage=$3, overage_charges=$4,
	            additional_charges=$5, total_amount=$6, notes=$7, status=$8, updated_on=$9
	          WHERE id=$10 AND agency_id=$11`
	res, err := tx.ExecContext(ctx, query,
		c.ActualReturnDate, c.EndMileage, c.KmOverage, c.OverageCharges,
		c.AdditionalCharges, c.TotalAmount, c.Notes, c.Status, time.Now(), c.ID, c.AgencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
