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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, agency_id, name, email, phone, address, license_number, license_expiry, total_rentals, apply_tier_discount, status, notes, created_on, updated_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (agency_id, name, email, phone, address, license_number, license_expiry, total_rentals, apply_tier_discount, status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.AgencyID, c.Name, c.Email, c.Phone, c.Address, c.LicenseNumber, c.LicenseExpiry,
		c.TotalRentals, c.ApplyTierDiscount, c.Status, c.Notes, time.Now(), time.Now(),
	).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, agencyID, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND agency_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, agencyID).Scan(
		&c.ID, &c.AgencyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.LicenseNumber, &c.LicenseExpiry,
		&c.TotalRentals, &c.ApplyTierDiscount, &c.Status, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3, address=$4, license_number=$5, license_expiry=$6, apply_tier_discount=$7, status=$8, notes=$9, updated_on=$10
	          WHERE id=$11 AND agency_id=$12`
	_, err := r.db.ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.LicenseNumber, c.LicenseExpiry,
		c.ApplyTierDiscount, c.Status, c.Notes, time.Now(), c.ID, c.AgencyID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, agencyID, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1 AND agency_id = $2`, id, agencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + customerColumns + ` FROM customers WHERE agency_id = $1`
	args := []interface{}{agencyID}
	argIdx := 2
	if query != "" {
		base += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d OR license_number ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}

	var count int32
	countSQL := "SELECT count(*) FROM (" + base + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	base += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.AgencyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.LicenseNumber, &c.LicenseExpiry,
			&c.TotalRentals, &c.ApplyTierDiscount, &c.Status, &c.Notes, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}

func (r *customerRepository) IncrementTotalRentalsTx(ctx context.Context, tx *sql.Tx, agencyID, id int32) error {
	query := `UPDATE customers SET total_rentals = total_rentals + 1, updated_on = $1 WHERE id = $2 AND agency_id = $3`
	res, err := tx.ExecContext(ctx, query, time.Now(), id, agencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
