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

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, agency_id, plate_number, make, model, year, color, mileage, daily_rate, daily_km_limit, status, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (agency_id, plate_number, make, model, year, color, mileage, daily_rate, daily_km_limit, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.AgencyID, v.PlateNumber, v.Make, v.Model, v.Year, v.Color, v.Mileage,
		v.DailyRate, v.DailyKmLimit, v.Status, time.Now(), time.Now(),
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, agencyID, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND agency_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, agencyID).Scan(
		&v.ID, &v.AgencyID, &v.PlateNumber, &v.Make, &v.Model, &v.Year, &v.Color, &v.Mileage,
		&v.DailyRate, &v.DailyKmLimit, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET plate_number=$1, make=$2, model=$3, year=$4, color=$5, mileage=$6, daily_rate=$7, daily_km_limit=$8, status=$9, updated_on=$10
	          WHERE id=$11 AND agency_id=$12`
	_, err := r.db.ExecContext(ctx, query,
		v.PlateNumber, v.Make, v.Model, v.Year, v.Color, v.Mileage,
		v.DailyRate, v.DailyKmLimit, v.Status, time.Now(), v.ID, v.AgencyID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, agencyID, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1 AND agency_id = $2`, id, agencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	base := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE agency_id = $1`
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

	base += fmt.Sprintf(" ORDER BY plate_number LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.AgencyID, &v.PlateNumber, &v.Make, &v.Model, &v.Year, &v.Color, &v.Mileage,
			&v.DailyRate, &v.DailyKmLimit, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, agencyID, id int32, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status=$1, updated_on=$2 WHERE id=$3 AND agency_id=$4`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id, agencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) UpdateMileageTx(ctx context.Context, tx *sql.Tx, agencyID, id int32, mileage int, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET mileage=$1, status=$2, updated_on=$3 WHERE id=$4 AND agency_id=$5`
	res, err := tx.ExecContext(ctx, query, mileage, status, time.Now(), id, agencyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
