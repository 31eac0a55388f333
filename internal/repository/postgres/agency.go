package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"
)

type agencyRepository struct {
	db *sql.DB
}

func NewAgencyRepository(db *sql.DB) repository.AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) Create(ctx context.Context, a *domain.Agency) error {
	query := `INSERT INTO agencies (name, address, city, phone, email, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.Address, a.City, a.Phone, a.Email, time.Now(), time.Now()).Scan(&a.ID)
}

func (r *agencyRepository) GetByID(ctx context.Context, id int32) (*domain.Agency, error) {
	a := &domain.Agency{}
	query := `SELECT id, name, address, city, phone, email, created_on, updated_on FROM agencies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Address, &a.City, &a.Phone, &a.Email, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *agencyRepository) Update(ctx context.Context, a *domain.Agency) error {
	query := `UPDATE agencies SET name=$1, address=$2, city=$3, phone=$4, email=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, a.Name, a.Address, a.City, a.Phone, a.Email, time.Now(), a.ID)
	return err
}
