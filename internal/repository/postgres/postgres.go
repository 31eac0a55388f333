package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"erp-cars-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AgencyRepository
	repository.UserRepository
	repository.CustomerRepository
	repository.VehicleRepository
	repository.ContractRepository
	repository.PaymentRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		AgencyRepository:       NewAgencyRepository(db),
		UserRepository:         NewUserRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		ContractRepository:     NewContractRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// ExecTx runs fn inside a transaction. Contract completion relies on this to
// keep the contract update, vehicle mileage write and overage notification
// atomic.
func (s *Store) ExecTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
