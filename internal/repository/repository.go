package repository

import (
	"context"
	"database/sql"

	"erp-cars-backend/internal/domain"
)

// TxRunner runs a function inside a database transaction. Satisfied by
// postgres.Store.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	GetByID(ctx context.Context, id int32) (*domain.Agency, error)
	Update(ctx context.Context, agency *domain.Agency) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByAgency(ctx context.Context, agencyID int32) ([]domain.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, agencyID, id int32) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, agencyID, id int32) error
	List(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error)

	// IncrementTotalRentalsTx bumps the completed-rental counter inside the
	// contract-completion transaction.
	IncrementTotalRentalsTx(ctx context.Context, tx *sql.Tx, agencyID, id int32) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, agencyID, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, agencyID, id int32) error
	List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
	UpdateStatus(ctx context.Context, agencyID, id int32, status domain.VehicleStatus) error

	// UpdateMileageTx writes the returned mileage and status inside the
	// contract-completion transaction.
	UpdateMileageTx(ctx context.Context, tx *sql.Tx, agencyID, id int32, mileage int, status domain.VehicleStatus) error
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, agencyID, id int32) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	ListByCustomer(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error)

	// CompleteTx persists the completion fields (mileage, overage, totals,
	// status) inside the contract-completion transaction.
	CompleteTx(ctx context.Context, tx *sql.Tx, contract *domain.Contract) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByContract(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, error)
	SumByContract(ctx context.Context, agencyID, contractID int32) (string, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	CreateTx(ctx context.Context, tx *sql.Tx, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
