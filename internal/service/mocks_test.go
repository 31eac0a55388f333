package service

import (
	"context"
	"database/sql"

	"erp-cars-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, agencyID, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, agencyID, id int32) error {
	args := m.Called(ctx, agencyID, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, agencyID, query, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) IncrementTotalRentalsTx(ctx context.Context, tx *sql.Tx, agencyID, id int32) error {
	args := m.Called(ctx, tx, agencyID, id)
	return args.Error(0)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, agencyID, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, agencyID, id int32) error {
	args := m.Called(ctx, agencyID, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, agencyID, status, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, agencyID, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, agencyID, id, status)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateMileageTx(ctx context.Context, tx *sql.Tx, agencyID, id int32, mileage int, status domain.VehicleStatus) error {
	args := m.Called(ctx, tx, agencyID, id, mileage, status)
	return args.Error(0)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, agencyID, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) List(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, agencyID, status, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) ListByCustomer(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, agencyID, customerID, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) CompleteTx(ctx context.Context, tx *sql.Tx, contract *domain.Contract) error {
	args := m.Called(ctx, tx, contract)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) CreateTx(ctx context.Context, tx *sql.Tx, note *domain.Notification) error {
	args := m.Called(ctx, tx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByContract(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, agencyID, contractID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) SumByContract(ctx context.Context, agencyID, contractID int32) (string, error) {
	args := m.Called(ctx, agencyID, contractID)
	return args.String(0), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListByAgency(ctx context.Context, agencyID int32) ([]domain.User, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverageNotice(ctx context.Context, email, customerName, contractRef string, kmOverage int, charges decimal.Decimal) error {
	args := m.Called(ctx, email, customerName, contractRef, kmOverage, charges)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, customerName, contractRef, endDate string) error {
	args := m.Called(ctx, email, customerName, contractRef, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, email, customerName, contractRef, endDate string) error {
	args := m.Called(ctx, email, customerName, contractRef, endDate)
	return args.Error(0)
}

// fakeTxRunner runs the transactional closure with a nil tx. Repo calls are
// mocked, so no real transaction is needed.
type fakeTxRunner struct{}

func (fakeTxRunner) ExecTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}
