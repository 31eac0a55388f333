package http

import (
	"context"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/pricing"
	"erp-cars-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, agencyID, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, agencyID, id int32) error {
	args := m.Called(ctx, agencyID, id)
	return args.Error(0)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, agencyID, query, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerService) GetTierInfo(ctx context.Context, agencyID, id int32) (*pricing.TierInfo, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.TierInfo), args.Error(1)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateContract(ctx context.Context, agencyID, customerID, vehicleID int32, startDate, endDate, notes string) (*domain.Contract, error) {
	args := m.Called(ctx, agencyID, customerID, vehicleID, startDate, endDate, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) GetContract(ctx context.Context, agencyID, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, agencyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) ListContracts(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, agencyID, status, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractService) ListCustomerContracts(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, agencyID, customerID, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractService) CompleteContract(ctx context.Context, agencyID, contractID int32, input service.CompleteContractInput) (*domain.Contract, *pricing.OverageResult, error) {
	args := m.Called(ctx, agencyID, contractID, input)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Contract), args.Get(1).(*pricing.OverageResult), args.Error(2)
}
func (m *MockContractService) EstimateOverage(ctx context.Context, agencyID, contractID int32, estimatedEndMileage int) (*service.ContractEstimate, error) {
	args := m.Called(ctx, agencyID, contractID, estimatedEndMileage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractEstimate), args.Error(1)
}
func (m *MockContractService) CancelContract(ctx context.Context, agencyID, contractID int32, reason string) (*domain.Contract, error) {
	args := m.Called(ctx, agencyID, contractID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Signup(ctx context.Context, agencyID int32, name, email, phone, password string, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, agencyID, name, email, phone, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentService) ListContractPayments(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, agencyID, contractID)
	return args.Get(0).([]domain.Payment), args.Get(1).(decimal.Decimal), args.Get(2).(decimal.Decimal), args.Error(3)
}
