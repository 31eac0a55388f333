package service

import (
	"context"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/pricing"

	"github.com/shopspring/decimal"
)

type AgencyService interface {
	RegisterAgency(ctx context.Context, agency *domain.Agency) error
	GetAgency(ctx context.Context, id int32) (*domain.Agency, error)
	UpdateAgency(ctx context.Context, agency *domain.Agency) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error) // user, access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	Signup(ctx context.Context, agencyID int32, name, email, phone, password string, role domain.UserRole) (*domain.User, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, agencyID, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, agencyID, id int32) error
	ListCustomers(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error)
	GetTierInfo(ctx context.Context, agencyID, id int32) (*pricing.TierInfo, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, agencyID, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, agencyID, id int32) error
	ListVehicles(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
	SetVehicleStatus(ctx context.Context, agencyID, id int32, status domain.VehicleStatus) error
}

// CompleteContractInput carries the return facts posted when a contract is
// closed out.
type CompleteContractInput struct {
	EndMileage        int
	ActualReturnDate  string // yyyy-mm-dd, empty = today
	AdditionalCharges decimal.Decimal
	Notes             string
	ActorUserID       int32 // staff member closing the contract, gets the overage notification
}

// ContractEstimate previews the overage charges for a proposed return
// mileage without writing anything.
type ContractEstimate struct {
	ContractID        int32                   `json:"contract_id"`
	EstimatedKmDriven int                     `json:"estimated_km_driven"`
	Allowance         pricing.AllowanceResult `json:"allowance"`
	Overage           pricing.OverageResult   `json:"overage"`
}

type ContractService interface {
	CreateContract(ctx context.Context, agencyID, customerID, vehicleID int32, startDate, endDate, notes string) (*domain.Contract, error)
	GetContract(ctx context.Context, agencyID, id int32) (*domain.Contract, error)
	ListContracts(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	ListCustomerContracts(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error)
	CompleteContract(ctx context.Context, agencyID, contractID int32, input CompleteContractInput) (*domain.Contract, *pricing.OverageResult, error)
	EstimateOverage(ctx context.Context, agencyID, contractID int32, estimatedEndMileage int) (*ContractEstimate, error)
	CancelContract(ctx context.Context, agencyID, contractID int32, reason string) (*domain.Contract, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, payment *domain.Payment) error
	ListContractPayments(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, decimal.Decimal, decimal.Decimal, error) // payments, paid, outstanding
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendOverageNotice(ctx context.Context, email, customerName, contractRef string, kmOverage int, charges decimal.Decimal) error
	SendReturnReminder(ctx context.Context, email, customerName, contractRef, endDate string) error
	SendOverdueNotice(ctx context.Context, email, customerName, contractRef, endDate string) error
}
