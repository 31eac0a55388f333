package service

import (
	"context"
	"fmt"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/pricing"
	"erp-cars-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	engine       *pricing.Engine
}

func NewCustomerService(customerRepo repository.CustomerRepository, engine *pricing.Engine) CustomerService {
	return &customerService{customerRepo: customerRepo, engine: engine}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	if customer.LicenseNumber == "" {
		return fmt.Errorf("%w: license number is required", domain.ErrInvalidInput)
	}
	if customer.Status == "" {
		customer.Status = domain.CustomerStatusActive
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, agencyID, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, agencyID, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidInput)
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, agencyID, id int32) error {
	return s.customerRepo.Delete(ctx, agencyID, id)
}

func (s *customerService) ListCustomers(ctx context.Context, agencyID int32, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, agencyID, query, page, pageSize)
}

func (s *customerService) GetTierInfo(ctx context.Context, agencyID, id int32) (*pricing.TierInfo, error) {
	customer, err := s.customerRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}
	info := s.engine.CustomerTierInfo(pricing.CustomerFacts{
		TotalRentals:      customer.TotalRentals,
		ApplyTierDiscount: customer.ApplyTierDiscount,
	})
	return &info, nil
}
