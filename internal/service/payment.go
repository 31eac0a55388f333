package service

import (
	"context"
	"fmt"
	"time"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	contractRepo repository.ContractRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, contractRepo repository.ContractRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, contractRepo: contractRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, payment *domain.Payment) error {
	if payment.Amount.IsZero() || payment.Amount.IsNegative() {
		return fmt.Errorf("%w: payment amount must be positive", domain.ErrInvalidInput)
	}

	contract, err := s.contractRepo.GetByID(ctx, payment.AgencyID, payment.ContractID)
	if err != nil {
		return err
	}
	if contract.Status == domain.ContractStatusCancelled {
		return fmt.Errorf("%w: contract %s is cancelled", domain.ErrConflict, contract.Reference)
	}

	if payment.PaidOn == "" {
		payment.PaidOn = time.Now().Format(dateLayout)
	}
	return s.paymentRepo.Create(ctx, payment)
}

func (s *paymentService) ListContractPayments(ctx context.Context, agencyID, contractID int32) ([]domain.Payment, decimal.Decimal, decimal.Decimal, error) {
	contract, err := s.contractRepo.GetByID(ctx, agencyID, contractID)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	payments, err := s.paymentRepo.ListByContract(ctx, agencyID, contractID)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	outstanding := contract.TotalAmount.Sub(paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return payments, paid, outstanding, nil
}
