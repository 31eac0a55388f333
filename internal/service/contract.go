package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/logger"
	"erp-cars-backend/internal/pricing"
	"erp-cars-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type contractService struct {
	contractRepo repository.ContractRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	noteRepo     repository.NotificationRepository
	txRunner     repository.TxRunner
	engine       *pricing.Engine
	emailSvc     EmailService
}

func NewContractService(
	contractRepo repository.ContractRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	noteRepo repository.NotificationRepository,
	txRunner repository.TxRunner,
	engine *pricing.Engine,
	emailSvc EmailService,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		noteRepo:     noteRepo,
		txRunner:     txRunner,
		engine:       engine,
		emailSvc:     emailSvc,
	}
}

const dateLayout = "2006-01-02"

func (s *contractService) CreateContract(ctx context.Context, agencyID, customerID, vehicleID int32, startDate, endDate, notes string) (*domain.Contract, error) {
	customer, err := s.customerRepo.GetByID(ctx, agencyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Status == domain.CustomerStatusBlacklisted {
		return nil, fmt.Errorf("%w: customer is blacklisted", domain.ErrConflict)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, agencyID, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, fmt.Errorf("%w: vehicle %s is %s", domain.ErrConflict, vehicle.PlateNumber, vehicle.Status)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidInput, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidInput, endDate)
	}

	days, err := pricing.RentalDays(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	dailyKmLimit := vehicle.DailyKmLimit
	if dailyKmLimit <= 0 {
		dailyKmLimit = s.engine.Catalog().DefaultDailyKmLimit
	}

	allowance, err := s.engine.CalculateAllowedKm(dailyKmLimit, days, customer.TotalRentals, customer.ApplyTierDiscount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	contract := &domain.Contract{
		AgencyID:       agencyID,
		Reference:      newContractReference(),
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		StartDate:      startDate,
		EndDate:        endDate,
		DailyRate:      vehicle.DailyRate,
		DailyKmLimit:   dailyKmLimit,
		TierName:       allowance.TierName,
		KmBonusPerDay:  allowance.BonusKmPerDay,
		TotalDays:      days,
		TotalKmAllowed: allowance.TotalKmAllowed,
		StartMileage:   vehicle.Mileage,
		TotalAmount:    vehicle.DailyRate.Mul(decimal.NewFromInt(int64(days))),
		Notes:          notes,
		Status:         domain.ContractStatusActive,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, agencyID, vehicleID, domain.VehicleStatusRented); err != nil {
		logger.Error("Failed to mark vehicle as rented", "vehicle_id", vehicleID, "contract_id", contract.ID, "error", err)
	}

	logger.Info("Contract created",
		"contract_id", contract.ID,
		"reference", contract.Reference,
		"tier", allowance.TierName,
		"total_km_allowed", allowance.TotalKmAllowed)
	return contract, nil
}

func (s *contractService) GetContract(ctx context.Context, agencyID, id int32) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, agencyID, id)
}

func (s *contractService) ListContracts(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	return s.contractRepo.List(ctx, agencyID, status, page, pageSize)
}

func (s *contractService) ListCustomerContracts(ctx context.Context, agencyID, customerID int32, page, pageSize int32) ([]domain.Contract, int32, error) {
	return s.contractRepo.ListByCustomer(ctx, agencyID, customerID, page, pageSize)
}

// CompleteContract closes out a rental: it computes actual kilometres driven,
// runs the rating engine, and persists the contract fields, vehicle mileage,
// rental counter and overage notification in one transaction.
func (s *contractService) CompleteContract(ctx context.Context, agencyID, contractID int32, input CompleteContractInput) (*domain.Contract, *pricing.OverageResult, error) {
	contract, err := s.contractRepo.GetByID(ctx, agencyID, contractID)
	if err != nil {
		return nil, nil, err
	}
	if contract.Status != domain.ContractStatusActive && contract.Status != domain.ContractStatusOverdue {
		return nil, nil, fmt.Errorf("%w: contract %s is %s, not active", domain.ErrConflict, contract.Reference, contract.Status)
	}

	customer, err := s.customerRepo.GetByID(ctx, agencyID, contract.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	if input.EndMileage < contract.StartMileage {
		return nil, nil, fmt.Errorf("%w: end mileage %d below start mileage %d",
			domain.ErrInvalidInput, input.EndMileage, contract.StartMileage)
	}
	actualKmDriven := input.EndMileage - contract.StartMileage

	facts := pricing.CustomerFacts{
		TotalRentals:      customer.TotalRentals,
		ApplyTierDiscount: customer.ApplyTierDiscount,
	}
	tierInfo := s.engine.CustomerTierInfo(facts)

	allowance, err := s.engine.CalculateAllowedKm(contract.DailyKmLimit, contract.TotalDays, customer.TotalRentals, customer.ApplyTierDiscount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	kmOverage := actualKmDriven - allowance.TotalKmAllowed
	if kmOverage < 0 {
		kmOverage = 0
	}

	rate := s.engine.OverageRateFor(facts)
	overage, err := s.engine.CalculateOverageCharges(kmOverage, rate, customer.TotalRentals, customer.ApplyTierDiscount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	returnDate := input.ActualReturnDate
	if returnDate == "" {
		returnDate = time.Now().Format(dateLayout)
	}

	rentalCost := contract.DailyRate.Mul(decimal.NewFromInt(int64(contract.TotalDays)))

	contract.ActualReturnDate = &returnDate
	contract.EndMileage = &input.EndMileage
	contract.KmOverage = kmOverage
	contract.OverageCharges = overage.FinalOverageCharges
	contract.AdditionalCharges = input.AdditionalCharges
	contract.TotalAmount = rentalCost.Add(overage.FinalOverageCharges).Add(input.AdditionalCharges)
	if input.Notes != "" {
		contract.Notes = input.Notes
	}
	contract.Status = domain.ContractStatusCompleted

	err = s.txRunner.ExecTx(ctx, func(tx *sql.Tx) error {
		if err := s.contractRepo.CompleteTx(ctx, tx, contract); err != nil {
			return err
		}
		if err := s.vehicleRepo.UpdateMileageTx(ctx, tx, agencyID, contract.VehicleID, input.EndMileage, domain.VehicleStatusAvailable); err != nil {
			return err
		}
		if err := s.customerRepo.IncrementTotalRentalsTx(ctx, tx, agencyID, contract.CustomerID); err != nil {
			return err
		}
		if kmOverage > 0 && input.ActorUserID != 0 {
			note := &domain.Notification{
				AgencyID: agencyID,
				UserID:   input.ActorUserID,
				Title:    "Contract Overage",
				Message: fmt.Sprintf("%s exceeded the allowance on contract %s by %d km (%s DA charged)",
					customer.Name, contract.Reference, kmOverage, overage.FinalOverageCharges.StringFixed(2)),
				Attributes: map[string]string{
					"type":        "CONTRACT_OVERAGE",
					"contract_id": fmt.Sprintf("%d", contract.ID),
					"km_overage":  fmt.Sprintf("%d", kmOverage),
				},
			}
			if err := s.noteRepo.CreateTx(ctx, tx, note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if kmOverage > 0 && customer.Email != "" {
		if err := s.emailSvc.SendOverageNotice(ctx, customer.Email, customer.Name, contract.Reference, kmOverage, overage.FinalOverageCharges); err != nil {
			logger.Error("Failed to send overage notice", "contract_id", contract.ID, "email", customer.Email, "error", err)
		}
	}

	logger.Info("Contract completed",
		"contract_id", contract.ID,
		"reference", contract.Reference,
		"tier", tierInfo.Tier.Name,
		"actual_km_driven", actualKmDriven,
		"km_overage", kmOverage,
		"overage_charges", overage.FinalOverageCharges,
		"within_limit", overage.WithinLimit)
	return contract, &overage, nil
}

// EstimateOverage previews the overage a customer would owe at a given return
// mileage. Same math as completion, no writes.
func (s *contractService) EstimateOverage(ctx context.Context, agencyID, contractID int32, estimatedEndMileage int) (*ContractEstimate, error) {
	contract, err := s.contractRepo.GetByID(ctx, agencyID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractStatusActive && contract.Status != domain.ContractStatusOverdue {
		return nil, fmt.Errorf("%w: contract %s is %s, not active", domain.ErrConflict, contract.Reference, contract.Status)
	}

	customer, err := s.customerRepo.GetByID(ctx, agencyID, contract.CustomerID)
	if err != nil {
		return nil, err
	}

	if estimatedEndMileage < contract.StartMileage {
		return nil, fmt.Errorf("%w: estimated mileage %d below start mileage %d",
			domain.ErrInvalidInput, estimatedEndMileage, contract.StartMileage)
	}
	estimatedKm := estimatedEndMileage - contract.StartMileage

	allowance, err := s.engine.CalculateAllowedKm(contract.DailyKmLimit, contract.TotalDays, customer.TotalRentals, customer.ApplyTierDiscount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	kmOverage := estimatedKm - allowance.TotalKmAllowed
	if kmOverage < 0 {
		kmOverage = 0
	}

	facts := pricing.CustomerFacts{
		TotalRentals:      customer.TotalRentals,
		ApplyTierDiscount: customer.ApplyTierDiscount,
	}
	rate := s.engine.OverageRateFor(facts)
	overage, err := s.engine.CalculateOverageCharges(kmOverage, rate, customer.TotalRentals, customer.ApplyTierDiscount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	return &ContractEstimate{
		ContractID:        contract.ID,
		EstimatedKmDriven: estimatedKm,
		Allowance:         allowance,
		Overage:           overage,
	}, nil
}

func (s *contractService) CancelContract(ctx context.Context, agencyID, contractID int32, reason string) (*domain.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, agencyID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractStatusDraft && contract.Status != domain.ContractStatusActive {
		return nil, fmt.Errorf("%w: contract %s is %s and cannot be cancelled", domain.ErrConflict, contract.Reference, contract.Status)
	}

	contract.Status = domain.ContractStatusCancelled
	if reason != "" {
		contract.Notes = strings.TrimSpace(contract.Notes + "\nCancelled: " + reason)
	}
	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, agencyID, contract.VehicleID, domain.VehicleStatusAvailable); err != nil {
		logger.Error("Failed to release vehicle after cancellation", "vehicle_id", contract.VehicleID, "error", err)
	}
	return contract, nil
}

func newContractReference() string {
	return "CTR-" + strings.ToUpper(uuid.NewString()[:8])
}
