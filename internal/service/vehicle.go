package service

import (
	"context"
	"fmt"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.PlateNumber == "" {
		return fmt.Errorf("%w: plate number is required", domain.ErrInvalidInput)
	}
	if vehicle.DailyRate.IsNegative() {
		return fmt.Errorf("%w: daily rate must not be negative", domain.ErrInvalidInput)
	}
	if vehicle.DailyKmLimit < 0 {
		return fmt.Errorf("%w: daily km limit must not be negative", domain.ErrInvalidInput)
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, vehicle)
}

func (s *vehicleService) GetVehicle(ctx context.Context, agencyID, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, agencyID, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.PlateNumber == "" {
		return fmt.Errorf("%w: plate number is required", domain.ErrInvalidInput)
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, agencyID, id int32) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}
	if vehicle.Status == domain.VehicleStatusRented {
		return fmt.Errorf("%w: vehicle %s is on an active contract", domain.ErrConflict, vehicle.PlateNumber)
	}
	return s.vehicleRepo.Delete(ctx, agencyID, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, agencyID int32, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.List(ctx, agencyID, status, page, pageSize)
}

func (s *vehicleService) SetVehicleStatus(ctx context.Context, agencyID, id int32, status domain.VehicleStatus) error {
	return s.vehicleRepo.UpdateStatus(ctx, agencyID, id, status)
}
