package service

import (
	"context"
	"fmt"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/repository"
)

type agencyService struct {
	agencyRepo repository.AgencyRepository
}

func NewAgencyService(agencyRepo repository.AgencyRepository) AgencyService {
	return &agencyService{agencyRepo: agencyRepo}
}

func (s *agencyService) RegisterAgency(ctx context.Context, agency *domain.Agency) error {
	if agency.Name == "" {
		return fmt.Errorf("%w: agency name is required", domain.ErrInvalidInput)
	}
	return s.agencyRepo.Create(ctx, agency)
}

func (s *agencyService) GetAgency(ctx context.Context, id int32) (*domain.Agency, error) {
	return s.agencyRepo.GetByID(ctx, id)
}

func (s *agencyService) UpdateAgency(ctx context.Context, agency *domain.Agency) error {
	if agency.Name == "" {
		return fmt.Errorf("%w: agency name is required", domain.ErrInvalidInput)
	}
	if _, err := s.agencyRepo.GetByID(ctx, agency.ID); err != nil {
		return err
	}
	return s.agencyRepo.Update(ctx, agency)
}
