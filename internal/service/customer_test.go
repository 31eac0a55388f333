package service

import (
	"context"
	"testing"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTierInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("SilverCustomer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		customerRepo.On("GetByID", ctx, int32(1), int32(7)).Return(&domain.Customer{
			ID:                7,
			AgencyID:          1,
			TotalRentals:      20,
			ApplyTierDiscount: true,
		}, nil)
		svc := NewCustomerService(customerRepo, pricing.Default())

		info, err := svc.GetTierInfo(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, pricing.TierSilver, info.Tier.ID)
		require.NotNil(t, info.NextTier)
		assert.Equal(t, pricing.TierGold, info.NextTier.ID)
		assert.Equal(t, 10, info.RentalsToNextTier)
	})

	t.Run("TopTierCustomer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		customerRepo.On("GetByID", ctx, int32(1), int32(8)).Return(&domain.Customer{
			ID:           8,
			AgencyID:     1,
			TotalRentals: 120,
		}, nil)
		svc := NewCustomerService(customerRepo, pricing.Default())

		info, err := svc.GetTierInfo(ctx, 1, 8)
		require.NoError(t, err)
		assert.Equal(t, pricing.TierPlatinum, info.Tier.ID)
		assert.Nil(t, info.NextTier)
		assert.Equal(t, 100, info.ProgressPercentage)
	})

	t.Run("NotFound", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		customerRepo.On("GetByID", ctx, int32(1), int32(99)).Return(nil, domain.ErrNotFound)
		svc := NewCustomerService(customerRepo, pricing.Default())

		_, err := svc.GetTierInfo(ctx, 1, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateCustomerValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(new(MockCustomerRepo), pricing.Default())

	err := svc.CreateCustomer(ctx, &domain.Customer{LicenseNumber: "A123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.CreateCustomer(ctx, &domain.Customer{Name: "No License"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
