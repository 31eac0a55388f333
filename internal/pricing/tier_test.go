package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	assert.NoError(t, DefaultCatalog().Validate())
}

func TestCatalogValidate(t *testing.T) {
	t.Run("Empty catalog", func(t *testing.T) {
		c := Catalog{DefaultDailyKmLimit: 300, DefaultOverageRate: decimal.NewFromInt(20)}
		assert.Error(t, c.Validate())
	})

	t.Run("Gap between tiers", func(t *testing.T) {
		c := DefaultCatalog()
		c.Tiers[1].MinRentals = 6 // NEW ends at 5, BRONZE starts at 6
		err := c.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "gap or overlap")
	})

	t.Run("Overlapping tiers", func(t *testing.T) {
		c := DefaultCatalog()
		c.Tiers[1].MinRentals = 4
		assert.Error(t, c.Validate())
	})

	t.Run("Bounded last tier", func(t *testing.T) {
		c := DefaultCatalog()
		c.Tiers[len(c.Tiers)-1].MaxRentals = 100
		err := c.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unbounded")
	})

	t.Run("Discount out of range", func(t *testing.T) {
		c := DefaultCatalog()
		c.Tiers[2].DiscountPercentage = 101
		assert.Error(t, c.Validate())
	})

	t.Run("Negative bonus", func(t *testing.T) {
		c := DefaultCatalog()
		c.Tiers[2].KmBonusPerDay = -1
		assert.Error(t, c.Validate())
	})

	t.Run("Non-positive default limit", func(t *testing.T) {
		c := DefaultCatalog()
		c.DefaultDailyKmLimit = 0
		assert.Error(t, c.Validate())
	})
}

func TestResolveTier(t *testing.T) {
	engine := Default()

	tests := []struct {
		totalRentals int
		expected     TierID
	}{
		{0, TierNew},
		{4, TierNew},
		{5, TierBronze},
		{14, TierBronze},
		{15, TierSilver},
		{29, TierSilver},
		{30, TierGold},
		{59, TierGold},
		{60, TierPlatinum},
		{1000, TierPlatinum},
	}

	for _, tt := range tests {
		tier := engine.ResolveTier(tt.totalRentals)
		assert.Equal(t, tt.expected, tier.ID, "totalRentals=%d", tt.totalRentals)
	}

	t.Run("Negative count clamps to zero", func(t *testing.T) {
		assert.Equal(t, TierNew, engine.ResolveTier(-3).ID)
	})
}

// Every non-last tier must hand off to the next one exactly at its upper
// boundary, and every count in [0, 200] must land in exactly one tier.
func TestTierPartitionTotality(t *testing.T) {
	catalog := DefaultCatalog()
	engine := MustNewEngine(catalog)

	for i, tier := range catalog.Tiers {
		if tier.MaxRentals == NoMaxRentals {
			continue
		}
		assert.Equal(t, tier.ID, engine.ResolveTier(tier.MaxRentals-1).ID)
		assert.Equal(t, catalog.Tiers[i+1].ID, engine.ResolveTier(tier.MaxRentals).ID)
	}

	for n := 0; n <= 200; n++ {
		matches := 0
		for _, tier := range catalog.Tiers {
			if n >= tier.MinRentals && (tier.MaxRentals == NoMaxRentals || n < tier.MaxRentals) {
				matches++
			}
		}
		require.Equal(t, 1, matches, "totalRentals=%d matched %d tiers", n, matches)
	}
}

func TestCustomerTierInfo(t *testing.T) {
	engine := Default()

	t.Run("New customer partway to Bronze", func(t *testing.T) {
		info := engine.CustomerTierInfo(CustomerFacts{TotalRentals: 2})
		assert.Equal(t, TierNew, info.Tier.ID)
		require.NotNil(t, info.NextTier)
		assert.Equal(t, TierBronze, info.NextTier.ID)
		assert.Equal(t, 3, info.RentalsToNextTier)
		assert.Equal(t, 40, info.ProgressPercentage) // 2 of 5
	})

	t.Run("At a tier boundary", func(t *testing.T) {
		info := engine.CustomerTierInfo(CustomerFacts{TotalRentals: 5})
		assert.Equal(t, TierBronze, info.Tier.ID)
		assert.Equal(t, 10, info.RentalsToNextTier)
		assert.Equal(t, 0, info.ProgressPercentage)
	})

	t.Run("Top tier has no next", func(t *testing.T) {
		info := engine.CustomerTierInfo(CustomerFacts{TotalRentals: 75})
		assert.Equal(t, TierPlatinum, info.Tier.ID)
		assert.Nil(t, info.NextTier)
		assert.Equal(t, 0, info.RentalsToNextTier)
		assert.Equal(t, 100, info.ProgressPercentage)
	})

	t.Run("Negative rental count", func(t *testing.T) {
		info := engine.CustomerTierInfo(CustomerFacts{TotalRentals: -1})
		assert.Equal(t, TierNew, info.Tier.ID)
		assert.Equal(t, 5, info.RentalsToNextTier)
		assert.Equal(t, 0, info.ProgressPercentage)
	})
}

func TestNewEngineRejectsInvalidCatalog(t *testing.T) {
	c := DefaultCatalog()
	c.Tiers = c.Tiers[1:] // first tier no longer starts at 0
	_, err := NewEngine(c)
	assert.Error(t, err)
}
