package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TierID identifies a customer loyalty tier.
type TierID string

const (
	TierNew      TierID = "NEW"
	TierBronze   TierID = "BRONZE"
	TierSilver   TierID = "SILVER"
	TierGold     TierID = "GOLD"
	TierPlatinum TierID = "PLATINUM"
)

// NoMaxRentals marks a tier with no upper rental bound (the last tier).
const NoMaxRentals = -1

// Tier is a loyalty level derived from a customer's completed rental count.
// Ranges are half-open: a customer with MinRentals <= total < MaxRentals
// belongs to the tier.
type Tier struct {
	ID                 TierID          `json:"id"`
	Name               string          `json:"name"`
	MinRentals         int             `json:"min_rentals"`
	MaxRentals         int             `json:"max_rentals"` // exclusive, NoMaxRentals = unbounded
	KmBonusPerDay      int             `json:"km_bonus_per_day"`
	OverageRatePerKm   decimal.Decimal `json:"overage_rate_per_km"`
	DiscountPercentage int             `json:"discount_percentage"`
	Benefits           []string        `json:"benefits"`
}

// CustomerFacts are the customer inputs the engine depends on. The engine is
// a pure function of these two fields only.
type CustomerFacts struct {
	TotalRentals      int
	ApplyTierDiscount bool
}

// TierInfo combines the resolved tier with progress toward the next one.
type TierInfo struct {
	Tier               Tier  `json:"tier"`
	NextTier           *Tier `json:"next_tier,omitempty"`
	RentalsToNextTier  int   `json:"rentals_to_next_tier"`
	ProgressPercentage int   `json:"progress_percentage"`
}

// Catalog holds the tier table and the base values used when a customer has
// declined tier benefits. It is immutable once handed to an Engine; tests may
// construct alternate catalogs.
type Catalog struct {
	Tiers               []Tier
	DefaultDailyKmLimit int
	DefaultOverageRate  decimal.Decimal
}

// Base values applied when no tier benefit is in effect. The daily limit is
// also the fallback for vehicles without an explicit per-day allowance.
const DefaultDailyKmLimit = 300

// DefaultOverageRate is the per-km charge (DA) used when the customer has
// opted out of tier discounts.
var DefaultOverageRate = decimal.NewFromInt(20)

// DefaultCatalog returns the production tier table. The rental-count
// boundaries are the contract with existing customer data and must not drift.
func DefaultCatalog() Catalog {
	return Catalog{
		DefaultDailyKmLimit: DefaultDailyKmLimit,
		DefaultOverageRate:  DefaultOverageRate,
		Tiers: []Tier{
			{
				ID:                 TierNew,
				Name:               "New",
				MinRentals:         0,
				MaxRentals:         5,
				KmBonusPerDay:      0,
				OverageRatePerKm:   decimal.NewFromInt(20),
				DiscountPercentage: 0,
				Benefits:           []string{"Standard daily km allowance"},
			},
			{
				ID:                 TierBronze,
				Name:               "Bronze",
				MinRentals:         5,
				MaxRentals:         15,
				KmBonusPerDay:      10,
				OverageRatePerKm:   decimal.NewFromInt(18),
				DiscountPercentage: 5,
				Benefits:           []string{"+10 km per day", "5% off overage charges"},
			},
			{
				ID:                 TierSilver,
				Name:               "Silver",
				MinRentals:         15,
				MaxRentals:         30,
				KmBonusPerDay:      20,
				OverageRatePerKm:   decimal.NewFromInt(16),
				DiscountPercentage: 10,
				Benefits:           []string{"+20 km per day", "10% off overage charges"},
			},
			{
				ID:                 TierGold,
				Name:               "Gold",
				MinRentals:         30,
				MaxRentals:         60,
				KmBonusPerDay:      30,
				OverageRatePerKm:   decimal.NewFromInt(14),
				DiscountPercentage: 20,
				Benefits:           []string{"+30 km per day", "20% off overage charges", "Priority vehicle selection"},
			},
			{
				ID:                 TierPlatinum,
				Name:               "Platinum",
				MinRentals:         60,
				MaxRentals:         NoMaxRentals,
				KmBonusPerDay:      50,
				OverageRatePerKm:   decimal.NewFromInt(12),
				DiscountPercentage: 30,
				Benefits:           []string{"+50 km per day", "30% off overage charges", "Priority vehicle selection", "Free additional driver"},
			},
		},
	}
}

// Validate checks that the tier table partitions [0, inf) with no gaps or
// overlaps and that all benefit values are in range.
func (c Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("catalog has no tiers")
	}
	if c.DefaultDailyKmLimit <= 0 {
		return fmt.Errorf("default daily km limit must be positive, got %d", c.DefaultDailyKmLimit)
	}
	if c.DefaultOverageRate.IsNegative() {
		return fmt.Errorf("default overage rate must not be negative, got %s", c.DefaultOverageRate)
	}

	expectedMin := 0
	for i, t := range c.Tiers {
		if t.MinRentals != expectedMin {
			return fmt.Errorf("tier %s: min rentals %d leaves a gap or overlap, expected %d", t.ID, t.MinRentals, expectedMin)
		}
		last := i == len(c.Tiers)-1
		if last {
			if t.MaxRentals != NoMaxRentals {
				return fmt.Errorf("tier %s: last tier must be unbounded", t.ID)
			}
		} else {
			if t.MaxRentals <= t.MinRentals {
				return fmt.Errorf("tier %s: max rentals %d must exceed min %d", t.ID, t.MaxRentals, t.MinRentals)
			}
			expectedMin = t.MaxRentals
		}
		if t.KmBonusPerDay < 0 {
			return fmt.Errorf("tier %s: km bonus must not be negative", t.ID)
		}
		if t.OverageRatePerKm.IsNegative() {
			return fmt.Errorf("tier %s: overage rate must not be negative", t.ID)
		}
		if t.DiscountPercentage < 0 || t.DiscountPercentage > 100 {
			return fmt.Errorf("tier %s: discount percentage %d out of range [0,100]", t.ID, t.DiscountPercentage)
		}
	}
	return nil
}

// resolve returns the tier index for a rental count. The catalog is validated
// at engine construction, so exactly one tier matches.
func (c Catalog) resolve(totalRentals int) int {
	if totalRentals < 0 {
		// Internally trusted input; clamp rather than error so display paths
		// never fail on bad historical data.
		totalRentals = 0
	}
	for i, t := range c.Tiers {
		if totalRentals >= t.MinRentals && (t.MaxRentals == NoMaxRentals || totalRentals < t.MaxRentals) {
			return i
		}
	}
	return len(c.Tiers) - 1
}
