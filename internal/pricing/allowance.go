package pricing

import "fmt"

// AllowanceResult is the total kilometre allowance computed for a contract.
// It is transient: the caller snapshots the fields it wants onto the contract
// row and discards the rest.
type AllowanceResult struct {
	TierID          TierID `json:"tier_id"`
	TierName        string `json:"tier_name"`
	BaseDailyLimit  int    `json:"base_daily_limit"`
	BonusKmPerDay   int    `json:"bonus_km_per_day"`
	TotalDailyLimit int    `json:"total_daily_limit"`
	TotalDays       int    `json:"total_days"`
	TotalKmAllowed  int    `json:"total_km_allowed"`
}

// CalculateAllowedKm computes the kilometres a contract permits: the base
// daily limit plus the customer's tier bonus, multiplied by the rental days.
// Kilometres are whole units throughout; no rounding happens.
//
// applyTierBonus=false honours the customer-level opt-out: the bonus is
// zeroed regardless of tier, though tier identity is still reported.
func (e *Engine) CalculateAllowedKm(dailyKmLimit, totalDays, totalRentals int, applyTierBonus bool) (AllowanceResult, error) {
	if dailyKmLimit <= 0 {
		return AllowanceResult{}, fmt.Errorf("%w: daily km limit must be positive, got %d", ErrInvalidInput, dailyKmLimit)
	}
	if totalDays <= 0 {
		return AllowanceResult{}, fmt.Errorf("%w: total days must be positive, got %d", ErrInvalidInput, totalDays)
	}

	tier := e.ResolveTier(totalRentals)

	bonus := 0
	if applyTierBonus {
		bonus = tier.KmBonusPerDay
	}

	dailyTotal := dailyKmLimit + bonus
	return AllowanceResult{
		TierID:          tier.ID,
		TierName:        tier.Name,
		BaseDailyLimit:  dailyKmLimit,
		BonusKmPerDay:   bonus,
		TotalDailyLimit: dailyTotal,
		TotalDays:       totalDays,
		TotalKmAllowed:  dailyTotal * totalDays,
	}, nil
}
