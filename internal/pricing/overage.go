package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OverageResult is the billable charge for kilometres driven beyond the
// contract allowance. Amounts are bare decimal values in the agency currency
// (DA in production); formatting is the caller's concern.
type OverageResult struct {
	TierID              TierID          `json:"tier_id"`
	TierName            string          `json:"tier_name"`
	KmOverage           int             `json:"km_overage"`
	OverageRatePerKm    decimal.Decimal `json:"overage_rate_per_km"`
	BaseOverageCharges  decimal.Decimal `json:"base_overage_charges"`
	DiscountPercentage  int             `json:"discount_percentage"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	FinalOverageCharges decimal.Decimal `json:"final_overage_charges"`
	Savings             decimal.Decimal `json:"savings"`
	WithinLimit         bool            `json:"within_limit"`
}

// OverageRateFor returns the customer's effective per-km overage rate: the
// tier rate, or the catalog's base rate when the customer has declined tier
// benefits.
func (e *Engine) OverageRateFor(facts CustomerFacts) decimal.Decimal {
	if !facts.ApplyTierDiscount {
		return e.catalog.DefaultOverageRate
	}
	return e.ResolveTier(facts.TotalRentals).OverageRatePerKm
}

// CalculateOverageCharges rates kilometres driven beyond the allowance.
// Charges round to two decimal places (DECIMAL(10,2) column semantics).
// Zero overage is the common within-limit case and short-circuits to an
// all-zero result with WithinLimit set.
func (e *Engine) CalculateOverageCharges(kmOverage int, ratePerKm decimal.Decimal, totalRentals int, applyTierDiscount bool) (OverageResult, error) {
	if kmOverage < 0 {
		return OverageResult{}, fmt.Errorf("%w: km overage must not be negative, got %d", ErrInvalidInput, kmOverage)
	}
	if ratePerKm.IsNegative() {
		return OverageResult{}, fmt.Errorf("%w: overage rate must not be negative, got %s", ErrInvalidInput, ratePerKm)
	}

	tier := e.ResolveTier(totalRentals)

	if kmOverage == 0 {
		return OverageResult{
			TierID:      tier.ID,
			TierName:    tier.Name,
			WithinLimit: true,
		}, nil
	}

	base := ratePerKm.Mul(decimal.NewFromInt(int64(kmOverage))).Round(2)

	pct := 0
	if applyTierDiscount {
		pct = tier.DiscountPercentage
	}
	discount := base.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)).Round(2)

	return OverageResult{
		TierID:              tier.ID,
		TierName:            tier.Name,
		KmOverage:           kmOverage,
		OverageRatePerKm:    ratePerKm,
		BaseOverageCharges:  base,
		DiscountPercentage:  pct,
		DiscountAmount:      discount,
		FinalOverageCharges: base.Sub(discount),
		Savings:             discount,
	}, nil
}
