package pricing

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks calculation inputs the engine refuses to work with.
// The HTTP layer translates it to a 422 validation response.
var ErrInvalidInput = errors.New("invalid pricing input")

// Engine performs all loyalty-tier rating calculations. It is stateless and
// side-effect free; a single Engine may be shared by any number of goroutines.
type Engine struct {
	catalog Catalog
}

// NewEngine builds an engine over a validated catalog.
func NewEngine(catalog Catalog) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tier catalog: %w", err)
	}
	return &Engine{catalog: catalog}, nil
}

// MustNewEngine panics on an invalid catalog. Intended for the default
// catalog, which is covered by tests.
func MustNewEngine(catalog Catalog) *Engine {
	e, err := NewEngine(catalog)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns an engine over the production tier table.
func Default() *Engine {
	return MustNewEngine(DefaultCatalog())
}

// Catalog returns a copy of the engine's tier table for display purposes.
func (e *Engine) Catalog() Catalog {
	tiers := make([]Tier, len(e.catalog.Tiers))
	copy(tiers, e.catalog.Tiers)
	c := e.catalog
	c.Tiers = tiers
	return c
}

// ResolveTier maps a completed-rental count to its loyalty tier. Negative
// counts clamp to zero.
func (e *Engine) ResolveTier(totalRentals int) Tier {
	return e.catalog.Tiers[e.catalog.resolve(totalRentals)]
}

// CustomerTierInfo resolves the tier and computes progress toward the next
// one. At the top tier NextTier is nil and progress reads 100%.
func (e *Engine) CustomerTierInfo(facts CustomerFacts) TierInfo {
	idx := e.catalog.resolve(facts.TotalRentals)
	current := e.catalog.Tiers[idx]

	info := TierInfo{Tier: current}
	if idx == len(e.catalog.Tiers)-1 {
		info.ProgressPercentage = 100
		return info
	}

	next := e.catalog.Tiers[idx+1]
	info.NextTier = &next

	total := facts.TotalRentals
	if total < 0 {
		total = 0
	}
	info.RentalsToNextTier = next.MinRentals - total
	if info.RentalsToNextTier < 0 {
		info.RentalsToNextTier = 0
	}

	span := next.MinRentals - current.MinRentals
	progress := 100 * (total - current.MinRentals) / span
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	info.ProgressPercentage = progress
	return info
}

// RentalDays computes the billable day count for a contract period. Both
// boundary days count: a rental returned the day after it starts is 2 days,
// and a same-day rental is 1 day. Partial days round up before the inclusive
// +1 is applied.
func RentalDays(start, end time.Time) (int, error) {
	diff := end.Sub(start)
	if diff < 0 {
		return 0, fmt.Errorf("%w: end date %s before start date %s", ErrInvalidInput,
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	days := int(diff.Hours()) / 24
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days + 1, nil
}
