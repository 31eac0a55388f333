package domain

type CustomerStatus string

const (
	CustomerStatusActive      CustomerStatus = "ACTIVE"
	CustomerStatusBlacklisted CustomerStatus = "BLACKLISTED"
)

// Customer is a renter. TotalRentals counts completed contracts and drives
// loyalty-tier resolution; ApplyTierDiscount is the customer-level opt-out
// switch for tier benefits.
type Customer struct {
	ID                int32          `json:"id"`
	AgencyID          int32          `json:"agency_id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Address           string         `json:"address"`
	LicenseNumber     string         `json:"license_number"`
	LicenseExpiry     *string        `json:"license_expiry,omitempty"`
	TotalRentals      int            `json:"total_rentals"`
	ApplyTierDiscount bool           `json:"apply_tier_discount"`
	Status            CustomerStatus `json:"status"`
	Notes             string         `json:"notes"`
	CreatedOn         string         `json:"created_on"`
	UpdatedOn         string         `json:"updated_on"`
}
