package domain

import "github.com/shopspring/decimal"

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
	ContractStatusOverdue   ContractStatus = "OVERDUE"
)

// Contract is a rental agreement. Rate, km limit and tier allowance are
// snapshots taken at creation time; completion fills in the mileage and
// overage fields computed by the rating engine.
type Contract struct {
	ID         int32  `json:"id"`
	AgencyID   int32  `json:"agency_id"`
	Reference  string `json:"reference"`
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`

	StartDate        string  `json:"start_date"` // yyyy-mm-dd
	EndDate          string  `json:"end_date"`
	ActualReturnDate *string `json:"actual_return_date,omitempty"`

	// Snapshots from vehicle and tier table at creation time.
	DailyRate      decimal.Decimal `json:"daily_rate"`
	DailyKmLimit   int             `json:"daily_km_limit"`
	TierName       string          `json:"tier_name"`
	KmBonusPerDay  int             `json:"km_bonus_per_day"`
	TotalDays      int             `json:"total_days"`
	TotalKmAllowed int             `json:"total_km_allowed"`

	StartMileage int  `json:"start_mileage"`
	EndMileage   *int `json:"end_mileage,omitempty"`

	// Filled in by completion.
	KmOverage         int             `json:"km_overage"`
	OverageCharges    decimal.Decimal `json:"overage_charges"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	TotalAmount       decimal.Decimal `json:"total_amount"`

	Notes     string         `json:"notes"`
	Status    ContractStatus `json:"status"`
	CreatedOn string         `json:"created_on"`
	UpdatedOn string         `json:"updated_on"`
}
