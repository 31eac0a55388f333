package domain

import "github.com/shopspring/decimal"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

// Vehicle is a fleet car. DailyKmLimit of 0 means the agency default applies
// (pricing.DefaultDailyKmLimit); contracts snapshot the effective value.
type Vehicle struct {
	ID           int32           `json:"id"`
	AgencyID     int32           `json:"agency_id"`
	PlateNumber  string          `json:"plate_number"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	Mileage      int             `json:"mileage"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	DailyKmLimit int             `json:"daily_km_limit"`
	Status       VehicleStatus   `json:"status"`
	CreatedOn    string          `json:"created_on"`
	UpdatedOn    string          `json:"updated_on"`
}
