package domain

type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleAgent   UserRole = "AGENT"
)

// User is an agency staff account.
type User struct {
	ID           int32    `json:"id"`
	AgencyID     int32    `json:"agency_id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"is_active"`
	CreatedOn    string   `json:"created_on"`
	UpdatedOn    string   `json:"updated_on"`
}
