package domain

// Agency is a tenant. Every customer, vehicle, contract and payment belongs
// to exactly one agency; repositories scope all queries by agency id.
type Agency struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
