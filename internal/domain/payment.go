package domain

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCheck    PaymentMethod = "CHECK"
)

type Payment struct {
	ID         int32           `json:"id"`
	AgencyID   int32           `json:"agency_id"`
	ContractID int32           `json:"contract_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
	PaidOn     string          `json:"paid_on"`
	CreatedOn  string          `json:"created_on"`
}
