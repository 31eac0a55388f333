package http

import (
	"encoding/json"
	"net/http"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/service"

	"github.com/shopspring/decimal"
)

// PaymentHandler records payments against contracts and lists them with the
// running balance.
type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type recordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
	PaidOn    string          `json:"paid_on"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	payment := &domain.Payment{
		AgencyID:   claims.AgencyID,
		ContractID: contractID,
		Amount:     req.Amount,
		Method:     domain.PaymentMethod(req.Method),
		Reference:  req.Reference,
		Notes:      req.Notes,
		PaidOn:     req.PaidOn,
	}

	if err := h.paymentService.RecordPayment(r.Context(), payment); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "payment recorded", payment)
}

type contractPaymentsResponse struct {
	Payments    []domain.Payment `json:"payments"`
	TotalPaid   decimal.Decimal  `json:"total_paid"`
	Outstanding decimal.Decimal  `json:"outstanding"`
}

func (h *PaymentHandler) ListForContract(w http.ResponseWriter, r *http.Request) {
	contractID, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	payments, paid, outstanding, err := h.paymentService.ListContractPayments(r.Context(), claims.AgencyID, contractID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "payments retrieved", contractPaymentsResponse{
		Payments:    payments,
		TotalPaid:   paid,
		Outstanding: outstanding,
	})
}
