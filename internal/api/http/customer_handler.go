package http

import (
	"encoding/json"
	"net/http"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/service"
)

// CustomerHandler serves customer CRUD plus the loyalty-tier lookup.
type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

type customerRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	LicenseNumber     string  `json:"license_number"`
	LicenseExpiry     *string `json:"license_expiry"`
	ApplyTierDiscount *bool   `json:"apply_tier_discount"`
	Notes             string  `json:"notes"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	customer := &domain.Customer{
		AgencyID:          claims.AgencyID,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		LicenseNumber:     req.LicenseNumber,
		LicenseExpiry:     req.LicenseExpiry,
		ApplyTierDiscount: true,
		Status:            domain.CustomerStatusActive,
		Notes:             req.Notes,
	}
	if req.ApplyTierDiscount != nil {
		customer.ApplyTierDiscount = *req.ApplyTierDiscount
	}

	if err := h.customerService.CreateCustomer(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "customer created", customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	customer, err := h.customerService.GetCustomer(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "customer retrieved", customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	customer, err := h.customerService.GetCustomer(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.LicenseNumber = req.LicenseNumber
	customer.LicenseExpiry = req.LicenseExpiry
	customer.Notes = req.Notes
	if req.ApplyTierDiscount != nil {
		customer.ApplyTierDiscount = *req.ApplyTierDiscount
	}

	if err := h.customerService.UpdateCustomer(r.Context(), customer); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "customer updated", customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	if err := h.customerService.DeleteCustomer(r.Context(), claims.AgencyID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "customer deleted", nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	page, pageSize := pagination(r)

	customers, total, err := h.customerService.ListCustomers(r.Context(), claims.AgencyID, r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "customers retrieved", listData{
		Items:    customers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// TierInfo reports the customer's current loyalty tier, benefits and progress
// toward the next one.
func (h *CustomerHandler) TierInfo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	info, err := h.customerService.GetTierInfo(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "tier info retrieved", info)
}
