package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"erp-cars-backend/internal/service"

	"github.com/shopspring/decimal"
)

// ContractHandler serves the rental-contract lifecycle: create, complete,
// estimate, cancel, fetch and list.
type ContractHandler struct {
	contractService service.ContractService
}

func NewContractHandler(contractService service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

type createContractRequest struct {
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Notes      string `json:"notes"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	contract, err := h.contractService.CreateContract(r.Context(), claims.AgencyID, req.CustomerID, req.VehicleID, req.StartDate, req.EndDate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "contract created", contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	contract, err := h.contractService.GetContract(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "contract retrieved", contract)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	page, pageSize := pagination(r)

	contracts, total, err := h.contractService.ListContracts(r.Context(), claims.AgencyID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "contracts retrieved", listData{
		Items:    contracts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ContractHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	page, pageSize := pagination(r)

	contracts, total, err := h.contractService.ListCustomerContracts(r.Context(), claims.AgencyID, customerID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "contracts retrieved", listData{
		Items:    contracts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

type completeContractRequest struct {
	EndMileage        int             `json:"end_mileage"`
	ActualReturnDate  string          `json:"actual_return_date"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	Notes             string          `json:"notes"`
}

type completeContractResponse struct {
	Contract interface{} `json:"contract"`
	Overage  interface{} `json:"overage"`
}

// Complete closes out a contract: it rates the kilometre overage, applies the
// customer's tier discount and settles the final amount in one transaction.
func (h *ContractHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req completeContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	contract, overage, err := h.contractService.CompleteContract(r.Context(), claims.AgencyID, id, service.CompleteContractInput{
		EndMileage:        req.EndMileage,
		ActualReturnDate:  req.ActualReturnDate,
		AdditionalCharges: req.AdditionalCharges,
		Notes:             req.Notes,
		ActorUserID:       claims.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "contract completed", completeContractResponse{
		Contract: contract,
		Overage:  overage,
	})
}

// Estimate previews the overage charges for a proposed end mileage without
// touching the contract.
func (h *ContractHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	endMileage, err := strconv.Atoi(r.URL.Query().Get("estimated_end_mileage"))
	if err != nil {
		writeValidationError(w, "estimated_end_mileage must be an integer")
		return
	}

	claims := claimsFromContext(r.Context())
	estimate, err := h.contractService.EstimateOverage(r.Context(), claims.AgencyID, id, endMileage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "estimate calculated", estimate)
}

type cancelContractRequest struct {
	Reason string `json:"reason"`
}

func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req cancelContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	contract, err := h.contractService.CancelContract(r.Context(), claims.AgencyID, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "contract cancelled", contract)
}
