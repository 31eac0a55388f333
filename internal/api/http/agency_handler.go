package http

import (
	"encoding/json"
	"net/http"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/service"
)

// AgencyHandler serves the authenticated user's agency profile.
type AgencyHandler struct {
	agencyService service.AgencyService
}

func NewAgencyHandler(agencyService service.AgencyService) *AgencyHandler {
	return &AgencyHandler{agencyService: agencyService}
}

func (h *AgencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	agency, err := h.agencyService.GetAgency(r.Context(), claims.AgencyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "agency retrieved", agency)
}

type agencyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (h *AgencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req agencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	agency := &domain.Agency{
		ID:      claims.AgencyID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := h.agencyService.UpdateAgency(r.Context(), agency); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "agency updated", agency)
}

func (h *AgencyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req agencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	agency := &domain.Agency{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := h.agencyService.RegisterAgency(r.Context(), agency); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "agency registered", agency)
}
