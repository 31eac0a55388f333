package http

import (
	"encoding/json"
	"net/http"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/service"

	"github.com/shopspring/decimal"
)

// VehicleHandler serves fleet CRUD and status changes.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

type vehicleRequest struct {
	PlateNumber  string          `json:"plate_number"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Color        string          `json:"color"`
	Mileage      int             `json:"mileage"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	DailyKmLimit int             `json:"daily_km_limit"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	vehicle := &domain.Vehicle{
		AgencyID:     claims.AgencyID,
		PlateNumber:  req.PlateNumber,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		Mileage:      req.Mileage,
		DailyRate:    req.DailyRate,
		DailyKmLimit: req.DailyKmLimit,
		Status:       domain.VehicleStatusAvailable,
	}

	if err := h.vehicleService.AddVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "vehicle created", vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	vehicle, err := h.vehicleService.GetVehicle(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicle retrieved", vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	vehicle, err := h.vehicleService.GetVehicle(r.Context(), claims.AgencyID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	vehicle.PlateNumber = req.PlateNumber
	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.Color = req.Color
	vehicle.Mileage = req.Mileage
	vehicle.DailyRate = req.DailyRate
	vehicle.DailyKmLimit = req.DailyKmLimit

	if err := h.vehicleService.UpdateVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicle updated", vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	claims := claimsFromContext(r.Context())
	if err := h.vehicleService.DeleteVehicle(r.Context(), claims.AgencyID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicle deleted", nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	page, pageSize := pagination(r)

	vehicles, total, err := h.vehicleService.ListVehicles(r.Context(), claims.AgencyID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicles retrieved", listData{
		Items:    vehicles,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

type vehicleStatusRequest struct {
	Status string `json:"status"`
}

func (h *VehicleHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	var req vehicleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body")
		return
	}

	claims := claimsFromContext(r.Context())
	if err := h.vehicleService.SetVehicleStatus(r.Context(), claims.AgencyID, id, domain.VehicleStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "vehicle status updated", nil)
}
