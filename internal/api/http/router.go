package http

import (
	"net/http"

	"erp-cars-backend/internal/security"
	"erp-cars-backend/internal/service"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the API surface needs.
type RouterDeps struct {
	Tokens        security.TokenManager
	Agencies      service.AgencyService
	Auth          service.AuthService
	Customers     service.CustomerService
	Vehicles      service.VehicleService
	Contracts     service.ContractService
	Payments      service.PaymentService
	Notifications service.NotificationService
}

// NewRouter builds the full API route tree. Auth endpoints are public;
// everything else sits behind the bearer-token middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware, LoggingMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, "ok", nil)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := NewAuthHandler(deps.Auth)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)

	agencyHandler := NewAgencyHandler(deps.Agencies)
	api.HandleFunc("/agencies", agencyHandler.Register).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	protected.HandleFunc("/agency", agencyHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/agency", agencyHandler.Update).Methods(http.MethodPut)

	customerHandler := NewCustomerHandler(deps.Customers)
	protected.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id}", customerHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id}", customerHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{id}", customerHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/customers/{id}/tier", customerHandler.TierInfo).Methods(http.MethodGet)

	vehicleHandler := NewVehicleHandler(deps.Vehicles)
	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id}", vehicleHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/vehicles/{id}/status", vehicleHandler.SetStatus).Methods(http.MethodPatch)

	contractHandler := NewContractHandler(deps.Contracts)
	protected.HandleFunc("/contracts", contractHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/contracts", contractHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/contracts/{id}", contractHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/contracts/{id}/complete", contractHandler.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/contracts/{id}/estimate", contractHandler.Estimate).Methods(http.MethodGet)
	protected.HandleFunc("/contracts/{id}/cancel", contractHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{id}/contracts", contractHandler.ListForCustomer).Methods(http.MethodGet)

	paymentHandler := NewPaymentHandler(deps.Payments)
	protected.HandleFunc("/contracts/{id}/payments", paymentHandler.Record).Methods(http.MethodPost)
	protected.HandleFunc("/contracts/{id}/payments", paymentHandler.ListForContract).Methods(http.MethodGet)

	notificationHandler := NewNotificationHandler(deps.Notifications)
	protected.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPost)

	return router
}
