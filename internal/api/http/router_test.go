package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/pricing"
	"erp-cars-backend/internal/security"
	"erp-cars-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T) (security.TokenManager, string) {
	t.Helper()
	tm := security.NewTokenManager("router-test-secret-router-test-secret", 60, 10080)
	token, err := tm.GenerateAccessToken(2, 1, "agent@agency.dz", "AGENT")
	require.NoError(t, err)
	return tm, token
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestRouterAuthRequired(t *testing.T) {
	tm, _ := newTestTokens(t)
	router := NewRouter(RouterDeps{Tokens: tm})

	t.Run("NoToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRejectedOnAPI", func(t *testing.T) {
		refresh, err := tm.GenerateRefreshToken(2, 1, "agent@agency.dz")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("HealthIsPublic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCustomerTierEndpoint(t *testing.T) {
	tm, token := newTestTokens(t)
	customers := new(MockCustomerService)
	router := NewRouter(RouterDeps{Tokens: tm, Customers: customers})

	engine := pricing.Default()
	info := engine.CustomerTierInfo(pricing.CustomerFacts{TotalRentals: 20, ApplyTierDiscount: true})
	customers.On("GetTierInfo", mock.Anything, int32(1), int32(7)).Return(&info, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/7/tier", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var got pricing.TierInfo
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, pricing.TierSilver, got.Tier.ID)
}

func TestCompleteContractEndpoint(t *testing.T) {
	tm, token := newTestTokens(t)
	contracts := new(MockContractService)
	router := NewRouter(RouterDeps{Tokens: tm, Contracts: contracts})

	completed := &domain.Contract{ID: 11, Status: domain.ContractStatusCompleted, KmOverage: 200}
	overage := &pricing.OverageResult{KmOverage: 200}
	contracts.On("CompleteContract", mock.Anything, int32(1), int32(11), mock.MatchedBy(func(in service.CompleteContractInput) bool {
		// ActorUserID comes from the bearer token, not the body
		return in.EndMileage == 11950 && in.ActorUserID == 2 && in.ActualReturnDate == "2026-01-14"
	})).Return(completed, overage, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"end_mileage":        11950,
		"actual_return_date": "2026-01-14",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts/11/complete", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	contracts.AssertExpectations(t)
}

func TestEstimateEndpointValidation(t *testing.T) {
	tm, token := newTestTokens(t)
	router := NewRouter(RouterDeps{Tokens: tm, Contracts: new(MockContractService)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/11/estimate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestErrorStatusMapping(t *testing.T) {
	tm, token := newTestTokens(t)
	customers := new(MockCustomerService)
	router := NewRouter(RouterDeps{Tokens: tm, Customers: customers})

	customers.On("GetCustomer", mock.Anything, int32(1), int32(99)).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/99", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	tm, _ := newTestTokens(t)
	auth := new(MockAuthService)
	router := NewRouter(RouterDeps{Tokens: tm, Auth: auth})

	user := &domain.User{ID: 2, AgencyID: 1, Email: "agent@agency.dz", Role: domain.UserRoleAgent}
	auth.On("Login", mock.Anything, "agent@agency.dz", "correct-horse").Return(user, "access-token", "refresh-token", nil)

	body, _ := json.Marshal(loginRequest{Email: "agent@agency.dz", Password: "correct-horse"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var pair tokenPair
	require.NoError(t, json.Unmarshal(data, &pair))
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
}
