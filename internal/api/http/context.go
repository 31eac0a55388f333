package http

import (
	"context"

	"erp-cars-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

func contextWithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// claimsFromContext returns the authenticated user's claims, or nil on
// unauthenticated requests.
func claimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims
}
