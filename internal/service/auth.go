package service

import (
	"context"
	"errors"
	"fmt"

	"erp-cars-backend/internal/domain"
	"erp-cars-backend/internal/logger"
	"erp-cars-backend/internal/repository"
	"erp-cars-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, "", "", err
	}
	if !user.IsActive {
		return nil, "", "", fmt.Errorf("%w: account disabled", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Failed login attempt", "email", email)
		return nil, "", "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.AgencyID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.AgencyID, user.Email)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", fmt.Errorf("%w: not a refresh token", domain.ErrUnauthorized)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", fmt.Errorf("%w: unknown user", domain.ErrUnauthorized)
	}
	if !user.IsActive {
		return "", "", fmt.Errorf("%w: account disabled", domain.ErrUnauthorized)
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.AgencyID, user.Email, string(user.Role))
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user.ID, user.AgencyID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

func (s *authService) Signup(ctx context.Context, agencyID int32, name, email, phone, password string, role domain.UserRole) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		AgencyID:     agencyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
