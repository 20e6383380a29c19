package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightserv/ops-backend-go/internal/domain/auth"
	"github.com/brightserv/ops-backend-go/internal/domain/employee"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/brightserv/ops-backend-go/internal/pkg/jwt"
	"github.com/brightserv/ops-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	refreshTokens auth.RefreshTokenRepository
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	refreshTokenRepository auth.RefreshTokenRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		refreshTokens:      refreshTokenRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	pair, err := a.issueTokens(ctx, userData)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		TokenPair:  pair,
		UserID:     userData.ID,
		Email:      userData.Email,
		Role:       string(userData.Role),
		EmployeeID: userData.EmployeeID,
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	stored, err := a.refreshTokens.GetByToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}

	if stored.RevokedAt != nil {
		return auth.TokenPair{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenPair{}, auth.ErrTokenExpired
	}
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenPair{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return auth.TokenPair{}, auth.ErrUserInactive
	}

	var pair auth.TokenPair
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		// Rotate: the old token is dead the moment a new pair is issued.
		if err := a.refreshTokens.Revoke(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		a.Service.RevokeToken(refreshToken)

		pair, err = a.issueTokens(txCtx, userData)
		return err
	})
	if err != nil {
		return auth.TokenPair{}, err
	}

	return pair, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := a.refreshTokens.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	a.Service.RevokeToken(refreshToken)

	return nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	if req.EmployeeID != nil {
		if _, err := a.EmployeeRepository.GetByID(ctx, *req.EmployeeID); err != nil {
			return auth.RegisterResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		IsActive:     true,
		EmployeeID:   req.EmployeeID,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		UserID: created.ID,
		Email:  created.Email,
		Role:   string(created.Role),
	}, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenPair, error) {
	var pair auth.TokenPair
	var err error

	pair.AccessToken, pair.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to create access token: %w", err)
	}

	pair.RefreshToken, pair.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.refreshTokens.Store(ctx, auth.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userData.ID,
		Token:     pair.RefreshToken,
		ExpiresAt: time.Unix(pair.RefreshTokenExpiresAt, 0),
	})
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return pair, nil
}
