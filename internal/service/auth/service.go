package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/auth"
	"github.com/cmlabs-hris/leave-approval-go/internal/domain/user"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	auth.SessionRepository
	hasher credential.Hasher
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, sessionRepository auth.SessionRepository, hasher credential.Hasher) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:    userRepository,
		Service:           jwtService,
		SessionRepository: sessionRepository,
		hasher:            hasher,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByName(ctx, loginReq.Name)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by name: %w", err)
	}

	if err := a.hasher.Compare(userData.Password, loginReq.Password); err != nil {
		if errors.Is(err, credential.ErrMismatch) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to compare password: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.InfoContext(ctx, "User logged in", "user_id", userData.ID, "role", userData.Role)

	return auth.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		User:                 user.NewUserResponse(userData),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, session auth.Session) error {
	if session.Token == "" {
		return auth.ErrInvalidToken
	}

	isRevoked, err := a.SessionRepository.IsRevoked(ctx, session.Token)
	if err != nil {
		return fmt.Errorf("failed to check if token is revoked: %w", err)
	}
	if isRevoked {
		return nil
	}

	if err := a.SessionRepository.Revoke(ctx, session.Token, session.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID int64) (user.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(userData), nil
}
