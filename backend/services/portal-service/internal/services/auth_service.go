package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type AuthService interface {
	// Login returns the matching user or utils.ErrInvalidCredentials. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("Failed to look up user", err)
	}
	if user == nil {
		utils.Logger.WithField("email", email).Debug("login: unknown email")
		return nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		utils.Logger.WithField("user_id", user.ID).Debug("login: password mismatch")
		return nil, utils.ErrInvalidCredentials
	}

	utils.Logger.WithField("user_id", user.ID).Info("login succeeded")
	return user, nil
}
