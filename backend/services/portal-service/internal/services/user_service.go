package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUser returns nil, nil when no user has the id.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve user", err)
	}
	return u, nil
}

func (s *UserService) CreateUser(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password", err)
	}

	u := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		CompanyID:    req.CompanyID,
		ProfileImage: req.ProfileImage,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, &utils.AppError{
				StatusCode: http.StatusConflict,
				Code:       utils.ErrCodeConflict,
				Message:    "A user with this email already exists",
				Err:        utils.ErrEmailExists,
			}
		}
		return nil, storeError("user", err)
	}
	return u, nil
}
