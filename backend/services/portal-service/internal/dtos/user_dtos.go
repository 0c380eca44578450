package dtos

import "github.com/JacquiM/PropManPulse/backend/shared/go-models"

type CreateUserRequest struct {
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password" validate:"required,min=6,maxbytes=72"`
	FirstName    string              `json:"firstName" validate:"required"`
	LastName     string              `json:"lastName" validate:"required"`
	Role         models.UserRoleType `json:"role" validate:"omitempty,oneof=admin manager owner tenant"`
	CompanyID    *string             `json:"companyId"`
	ProfileImage *string             `json:"profileImage" validate:"omitempty,url"`
}
