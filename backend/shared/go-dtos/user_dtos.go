package dtos

import (
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

// User is the public view of models.User, without the password hash.
type User struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Role         models.UserRoleType `json:"role"`
	CompanyID    *string             `json:"companyId"`
	ProfileImage *string             `json:"profileImage"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func NewUserFromModel(u models.User) User {
	return User{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		CompanyID:    u.CompanyID,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
