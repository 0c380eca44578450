// go-models/user.go
package models

import "time"

type UserRoleType string

const (
	UserRoleAdmin   UserRoleType = "admin"
	UserRoleManager UserRoleType = "manager"
	UserRoleOwner   UserRoleType = "owner"
	UserRoleTenant  UserRoleType = "tenant"
)

// User is a login-capable account. PasswordHash never leaves the process.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Role         UserRoleType `json:"role"`
	CompanyID    *string      `json:"companyId"`
	ProfileImage *string      `json:"profileImage"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (u User) GetID() string { return u.ID }

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = UserRoleTenant
	}
}
