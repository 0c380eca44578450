package dtos

import "github.com/JacquiM/PropManPulse/backend/shared/go-dtos"

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User dtos.User `json:"user"`
}
