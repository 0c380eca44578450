package controllers

import (
	"errors"
	"net/http"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	go_dtos "github.com/JacquiM/PropManPulse/backend/shared/go-dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(s services.AuthService) *AuthController {
	return &AuthController{authService: s}
}

// POST /api/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(
				w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials", nil, err,
			)
			return
		}
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{User: go_dtos.NewUserFromModel(*user)})
}
