package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	go_dtos "github.com/JacquiM/PropManPulse/backend/shared/go-dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(s *services.UserService) *UserController {
	return &UserController{userService: s}
}

// GET /api/users/{id}
func (c *UserController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	u, err := c.userService.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if u == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "User not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, go_dtos.NewUserFromModel(*u))
}

// POST /api/users
func (c *UserController) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	u, err := c.userService.CreateUser(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, go_dtos.NewUserFromModel(*u))
}
