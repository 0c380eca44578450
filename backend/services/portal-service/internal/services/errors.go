package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// storeError maps a repository failure onto the AppError the controller
// will render. what names the record kind, e.g. "maintenance ticket".
func storeError(what string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return utils.NewNotFoundError(capitalize(what) + " not found")
	case errors.Is(err, repositories.ErrDuplicateID):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    capitalize(what) + " already exists",
			Err:        err,
		}
	default:
		return utils.NewInternalError("Failed to store "+what, err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
