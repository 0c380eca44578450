package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

var validate = utils.NewValidator()

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Request validation failed",
			utils.FormatValidationErrors(err), err,
		)
		return false
	}
	return true
}

// respondRecord writes rec as JSON, a 404 when it is nil, or the error.
func respondRecord[T any](w http.ResponseWriter, rec *T, err error, notFoundMsg string) {
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if rec == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, notFoundMsg, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rec)
}

// respondList writes list as JSON, never as null.
func respondList[T any](w http.ResponseWriter, list []*T, err error) {
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if list == nil {
		list = []*T{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func respondCreated(w http.ResponseWriter, rec any, err error) {
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rec)
}
