package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	dtos "github.com/JacquiM/PropManPulse/backend/shared/go-dtos"
)

// NewValidator returns a validator that reports json field names and knows
// the "decimal" tag used for money/size strings. "maxbytes=N" caps a string's
// length in bytes, where the stock "max" counts runes.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(interface{ ValidationValue() any }); ok {
			return n.ValidationValue()
		}
		return nil
	}, Nullable[string]{}, Nullable[time.Time]{})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := ParseDecimal(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("maxbytes: bad parameter %q", fl.Param()))
		}
		return len(fl.Field().String()) <= limit
	})

	return v
}

// FormatValidationErrors converts validator errors into the per-field detail
// list returned to clients. Non-validator errors yield nil.
func FormatValidationErrors(err error) []dtos.ValidationErrorDetail {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	details := make([]dtos.ValidationErrorDetail, 0, len(errs))
	for _, fe := range errs {
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", fe.Field())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", fe.Field())
		case "min":
			message = fmt.Sprintf("Field '%s' must be at least %s", fe.Field(), fe.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s", fe.Field(), fe.Param())
		case "maxbytes":
			message = fmt.Sprintf("Field '%s' must not exceed %s bytes", fe.Field(), fe.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", fe.Field(), fe.Param())
		case "decimal":
			message = fmt.Sprintf("Field '%s' must be a decimal number", fe.Field())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   fe.Field(),
			Message: message,
			Code:    "validation_" + fe.Tag(),
		})
	}
	return details
}
