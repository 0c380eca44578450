// backend/shared/go-dtos/error_dtos.go
package dtos

// ErrorResponse is the JSON body of every failed request. Details carries
// per-field validation failures when there are any.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ValidationErrorDetail describes one rejected request field. Field is the
// JSON name; Code is "validation_<tag>".
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
