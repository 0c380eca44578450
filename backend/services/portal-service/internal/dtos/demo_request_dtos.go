package dtos

type DemoRequest struct {
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Company   string `json:"company" validate:"required"`
}

type DemoRequestResponse struct {
	Message string `json:"message"`
}
