package dtos

import (
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type CreateTransactionRequest struct {
	PropertyID    *string                        `json:"propertyId"`
	UnitID        *string                        `json:"unitId"`
	Type          models.TransactionType         `json:"type" validate:"required,oneof=levy rent maintenance deposit refund"`
	Category      models.TransactionCategoryType `json:"category" validate:"required,oneof=income expense"`
	Amount        string                         `json:"amount" validate:"required,decimal"`
	Description   string                         `json:"description" validate:"required"`
	PaymentMethod *string                        `json:"paymentMethod"`
	Reference     *string                        `json:"reference"`
	Status        models.TransactionStatusType   `json:"status" validate:"omitempty,oneof=pending completed failed"`
	DueDate       *time.Time                     `json:"dueDate"`
	PaidDate      *time.Time                     `json:"paidDate"`
}
