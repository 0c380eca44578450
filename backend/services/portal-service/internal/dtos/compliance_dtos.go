package dtos

import (
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type CreateComplianceItemRequest struct {
	PropertyID    string                        `json:"propertyId" validate:"required"`
	Title         string                        `json:"title" validate:"required"`
	Description   *string                       `json:"description"`
	Category      models.ComplianceCategoryType `json:"category" validate:"required,oneof=safety legal financial environmental"`
	DueDate       *time.Time                    `json:"dueDate" validate:"required"`
	CompletedDate *time.Time                    `json:"completedDate"`
	Status        models.ComplianceStatusType   `json:"status" validate:"omitempty,oneof=pending in_progress completed overdue"`
	AssignedTo    *string                       `json:"assignedTo"`
	Documents     []string                      `json:"documents" validate:"omitempty,dive,required"`
}
