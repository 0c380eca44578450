package dtos

import (
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type CreateMaintenanceTicketRequest struct {
	PropertyID    string                    `json:"propertyId" validate:"required"`
	UnitID        *string                   `json:"unitId"`
	Title         string                    `json:"title" validate:"required"`
	Description   string                    `json:"description" validate:"required"`
	Category      models.TicketCategoryType `json:"category" validate:"required,oneof=plumbing electrical hvac general"`
	Priority      models.TicketPriorityType `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status        models.TicketStatusType   `json:"status" validate:"omitempty,oneof=open in_progress scheduled completed cancelled"`
	ReportedBy    string                    `json:"reportedBy" validate:"required"`
	AssignedTo    *string                   `json:"assignedTo"`
	EstimatedCost *string                   `json:"estimatedCost" validate:"omitempty,decimal"`
	ActualCost    *string                   `json:"actualCost" validate:"omitempty,decimal"`
}

// UpdateMaintenanceTicketRequest is a partial update; absent fields keep
// their stored values. The Nullable fields also accept null, which clears
// them.
type UpdateMaintenanceTicketRequest struct {
	UnitID        utils.Nullable[string]     `json:"unitId"`
	Title         *string                    `json:"title" validate:"omitempty,min=1"`
	Description   *string                    `json:"description" validate:"omitempty,min=1"`
	Category      *models.TicketCategoryType `json:"category" validate:"omitempty,oneof=plumbing electrical hvac general"`
	Priority      *models.TicketPriorityType `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status        *models.TicketStatusType   `json:"status" validate:"omitempty,oneof=open in_progress scheduled completed cancelled"`
	AssignedTo    utils.Nullable[string]     `json:"assignedTo"`
	EstimatedCost utils.Nullable[string]     `json:"estimatedCost" validate:"omitempty,decimal"`
	ActualCost    utils.Nullable[string]     `json:"actualCost" validate:"omitempty,decimal"`
	CompletedAt   utils.Nullable[time.Time]  `json:"completedAt"`
}
