package dtos

import (
	"encoding/json"
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type CreateInspectionRequest struct {
	PropertyID    string                      `json:"propertyId" validate:"required"`
	UnitID        *string                     `json:"unitId"`
	Type          models.InspectionType       `json:"type" validate:"required,oneof=safety maintenance compliance move_in move_out"`
	ScheduledDate *time.Time                  `json:"scheduledDate" validate:"required"`
	CompletedDate *time.Time                  `json:"completedDate"`
	InspectorID   string                      `json:"inspectorId" validate:"required"`
	Status        models.InspectionStatusType `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Findings      json.RawMessage             `json:"findings"`
	ReportURL     *string                     `json:"reportUrl" validate:"omitempty,url"`
}
