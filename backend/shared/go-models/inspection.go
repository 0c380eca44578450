package models

import (
	"encoding/json"
	"time"
)

type InspectionType string

const (
	InspectionTypeSafety      InspectionType = "safety"
	InspectionTypeMaintenance InspectionType = "maintenance"
	InspectionTypeCompliance  InspectionType = "compliance"
	InspectionTypeMoveIn      InspectionType = "move_in"
	InspectionTypeMoveOut     InspectionType = "move_out"
)

type InspectionStatusType string

const (
	InspectionStatusScheduled  InspectionStatusType = "scheduled"
	InspectionStatusInProgress InspectionStatusType = "in_progress"
	InspectionStatusCompleted  InspectionStatusType = "completed"
	InspectionStatusCancelled  InspectionStatusType = "cancelled"
)

type Inspection struct {
	ID            string               `json:"id"`
	PropertyID    string               `json:"propertyId"`
	UnitID        *string              `json:"unitId"`
	Type          InspectionType       `json:"type"`
	ScheduledDate time.Time            `json:"scheduledDate"`
	CompletedDate *time.Time           `json:"completedDate"`
	InspectorID   string               `json:"inspectorId"`
	Status        InspectionStatusType `json:"status"`
	// Findings is free-form JSON captured by the inspector.
	Findings  json.RawMessage `json:"findings"`
	ReportURL *string         `json:"reportUrl"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (i Inspection) GetID() string { return i.ID }

func (i *Inspection) ApplyDefaults() {
	if i.Status == "" {
		i.Status = InspectionStatusScheduled
	}
}
