package models

import "time"

type TicketCategoryType string

const (
	TicketCategoryPlumbing   TicketCategoryType = "plumbing"
	TicketCategoryElectrical TicketCategoryType = "electrical"
	TicketCategoryHVAC       TicketCategoryType = "hvac"
	TicketCategoryGeneral    TicketCategoryType = "general"
)

type TicketPriorityType string

const (
	TicketPriorityLow    TicketPriorityType = "low"
	TicketPriorityMedium TicketPriorityType = "medium"
	TicketPriorityHigh   TicketPriorityType = "high"
	TicketPriorityUrgent TicketPriorityType = "urgent"
)

type TicketStatusType string

const (
	TicketStatusOpen       TicketStatusType = "open"
	TicketStatusInProgress TicketStatusType = "in_progress"
	TicketStatusScheduled  TicketStatusType = "scheduled"
	TicketStatusCompleted  TicketStatusType = "completed"
	TicketStatusCancelled  TicketStatusType = "cancelled"
)

type MaintenanceTicket struct {
	ID            string             `json:"id"`
	TicketNumber  string             `json:"ticketNumber"`
	PropertyID    string             `json:"propertyId"`
	UnitID        *string            `json:"unitId"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Category      TicketCategoryType `json:"category"`
	Priority      TicketPriorityType `json:"priority"`
	Status        TicketStatusType   `json:"status"`
	ReportedBy    string             `json:"reportedBy"`
	AssignedTo    *string            `json:"assignedTo"`
	EstimatedCost *string            `json:"estimatedCost"`
	ActualCost    *string            `json:"actualCost"`
	CreatedAt     time.Time          `json:"createdAt"`
	CompletedAt   *time.Time         `json:"completedAt"`
}

func (t MaintenanceTicket) GetID() string { return t.ID }

func (t *MaintenanceTicket) ApplyDefaults() {
	if t.Priority == "" {
		t.Priority = TicketPriorityMedium
	}
	if t.Status == "" {
		t.Status = TicketStatusOpen
	}
}

// IsActive reports whether the ticket still needs work.
func (t MaintenanceTicket) IsActive() bool {
	return t.Status == TicketStatusOpen || t.Status == TicketStatusInProgress
}
