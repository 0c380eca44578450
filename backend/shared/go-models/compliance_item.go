package models

import "time"

type ComplianceCategoryType string

const (
	ComplianceCategorySafety        ComplianceCategoryType = "safety"
	ComplianceCategoryLegal         ComplianceCategoryType = "legal"
	ComplianceCategoryFinancial     ComplianceCategoryType = "financial"
	ComplianceCategoryEnvironmental ComplianceCategoryType = "environmental"
)

type ComplianceStatusType string

const (
	ComplianceStatusPending    ComplianceStatusType = "pending"
	ComplianceStatusInProgress ComplianceStatusType = "in_progress"
	ComplianceStatusCompleted  ComplianceStatusType = "completed"
	ComplianceStatusOverdue    ComplianceStatusType = "overdue"
)

type ComplianceItem struct {
	ID            string                 `json:"id"`
	PropertyID    string                 `json:"propertyId"`
	Title         string                 `json:"title"`
	Description   *string                `json:"description"`
	Category      ComplianceCategoryType `json:"category"`
	DueDate       time.Time              `json:"dueDate"`
	CompletedDate *time.Time             `json:"completedDate"`
	Status        ComplianceStatusType   `json:"status"`
	AssignedTo    *string                `json:"assignedTo"`
	Documents     []string               `json:"documents"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func (c ComplianceItem) GetID() string { return c.ID }

func (c *ComplianceItem) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ComplianceStatusPending
	}
}
