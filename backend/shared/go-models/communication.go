package models

import "time"

type CommunicationType string

const (
	CommunicationTypeEmail        CommunicationType = "email"
	CommunicationTypeSMS          CommunicationType = "sms"
	CommunicationTypeNotification CommunicationType = "notification"
	CommunicationTypeAnnouncement CommunicationType = "announcement"
)

type CommunicationStatusType string

const (
	CommunicationStatusSent      CommunicationStatusType = "sent"
	CommunicationStatusDelivered CommunicationStatusType = "delivered"
	CommunicationStatusRead      CommunicationStatusType = "read"
)

// Communication is a stored message record. Nothing is actually delivered.
type Communication struct {
	ID         string                  `json:"id"`
	FromUserID string                  `json:"fromUserId"`
	ToUserID   *string                 `json:"toUserId"`
	PropertyID *string                 `json:"propertyId"`
	Subject    string                  `json:"subject"`
	Message    string                  `json:"message"`
	Type       CommunicationType       `json:"type"`
	Status     CommunicationStatusType `json:"status"`
	CreatedAt  time.Time               `json:"createdAt"`
}

func (c Communication) GetID() string { return c.ID }

func (c *Communication) ApplyDefaults() {
	if c.Status == "" {
		c.Status = CommunicationStatusSent
	}
}

// Involves reports whether userID sent or received the message.
func (c Communication) Involves(userID string) bool {
	return c.FromUserID == userID || (c.ToUserID != nil && *c.ToUserID == userID)
}
