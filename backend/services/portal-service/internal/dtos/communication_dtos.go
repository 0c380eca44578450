package dtos

import "github.com/JacquiM/PropManPulse/backend/shared/go-models"

type CreateCommunicationRequest struct {
	FromUserID string                         `json:"fromUserId" validate:"required"`
	ToUserID   *string                        `json:"toUserId"`
	PropertyID *string                        `json:"propertyId"`
	Subject    string                         `json:"subject" validate:"required"`
	Message    string                         `json:"message" validate:"required"`
	Type       models.CommunicationType       `json:"type" validate:"required,oneof=email sms notification announcement"`
	Status     models.CommunicationStatusType `json:"status" validate:"omitempty,oneof=sent delivered read"`
}
