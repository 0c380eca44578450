package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// CommunicationService stores messages. Delivery is out of scope; a record
// with status "sent" only means it was accepted.
type CommunicationService struct {
	comms repositories.CommunicationRepository
}

func NewCommunicationService(comms repositories.CommunicationRepository) *CommunicationService {
	return &CommunicationService{comms: comms}
}

// ListCommunications returns everything, or only messages involving userID
// when it is non-empty.
func (s *CommunicationService) ListCommunications(ctx context.Context, userID string) ([]*models.Communication, error) {
	var (
		list []*models.Communication
		err  error
	)
	if userID != "" {
		list, err = s.comms.ListByUserID(ctx, userID)
	} else {
		list, err = s.comms.List(ctx)
	}
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch communications", err)
	}
	return list, nil
}

func (s *CommunicationService) GetCommunication(ctx context.Context, id string) (*models.Communication, error) {
	c, err := s.comms.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch communication", err)
	}
	return c, nil
}

func (s *CommunicationService) CreateCommunication(
	ctx context.Context,
	req dtos.CreateCommunicationRequest,
) (*models.Communication, error) {
	c := &models.Communication{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		PropertyID: req.PropertyID,
		Subject:    req.Subject,
		Message:    req.Message,
		Type:       req.Type,
		Status:     req.Status,
	}
	if err := s.comms.Create(ctx, c); err != nil {
		return nil, storeError("communication", err)
	}
	return c, nil
}
