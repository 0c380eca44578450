package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type DemoRequestService interface {
	// SubmitDemoRequest accepts a validated request. Nothing is stored or sent.
	SubmitDemoRequest(ctx context.Context, req dtos.DemoRequest) error
}

type demoRequestService struct{}

func NewDemoRequestService() DemoRequestService {
	return &demoRequestService{}
}

func (s *demoRequestService) SubmitDemoRequest(ctx context.Context, req dtos.DemoRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	utils.Logger.WithFields(logrus.Fields{
		"email":      req.Email,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"company":    req.Company,
		"request_id": utils.RequestIDFromContext(ctx),
	}).Info("demo request received")
	return nil
}
