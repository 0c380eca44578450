package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type MaintenanceService struct {
	tickets repositories.MaintenanceTicketRepository
	now     func() time.Time
}

func NewMaintenanceService(tickets repositories.MaintenanceTicketRepository, now func() time.Time) *MaintenanceService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &MaintenanceService{tickets: tickets, now: now}
}

func (s *MaintenanceService) ListTickets(ctx context.Context) ([]*models.MaintenanceTicket, error) {
	list, err := s.tickets.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch maintenance tickets", err)
	}
	return list, nil
}

func (s *MaintenanceService) GetTicket(ctx context.Context, id string) (*models.MaintenanceTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch maintenance ticket", err)
	}
	return t, nil
}

func (s *MaintenanceService) CreateTicket(
	ctx context.Context,
	req dtos.CreateMaintenanceTicketRequest,
) (*models.MaintenanceTicket, error) {
	t := &models.MaintenanceTicket{
		PropertyID:    req.PropertyID,
		UnitID:        req.UnitID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        req.Status,
		ReportedBy:    req.ReportedBy,
		AssignedTo:    req.AssignedTo,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	}
	if t.Status == models.TicketStatusCompleted {
		t.CompletedAt = utils.Ptr(s.now())
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, storeError("maintenance ticket", err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"ticket_id":     t.ID,
		"ticket_number": t.TicketNumber,
		"property_id":   t.PropertyID,
		"priority":      t.Priority,
	}).Info("maintenance ticket created")
	return t, nil
}

// UpdateTicket merges the provided fields into the stored ticket; a null
// Nullable field clears it. Moving to completed stamps CompletedAt unless
// the request carries completedAt, null included.
func (s *MaintenanceService) UpdateTicket(
	ctx context.Context,
	id string,
	req dtos.UpdateMaintenanceTicketRequest,
) (*models.MaintenanceTicket, error) {
	updated, err := s.tickets.Update(ctx, id, func(t *models.MaintenanceTicket) error {
		if req.UnitID.Set {
			t.UnitID = req.UnitID.Value
		}
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Category != nil {
			t.Category = *req.Category
		}
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.Status != nil {
			t.Status = *req.Status
		}
		if req.AssignedTo.Set {
			t.AssignedTo = req.AssignedTo.Value
		}
		if req.EstimatedCost.Set {
			t.EstimatedCost = req.EstimatedCost.Value
		}
		if req.ActualCost.Set {
			t.ActualCost = req.ActualCost.Value
		}
		if req.CompletedAt.Set {
			t.CompletedAt = req.CompletedAt.Value
		} else if t.Status == models.TicketStatusCompleted && t.CompletedAt == nil {
			t.CompletedAt = utils.Ptr(s.now())
		}
		return nil
	})
	if err != nil {
		return nil, storeError("maintenance ticket", err)
	}
	return updated, nil
}
