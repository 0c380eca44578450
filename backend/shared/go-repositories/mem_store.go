package repositories

import (
	"context"
	"time"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

// MemStore is the process-local database. Every repository is a view over
// one of its collections, and all of them share the same clock.
type MemStore struct {
	now func() time.Time

	users          *BaseMemRepo[models.User]
	companies      *BaseMemRepo[models.Company]
	properties     *BaseMemRepo[models.Property]
	units          *BaseMemRepo[models.Unit]
	tickets        *BaseMemRepo[models.MaintenanceTicket]
	inspections    *BaseMemRepo[models.Inspection]
	transactions   *BaseMemRepo[models.Transaction]
	compliance     *BaseMemRepo[models.ComplianceItem]
	communications *BaseMemRepo[models.Communication]
}

type MemStoreOption func(*MemStore)

// WithClock overrides time.Now for createdAt stamps and ticket years.
func WithClock(now func() time.Time) MemStoreOption {
	return func(s *MemStore) { s.now = now }
}

func NewMemStore(opts ...MemStoreOption) *MemStore {
	s := &MemStore{
		now:            func() time.Time { return time.Now().UTC() },
		users:          NewBaseMemRepo[models.User](),
		companies:      NewBaseMemRepo[models.Company](),
		properties:     NewBaseMemRepo[models.Property](),
		units:          NewBaseMemRepo[models.Unit](),
		tickets:        NewBaseMemRepo[models.MaintenanceTicket](),
		inspections:    NewBaseMemRepo[models.Inspection](),
		transactions:   NewBaseMemRepo[models.Transaction](),
		compliance:     NewBaseMemRepo[models.ComplianceItem](),
		communications: NewBaseMemRepo[models.Communication](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports whether the store can serve requests.
func (s *MemStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemStore) Now() time.Time {
	return s.now()
}

// Counts is a snapshot of collection sizes, used by the health endpoint.
func (s *MemStore) Counts() map[string]int {
	return map[string]int{
		"users":              s.users.Count(),
		"companies":          s.companies.Count(),
		"properties":         s.properties.Count(),
		"units":              s.units.Count(),
		"maintenanceTickets": s.tickets.Count(),
		"inspections":        s.inspections.Count(),
		"transactions":       s.transactions.Count(),
		"complianceItems":    s.compliance.Count(),
		"communications":     s.communications.Count(),
	}
}
