package seeding

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// UserFixture carries the plaintext password that gets hashed at seed time.
type UserFixture struct {
	models.User
	Password string `json:"password"`
}

type Fixtures struct {
	Users               []UserFixture
	Companies           []models.Company
	Properties          []models.Property
	Units               []models.Unit
	MaintenanceTickets  []models.MaintenanceTicket
	Inspections         []models.Inspection
	Transactions        []models.Transaction
	ComplianceItems     []models.ComplianceItem
	Communications      []models.Communication
	RecentActivity      []models.ActivityItem
	UpcomingInspections []models.UpcomingInspection
}

// LoadFixtures parses the embedded demo document.
func LoadFixtures() (*Fixtures, error) {
	return ParseFixtures(fixturesYAML)
}

// ParseFixtures decodes a fixture document. Sections go through JSON so the
// models' json tags (camelCase, RawMessage findings) apply unchanged.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	fx := &Fixtures{}
	steps := []struct {
		key    string
		decode func(raw any) error
	}{
		{"users", into(&fx.Users)},
		{"companies", into(&fx.Companies)},
		{"properties", into(&fx.Properties)},
		{"units", into(&fx.Units)},
		{"maintenanceTickets", into(&fx.MaintenanceTickets)},
		{"inspections", into(&fx.Inspections)},
		{"transactions", into(&fx.Transactions)},
		{"complianceItems", into(&fx.ComplianceItems)},
		{"communications", into(&fx.Communications)},
		{"recentActivity", into(&fx.RecentActivity)},
		{"upcomingInspections", into(&fx.UpcomingInspections)},
	}
	for _, s := range steps {
		raw, ok := doc[s.key]
		if !ok || raw == nil {
			continue
		}
		if err := s.decode(raw); err != nil {
			return nil, fmt.Errorf("decode fixture section %q: %w", s.key, err)
		}
	}
	return fx, nil
}

func into[T any](dst *[]T) func(raw any) error {
	return func(raw any) error {
		b, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}
