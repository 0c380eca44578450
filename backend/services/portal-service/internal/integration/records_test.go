package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/routes"
	go_dtos "github.com/JacquiM/PropManPulse/backend/shared/go-dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

func TestProperties_CreateThenGet(t *testing.T) {
	h, _ := newHelper(t)

	var created models.Property
	h.DecodeJSON(h.Do(http.MethodPost, routes.Properties, map[string]any{
		"name":           "Harbour View",
		"address":        "1 Quay Road, Cape Town",
		"type":           "residential",
		"managementType": "rental",
		"totalUnits":     40,
		"companyId":      "company-1",
		"annualLevy":     "950000.00",
	}), http.StatusCreated, &created)

	require.NotEmpty(t, created.ID)
	assert.Equal(t, 0, *created.ComplianceRate)
	assert.True(t, created.CreatedAt.Equal(fixedNow))

	var fetched models.Property
	h.DecodeJSON(h.Do(http.MethodGet, "/api/properties/"+created.ID, nil), http.StatusOK, &fetched)
	assert.Equal(t, created, fetched)

	var list []models.Property
	h.DecodeJSON(h.Do(http.MethodGet, routes.Properties, nil), http.StatusOK, &list)
	require.Len(t, list, 3)
	assert.Equal(t, created.ID, list[2].ID)

	var companyProps []models.Property
	h.DecodeJSON(h.Do(http.MethodGet, "/api/companies/company-1/properties", nil), http.StatusOK, &companyProps)
	assert.Len(t, companyProps, 3)
}

func TestRecords_NotFound(t *testing.T) {
	h, _ := newHelper(t)

	cases := map[string]string{
		"/api/companies/nope":            "Company not found",
		"/api/properties/nope":           "Property not found",
		"/api/units/nope":                "Unit not found",
		"/api/maintenance-tickets/nope":  "Maintenance ticket not found",
		"/api/inspections/nope":          "Inspection not found",
		"/api/transactions/nope":         "Transaction not found",
		"/api/compliance-items/nope":     "Compliance item not found",
		"/api/communications/nope":       "Communication not found",
		"/api/properties/nope/units":     "Property not found",
		"/api/companies/nope/properties": "Company not found",
	}
	for path, msg := range cases {
		var out utils.ErrorResponse
		h.DecodeJSON(h.Do(http.MethodGet, path, nil), http.StatusNotFound, &out)
		assert.Equal(t, utils.ErrCodeNotFound, out.Code, path)
		assert.Equal(t, msg, out.Message, path)
	}
}

func TestRecords_ValidationLeavesStoreUntouched(t *testing.T) {
	h, a := newHelper(t)
	before := a.Store.Counts()

	bad := map[string]any{
		routes.Properties:         map[string]any{"name": "No address", "type": "residential"},
		routes.Units:              map[string]any{"propertyId": "property-1", "unitNumber": "9", "type": "castle"},
		routes.MaintenanceTickets: map[string]any{"propertyId": "property-1", "title": "x"},
		routes.Inspections:        map[string]any{"propertyId": "property-1", "type": "safety", "inspectorId": "manager-1"},
		routes.Transactions:       map[string]any{"type": "rent", "category": "income", "amount": "lots", "description": "x"},
		routes.ComplianceItems:    map[string]any{"propertyId": "property-1", "title": "Fire cert", "category": "safety"},
		routes.Communications:     map[string]any{"fromUserId": "admin-1", "subject": "hi", "message": "yo", "type": "pigeon"},
		routes.Companies:          map[string]any{"name": "Acme"},
		routes.Users:              map[string]any{"email": "not-an-email", "password": "123456", "firstName": "A", "lastName": "B"},
	}
	for path, body := range bad {
		var out utils.ErrorResponse
		h.DecodeJSON(h.Do(http.MethodPost, path, body), http.StatusBadRequest, &out)
		assert.Equal(t, utils.ErrCodeValidation, out.Code, path)
		assert.NotNil(t, out.Details, path)
	}

	assert.Equal(t, before, a.Store.Counts())
}

func TestValidation_ReportsFieldNames(t *testing.T) {
	h, _ := newHelper(t)

	var out struct {
		Code    string                          `json:"code"`
		Details []go_dtos.ValidationErrorDetail `json:"details"`
	}
	h.DecodeJSON(h.Do(http.MethodPost, routes.Transactions, map[string]any{
		"type": "rent", "category": "income", "amount": "abc", "description": "x",
	}), http.StatusBadRequest, &out)

	require.Len(t, out.Details, 1)
	assert.Equal(t, "amount", out.Details[0].Field)
	assert.Equal(t, "validation_decimal", out.Details[0].Code)
}

func TestPropertyChildListings(t *testing.T) {
	h, _ := newHelper(t)

	var tickets []models.MaintenanceTicket
	h.DecodeJSON(h.Do(http.MethodGet, "/api/properties/property-1/maintenance-tickets", nil), http.StatusOK, &tickets)
	require.NotEmpty(t, tickets)
	for _, tk := range tickets {
		assert.Equal(t, "property-1", tk.PropertyID)
	}

	var txns []models.Transaction
	h.DecodeJSON(h.Do(http.MethodGet, "/api/properties/property-2/transactions", nil), http.StatusOK, &txns)
	for _, tx := range txns {
		require.NotNil(t, tx.PropertyID)
		assert.Equal(t, "property-2", *tx.PropertyID)
	}

	// A property with no children yields an empty array, not null.
	var created models.Property
	h.DecodeJSON(h.Do(http.MethodPost, routes.Properties, map[string]any{
		"name": "Empty Lot", "address": "2 Nowhere St", "type": "commercial",
		"managementType": "rental", "companyId": "company-1",
	}), http.StatusCreated, &created)

	resp := h.Do(http.MethodGet, "/api/properties/"+created.ID+"/inspections", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", h.ReadBody(resp))
}

func TestRecords_CreateDefaults(t *testing.T) {
	h, _ := newHelper(t)

	var unit models.Unit
	h.DecodeJSON(h.Do(http.MethodPost, routes.Units, map[string]any{
		"propertyId": "property-1", "unitNumber": "305", "type": "apartment", "monthlyRent": "8500",
	}), http.StatusCreated, &unit)
	require.NotNil(t, unit.IsOccupied)
	assert.False(t, *unit.IsOccupied)

	var insp models.Inspection
	h.DecodeJSON(h.Do(http.MethodPost, routes.Inspections, map[string]any{
		"propertyId": "property-2", "type": "move_in", "scheduledDate": "2025-04-01T10:00:00Z",
		"inspectorId": "manager-1", "findings": map[string]any{"notes": "clean"},
	}), http.StatusCreated, &insp)
	assert.Equal(t, models.InspectionStatusScheduled, insp.Status)
	assert.JSONEq(t, `{"notes":"clean"}`, string(insp.Findings))

	var tx models.Transaction
	h.DecodeJSON(h.Do(http.MethodPost, routes.Transactions, map[string]any{
		"type": "deposit", "category": "income", "amount": "1000", "description": "Deposit",
	}), http.StatusCreated, &tx)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.Nil(t, tx.PropertyID)

	var item models.ComplianceItem
	h.DecodeJSON(h.Do(http.MethodPost, routes.ComplianceItems, map[string]any{
		"propertyId": "property-1", "title": "Lift certificate", "category": "safety",
		"dueDate": "2025-06-30T00:00:00Z", "documents": []string{"lift-cert.pdf"},
	}), http.StatusCreated, &item)
	assert.Equal(t, models.ComplianceStatusPending, item.Status)
	assert.Equal(t, []string{"lift-cert.pdf"}, item.Documents)

	var comm models.Communication
	h.DecodeJSON(h.Do(http.MethodPost, routes.Communications, map[string]any{
		"fromUserId": "manager-1", "toUserId": "admin-1", "subject": "Budget", "message": "Draft attached", "type": "email",
	}), http.StatusCreated, &comm)
	assert.Equal(t, models.CommunicationStatusSent, comm.Status)

	var company models.Company
	h.DecodeJSON(h.Do(http.MethodPost, routes.Companies, map[string]any{
		"name": "Coastal Body Corporate", "type": "body_corporate",
	}), http.StatusCreated, &company)
	assert.NotEmpty(t, company.ID)
}

func TestCommunications_FilterByUser(t *testing.T) {
	h, _ := newHelper(t)

	var all []models.Communication
	h.DecodeJSON(h.Do(http.MethodGet, routes.Communications, nil), http.StatusOK, &all)
	assert.Len(t, all, 2)

	var mine []models.Communication
	h.DecodeJSON(h.Do(http.MethodGet, routes.Communications+"?userId=admin-1", nil), http.StatusOK, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "communication-2", mine[0].ID)
}
