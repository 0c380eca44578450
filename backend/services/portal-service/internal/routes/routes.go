package routes

const (
	// Health
	Health  = "/health"
	Metrics = "/metrics"

	// Auth
	AuthLogin = "/api/login"

	// Users
	Users    = "/api/users"
	UserByID = "/api/users/{id}"

	// ───────────────────────────────
	// Companies / Properties / Units
	// ───────────────────────────────
	Companies         = "/api/companies"
	CompanyByID       = "/api/companies/{id}"
	CompanyProperties = "/api/companies/{id}/properties"

	Properties              = "/api/properties"
	PropertyByID            = "/api/properties/{id}"
	PropertyUnits           = "/api/properties/{id}/units"
	PropertyMaintenance     = "/api/properties/{id}/maintenance-tickets"
	PropertyInspections     = "/api/properties/{id}/inspections"
	PropertyTransactions    = "/api/properties/{id}/transactions"
	PropertyComplianceItems = "/api/properties/{id}/compliance-items"

	Units    = "/api/units"
	UnitByID = "/api/units/{id}"

	// ───────────────────────────────
	// Operations
	// ───────────────────────────────
	MaintenanceTickets    = "/api/maintenance-tickets"
	MaintenanceTicketByID = "/api/maintenance-tickets/{id}"

	Inspections    = "/api/inspections"
	InspectionByID = "/api/inspections/{id}"

	Transactions    = "/api/transactions"
	TransactionByID = "/api/transactions/{id}"

	ComplianceItems    = "/api/compliance-items"
	ComplianceItemByID = "/api/compliance-items/{id}"

	Communications    = "/api/communications"
	CommunicationByID = "/api/communications/{id}"

	// ───────────────────────────────
	// Dashboard / Marketing
	// ───────────────────────────────
	DashboardStats               = "/api/dashboard/stats"
	DashboardActivity            = "/api/dashboard/activity"
	DashboardUpcomingInspections = "/api/dashboard/upcoming-inspections"

	DemoRequest = "/api/demo-request"
)
