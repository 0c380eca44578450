package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/app"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/controllers"
	"github.com/JacquiM/PropManPulse/backend/shared/go-middleware"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

const metricsNamespace = "propmanpulse"

// NewRouter registers every portal endpoint on a fresh mux router. Unknown
// paths and wrong methods answer with the JSON error envelope.
func NewRouter(a *app.App) *mux.Router {
	cfg := a.Config

	// Controllers
	healthController := controllers.NewHealthController(a)
	authController := controllers.NewAuthController(a.AuthService)
	userController := controllers.NewUserController(a.UserService)
	companyController := controllers.NewCompanyController(a.CompanyService)
	propertyController := controllers.NewPropertyController(a.PropertyService)
	unitController := controllers.NewUnitController(a.PropertyService)
	ticketController := controllers.NewMaintenanceTicketController(a.MaintenanceService)
	inspectionController := controllers.NewInspectionController(a.InspectionService)
	transactionController := controllers.NewTransactionController(a.FinanceService)
	complianceController := controllers.NewComplianceController(a.ComplianceService)
	communicationController := controllers.NewCommunicationController(a.CommunicationService)
	dashboardController := controllers.NewDashboardController(a.DashboardService)
	demoRequestController := controllers.NewDemoRequestController(a.DemoRequestService)

	metrics := middleware.NewMetrics(metricsNamespace)
	var limiterOpts []middleware.RateLimiterOption
	if cfg.TrustProxyHeaders {
		limiterOpts = append(limiterOpts, middleware.WithTrustedProxyHeaders())
	}
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst, limiterOpts...)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	router.Use(middleware.RequestLogging, metrics.Middleware)

	// Health
	router.HandleFunc(Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.Handle(Metrics, metrics.Handler()).Methods(http.MethodGet)

	// Auth
	router.Handle(AuthLogin, loginLimiter.Middleware(http.HandlerFunc(authController.LoginHandler))).Methods(http.MethodPost)

	// Users
	router.HandleFunc(Users, userController.CreateUserHandler).Methods(http.MethodPost)
	router.HandleFunc(UserByID, userController.GetUserHandler).Methods(http.MethodGet)

	// Companies
	router.HandleFunc(Companies, companyController.ListCompaniesHandler).Methods(http.MethodGet)
	router.HandleFunc(Companies, companyController.CreateCompanyHandler).Methods(http.MethodPost)
	router.HandleFunc(CompanyByID, companyController.GetCompanyHandler).Methods(http.MethodGet)
	router.HandleFunc(CompanyProperties, companyController.ListCompanyPropertiesHandler).Methods(http.MethodGet)

	// Properties
	router.HandleFunc(Properties, propertyController.ListPropertiesHandler).Methods(http.MethodGet)
	router.HandleFunc(Properties, propertyController.CreatePropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(PropertyByID, propertyController.GetPropertyHandler).Methods(http.MethodGet)
	router.HandleFunc(PropertyUnits, propertyController.ListUnitsHandler).Methods(http.MethodGet)
	router.HandleFunc(PropertyMaintenance, propertyController.ListMaintenanceTicketsHandler).Methods(http.MethodGet)
	router.HandleFunc(PropertyInspections, propertyController.ListInspectionsHandler).Methods(http.MethodGet)
	router.HandleFunc(PropertyTransactions, propertyController.ListTransactionsHandler).Methods(http.MethodGet)
	router.HandleFunc(PropertyComplianceItems, propertyController.ListComplianceItemsHandler).Methods(http.MethodGet)

	// Units
	router.HandleFunc(Units, unitController.ListUnitsHandler).Methods(http.MethodGet)
	router.HandleFunc(Units, unitController.CreateUnitHandler).Methods(http.MethodPost)
	router.HandleFunc(UnitByID, unitController.GetUnitHandler).Methods(http.MethodGet)

	// Maintenance
	router.HandleFunc(MaintenanceTickets, ticketController.ListTicketsHandler).Methods(http.MethodGet)
	router.HandleFunc(MaintenanceTickets, ticketController.CreateTicketHandler).Methods(http.MethodPost)
	router.HandleFunc(MaintenanceTicketByID, ticketController.GetTicketHandler).Methods(http.MethodGet)
	router.HandleFunc(MaintenanceTicketByID, ticketController.UpdateTicketHandler).Methods(http.MethodPatch)

	// Inspections
	router.HandleFunc(Inspections, inspectionController.ListInspectionsHandler).Methods(http.MethodGet)
	router.HandleFunc(Inspections, inspectionController.CreateInspectionHandler).Methods(http.MethodPost)
	router.HandleFunc(InspectionByID, inspectionController.GetInspectionHandler).Methods(http.MethodGet)

	// Transactions
	router.HandleFunc(Transactions, transactionController.ListTransactionsHandler).Methods(http.MethodGet)
	router.HandleFunc(Transactions, transactionController.CreateTransactionHandler).Methods(http.MethodPost)
	router.HandleFunc(TransactionByID, transactionController.GetTransactionHandler).Methods(http.MethodGet)

	// Compliance
	router.HandleFunc(ComplianceItems, complianceController.ListItemsHandler).Methods(http.MethodGet)
	router.HandleFunc(ComplianceItems, complianceController.CreateItemHandler).Methods(http.MethodPost)
	router.HandleFunc(ComplianceItemByID, complianceController.GetItemHandler).Methods(http.MethodGet)

	// Communications
	router.HandleFunc(Communications, communicationController.ListCommunicationsHandler).Methods(http.MethodGet)
	router.HandleFunc(Communications, communicationController.CreateCommunicationHandler).Methods(http.MethodPost)
	router.HandleFunc(CommunicationByID, communicationController.GetCommunicationHandler).Methods(http.MethodGet)

	// Dashboard
	router.HandleFunc(DashboardStats, dashboardController.StatsHandler).Methods(http.MethodGet)
	router.HandleFunc(DashboardActivity, dashboardController.RecentActivityHandler).Methods(http.MethodGet)
	router.HandleFunc(DashboardUpcomingInspections, dashboardController.UpcomingInspectionsHandler).Methods(http.MethodGet)

	// Marketing
	router.HandleFunc(DemoRequest, demoRequestController.SubmitDemoRequestHandler).Methods(http.MethodPost)

	return router
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Route not found", nil)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondErrorWithCode(w, http.StatusMethodNotAllowed, utils.ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
