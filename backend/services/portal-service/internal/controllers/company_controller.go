package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type CompanyController struct {
	companyService *services.CompanyService
}

func NewCompanyController(s *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: s}
}

// GET /api/companies
func (c *CompanyController) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.companyService.ListCompanies(r.Context())
	respondList(w, list, err)
}

// GET /api/companies/{id}
func (c *CompanyController) GetCompanyHandler(w http.ResponseWriter, r *http.Request) {
	company, err := c.companyService.GetCompany(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, company, err, "Company not found")
}

// POST /api/companies
func (c *CompanyController) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	company, err := c.companyService.CreateCompany(r.Context(), req)
	respondCreated(w, company, err)
}

// GET /api/companies/{id}/properties
func (c *CompanyController) ListCompanyPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.companyService.ListCompanyProperties(r.Context(), mux.Vars(r)["id"])
	respondList(w, list, err)
}
