package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/company"
)

type companyView struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

type companyEnvelope struct {
	Company companyView `json:"company"`
}

type companiesEnvelope struct {
	Companies []companyView `json:"companies"`
}

func companyViewFromDomain(c *company.Company) companyView {
	return companyView{
		Handle:       c.Handle(),
		Name:         c.Name(),
		Description:  c.Description(),
		NumEmployees: c.NumEmployees(),
		LogoURL:      c.LogoURL(),
	}
}

func companyViewFromResponse(r queries.CompanyResponse) companyView {
	return companyView{
		Handle:       r.Handle,
		Name:         r.Name,
		Description:  r.Description,
		NumEmployees: r.NumEmployees,
		LogoURL:      r.LogoURL,
	}
}

type companyNewRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int64  `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CreateCompany handles POST /companies.
func (s *Server) CreateCompany(c echo.Context) error {
	var req companyNewRequest
	if err := decodeAndValidate(c, companyNewSchema, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCompanyCommand(req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	if err != nil {
		return err
	}

	created, err := s.deps.CreateCompany.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, companyEnvelope{Company: companyViewFromDomain(created)})
}

// ListCompanies handles GET /companies with an optional name filter.
func (s *Server) ListCompanies(c echo.Context) error {
	var name *string
	if raw := c.QueryParam("name"); raw != "" {
		name = &raw
	}

	rows, err := s.deps.FindCompanies.Handle(c.Request().Context(), queries.NewFindCompaniesQuery(name))
	if err != nil {
		return err
	}

	views := make([]companyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, companyViewFromResponse(row))
	}
	return c.JSON(http.StatusOK, companiesEnvelope{Companies: views})
}

// GetCompany handles GET /companies/:handle.
func (s *Server) GetCompany(c echo.Context) error {
	view, err := s.deps.GetCompany.Handle(c.Request().Context(), queries.NewGetCompanyQuery(c.Param("handle")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyEnvelope{Company: companyViewFromResponse(view)})
}

// UpdateCompany handles PATCH /companies/:handle with any subset of name,
// description, numEmployees and logoUrl.
func (s *Server) UpdateCompany(c echo.Context) error {
	fields := map[string]any{}
	if err := decodeAndValidate(c, companyUpdateSchema, &fields); err != nil {
		return err
	}
	coerceIntegerField(fields, "numEmployees")

	cmd, err := commands.NewEditCompanyCommand(c.Param("handle"), fields)
	if err != nil {
		return err
	}

	updated, err := s.deps.EditCompany.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyEnvelope{Company: companyViewFromDomain(updated)})
}

// DeleteCompany handles DELETE /companies/:handle.
func (s *Server) DeleteCompany(c echo.Context) error {
	cmd, err := commands.NewRemoveCompanyCommand(c.Param("handle"))
	if err != nil {
		return err
	}

	if err := s.deps.RemoveCompany.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedEnvelope{Deleted: c.Param("handle")})
}
