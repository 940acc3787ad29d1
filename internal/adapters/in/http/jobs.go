package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/pkg/errs"
)

type jobView struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"company_handle"`
}

type jobListItem struct {
	jobView
	CompanyName string `json:"name"`
}

type jobWithCompany struct {
	ID      int64       `json:"id"`
	Title   string      `json:"title"`
	Salary  *int64      `json:"salary"`
	Equity  *string     `json:"equity"`
	Company companyView `json:"company"`
}

type jobEnvelope struct {
	Job jobView `json:"job"`
}

type jobsEnvelope struct {
	Jobs []jobListItem `json:"jobs"`
}

type deletedEnvelope struct {
	Deleted string `json:"deleted"`
}

func jobViewFromDomain(j *job.Job) jobView {
	var equity *string
	if e := j.Equity(); e != nil {
		value := e.String()
		equity = &value
	}
	return jobView{
		ID:            j.ID(),
		Title:         j.Title(),
		Salary:        j.Salary(),
		Equity:        equity,
		CompanyHandle: j.CompanyHandle(),
	}
}

type jobNewRequest struct {
	Title         string  `json:"title"`
	Salary        *int64  `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"company_handle"`
}

// CreateJob handles POST /jobs.
func (s *Server) CreateJob(c echo.Context) error {
	var req jobNewRequest
	if err := decodeAndValidate(c, jobNewSchema, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPostJobCommand(req.Title, req.Salary, req.Equity, req.CompanyHandle)
	if err != nil {
		return err
	}

	posting, err := s.deps.PostJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, jobEnvelope{Job: jobViewFromDomain(posting)})
}

// ListJobs handles GET /jobs with optional title, minSalary and hasEquity
// filters. minSalary must be numeric; hasEquity activates only on the literal
// string "true".
func (s *Server) ListJobs(c echo.Context) error {
	var title *string
	if raw := c.QueryParam("title"); raw != "" {
		title = &raw
	}

	var minSalary *int64
	if raw := c.QueryParam("minSalary"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("minSalary", err)
		}
		minSalary = &value
	}

	hasEquity := c.QueryParam("hasEquity") == "true"

	rows, err := s.deps.FindJobs.Handle(c.Request().Context(), queries.NewFindJobsQuery(title, minSalary, hasEquity))
	if err != nil {
		return err
	}

	items := make([]jobListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, jobListItem{
			jobView: jobView{
				ID:            row.ID,
				Title:         row.Title,
				Salary:        row.Salary,
				Equity:        row.Equity,
				CompanyHandle: row.CompanyHandle,
			},
			CompanyName: row.CompanyName,
		})
	}
	return c.JSON(http.StatusOK, jobsEnvelope{Jobs: items})
}

// GetJob handles GET /jobs/:id. A non-numeric id is indistinguishable from a
// missing posting and yields 404.
func (s *Server) GetJob(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("jobId", c.Param("id"), err)
	}

	view, err := s.deps.GetJob.Handle(c.Request().Context(), queries.NewGetJobQuery(id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]jobWithCompany{"job": {
		ID:      view.ID,
		Title:   view.Title,
		Salary:  view.Salary,
		Equity:  view.Equity,
		Company: companyViewFromResponse(view.Company),
	}})
}

// UpdateJob handles PATCH /jobs/:id with any subset of title, salary and
// equity.
func (s *Server) UpdateJob(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("jobId", c.Param("id"), err)
	}

	fields := map[string]any{}
	if err := decodeAndValidate(c, jobUpdateSchema, &fields); err != nil {
		return err
	}
	coerceIntegerField(fields, "salary")

	cmd, err := commands.NewEditJobCommand(id, fields)
	if err != nil {
		return err
	}

	posting, err := s.deps.EditJob.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobEnvelope{Job: jobViewFromDomain(posting)})
}

// DeleteJob handles DELETE /jobs/:id.
func (s *Server) DeleteJob(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("jobId", c.Param("id"), err)
	}

	if err := s.deps.RemoveJob.Handle(c.Request().Context(), commands.NewRemoveJobCommand(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedEnvelope{Deleted: c.Param("id")})
}

// coerceIntegerField rewrites a JSON number (decoded as float64) into int64 so
// the update lands in an integer column without a cast error.
func coerceIntegerField(fields map[string]any, name string) {
	if value, ok := fields[name].(float64); ok {
		fields[name] = int64(value)
	}
}
