package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/user"
)

type (
	// PostJobHandler creates a job posting.
	PostJobHandler interface {
		Handle(ctx context.Context, cmd commands.PostJobCommand) (*job.Job, error)
	}
	// EditJobHandler applies a partial update to a job posting.
	EditJobHandler interface {
		Handle(ctx context.Context, cmd commands.EditJobCommand) (*job.Job, error)
	}
	// RemoveJobHandler deletes a job posting.
	RemoveJobHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveJobCommand) error
	}
	// CreateCompanyHandler registers a company.
	CreateCompanyHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCompanyCommand) (*company.Company, error)
	}
	// EditCompanyHandler applies a partial update to a company.
	EditCompanyHandler interface {
		Handle(ctx context.Context, cmd commands.EditCompanyCommand) (*company.Company, error)
	}
	// RemoveCompanyHandler deletes a company.
	RemoveCompanyHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCompanyCommand) error
	}
	// RegisterUserHandler creates a user account.
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}
	// FindJobsHandler lists job postings with optional filters.
	FindJobsHandler interface {
		Handle(ctx context.Context, q queries.FindJobsQuery) ([]queries.FindJobsQueryResponse, error)
	}
	// GetJobHandler fetches one posting with its company.
	GetJobHandler interface {
		Handle(ctx context.Context, q queries.GetJobQuery) (queries.GetJobQueryResponse, error)
	}
	// FindCompaniesHandler lists companies.
	FindCompaniesHandler interface {
		Handle(ctx context.Context, q queries.FindCompaniesQuery) ([]queries.CompanyResponse, error)
	}
	// GetCompanyHandler fetches one company.
	GetCompanyHandler interface {
		Handle(ctx context.Context, q queries.GetCompanyQuery) (queries.CompanyResponse, error)
	}
	// GetUserHandler fetches one user profile.
	GetUserHandler interface {
		Handle(ctx context.Context, q queries.GetUserQuery) (queries.GetUserQueryResponse, error)
	}
	// AuthenticateUserHandler checks credentials.
	AuthenticateUserHandler interface {
		Handle(ctx context.Context, q queries.AuthenticateUserQuery) (queries.GetUserQueryResponse, error)
	}
	// TokenIssuer signs a bearer token for a user.
	TokenIssuer interface {
		Issue(username string, isAdmin bool) (string, error)
	}
)

// Dependencies carries everything the HTTP layer delegates to.
type Dependencies struct {
	PostJob       PostJobHandler
	EditJob       EditJobHandler
	RemoveJob     RemoveJobHandler
	CreateCompany CreateCompanyHandler
	EditCompany   EditCompanyHandler
	RemoveCompany RemoveCompanyHandler
	RegisterUser  RegisterUserHandler

	FindJobs         FindJobsHandler
	GetJob           GetJobHandler
	FindCompanies    FindCompaniesHandler
	GetCompany       GetCompanyHandler
	GetUser          GetUserHandler
	AuthenticateUser AuthenticateUserHandler

	Tokens   TokenIssuer
	Verifier TokenVerifier
}

// Server exposes the application over REST.
type Server struct {
	deps Dependencies
}

// NewServer creates the HTTP server facade.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// RegisterRoutes installs the error responder, the token-enrichment middleware
// and every route on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(Authenticate(s.deps.Verifier))

	e.GET("/health", s.Health)

	e.POST("/auth/register", s.Register)
	e.POST("/auth/token", s.Token)
	e.GET("/auth/me", s.Me, RequireLoggedIn)
	e.GET("/users/:username", s.GetUser, RequireAdminOrSelf("username"))

	jobs := e.Group("/jobs")
	jobs.POST("", s.CreateJob, RequireAdmin)
	jobs.GET("", s.ListJobs)
	jobs.GET("/:id", s.GetJob)
	jobs.PATCH("/:id", s.UpdateJob, RequireAdmin)
	jobs.DELETE("/:id", s.DeleteJob, RequireAdmin)

	companies := e.Group("/companies")
	companies.POST("", s.CreateCompany, RequireAdmin)
	companies.GET("", s.ListCompanies)
	companies.GET("/:handle", s.GetCompany)
	companies.PATCH("/:handle", s.UpdateCompany, RequireAdmin)
	companies.DELETE("/:handle", s.DeleteCompany, RequireAdmin)
}

// Health reports liveness.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
