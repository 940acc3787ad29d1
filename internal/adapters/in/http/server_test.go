package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpin "jobboard/internal/adapters/in/http"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/token"
)

// Mock implementations of the use-case interfaces the server depends on.

type MockPostJobHandler struct{ mock.Mock }

func (m *MockPostJobHandler) Handle(ctx context.Context, cmd commands.PostJobCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockEditJobHandler struct{ mock.Mock }

func (m *MockEditJobHandler) Handle(ctx context.Context, cmd commands.EditJobCommand) (*job.Job, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

type MockRemoveJobHandler struct{ mock.Mock }

func (m *MockRemoveJobHandler) Handle(ctx context.Context, cmd commands.RemoveJobCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockFindJobsHandler struct{ mock.Mock }

func (m *MockFindJobsHandler) Handle(ctx context.Context, q queries.FindJobsQuery) ([]queries.FindJobsQueryResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.FindJobsQueryResponse), args.Error(1)
}

type MockGetJobHandler struct{ mock.Mock }

func (m *MockGetJobHandler) Handle(ctx context.Context, q queries.GetJobQuery) (queries.GetJobQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetJobQueryResponse), args.Error(1)
}

type serverFixture struct {
	echo     *echo.Echo
	tokens   *token.Service
	postJob  *MockPostJobHandler
	editJob  *MockEditJobHandler
	remove   *MockRemoveJobHandler
	findJobs *MockFindJobsHandler
	getJob   *MockGetJobHandler
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	tokens := newTokenService(t)
	fixture := &serverFixture{
		tokens:   tokens,
		postJob:  new(MockPostJobHandler),
		editJob:  new(MockEditJobHandler),
		remove:   new(MockRemoveJobHandler),
		findJobs: new(MockFindJobsHandler),
		getJob:   new(MockGetJobHandler),
	}

	server := httpin.NewServer(httpin.Dependencies{
		PostJob:   fixture.postJob,
		EditJob:   fixture.editJob,
		RemoveJob: fixture.remove,
		FindJobs:  fixture.findJobs,
		GetJob:    fixture.getJob,
		Tokens:    tokens,
		Verifier:  tokens,
	})

	e := echo.New()
	server.RegisterRoutes(e)
	fixture.echo = e
	return fixture
}

func (f *serverFixture) request(t *testing.T, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) adminToken(t *testing.T) string {
	t.Helper()
	signed, err := f.tokens.Issue("admin", true)
	require.NoError(t, err)
	return signed
}

func (f *serverFixture) userToken(t *testing.T) string {
	t.Helper()
	signed, err := f.tokens.Issue("bob", false)
	require.NoError(t, err)
	return signed
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, int) {
	t.Helper()
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Message, envelope.Error.Status
}

func TestCreateJob_AsAdmin_Returns201WithJob(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	salary := int64(120000)
	equity, err := job.NewEquity("0.05")
	require.NoError(t, err)
	created, err := job.RestoreJob(42, "Engineer", &salary, &equity, "acme")
	require.NoError(t, err)

	fixture.postJob.On("Handle", mock.Anything, mock.AnythingOfType("commands.PostJobCommand")).
		Return(created, nil).Once()

	body := `{"title":"Engineer","salary":120000,"equity":"0.05","company_handle":"acme"}`

	// Act
	rec := fixture.request(t, http.MethodPost, "/jobs", body, fixture.adminToken(t))

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Job struct {
			ID            int64   `json:"id"`
			Title         string  `json:"title"`
			Salary        *int64  `json:"salary"`
			Equity        *string `json:"equity"`
			CompanyHandle string  `json:"company_handle"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(42), envelope.Job.ID)
	assert.Equal(t, "Engineer", envelope.Job.Title)
	require.NotNil(t, envelope.Job.Equity)
	assert.Equal(t, "0.05", *envelope.Job.Equity)
	fixture.postJob.AssertExpectations(t)
}

func TestCreateJob_WithoutAdmin_Returns401(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	body := `{"title":"Engineer","company_handle":"acme"}`

	// Act: anonymous, then as a regular user
	anonymous := fixture.request(t, http.MethodPost, "/jobs", body, "")
	regular := fixture.request(t, http.MethodPost, "/jobs", body, fixture.userToken(t))

	// Assert
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
	assert.Equal(t, http.StatusUnauthorized, regular.Code)
	fixture.postJob.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateJob_MalformedBody_Returns400WithEveryViolation(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	body := `{"title":"","salary":-5,"unknown":true}`

	// Act
	rec := fixture.request(t, http.MethodPost, "/jobs", body, fixture.adminToken(t))

	// Assert
	require.Equal(t, http.StatusBadRequest, rec.Code)
	message, status := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, message)
	fixture.postJob.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListJobs_CoercesQueryFilters(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.findJobs.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindJobsQuery) bool {
		return q.Title() != nil && *q.Title() == "eng" &&
			q.MinSalary() != nil && *q.MinSalary() == 100000 &&
			q.HasEquity()
	})).Return([]queries.FindJobsQueryResponse{}, nil).Once()

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs?title=eng&minSalary=100000&hasEquity=true", "", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[]}`, rec.Body.String())
	fixture.findJobs.AssertExpectations(t)
}

func TestListJobs_HasEquityRequiresLiteralTrue(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.findJobs.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindJobsQuery) bool {
		return !q.HasEquity()
	})).Return([]queries.FindJobsQueryResponse{}, nil).Once()

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs?hasEquity=TRUE", "", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	fixture.findJobs.AssertExpectations(t)
}

func TestListJobs_NonNumericMinSalary_Returns400(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs?minSalary=lots", "", "")

	// Assert
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.findJobs.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetJob_NonNumericID_Returns404(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs/not-a-number", "", "")

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
	fixture.getJob.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetJob_UnknownID_Returns404(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.getJob.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetJobQuery")).
		Return(queries.GetJobQueryResponse{}, errs.NewObjectNotFoundError("jobId", int64(424242))).Once()

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs/424242", "", "")

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
	_, status := decodeError(t, rec)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetJob_EmbedsCompany(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	description := "Anvils and rockets"
	fixture.getJob.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetJobQuery")).
		Return(queries.GetJobQueryResponse{
			ID:    7,
			Title: "Engineer",
			Company: queries.CompanyResponse{
				Handle:      "acme",
				Name:        "Acme Inc",
				Description: &description,
			},
		}, nil).Once()

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs/7", "", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Job struct {
			ID      int64 `json:"id"`
			Company struct {
				Handle string `json:"handle"`
				Name   string `json:"name"`
			} `json:"company"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(7), envelope.Job.ID)
	assert.Equal(t, "acme", envelope.Job.Company.Handle)
	assert.Equal(t, "Acme Inc", envelope.Job.Company.Name)
}

func TestUpdateJob_CoercesSalaryToInteger(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	salary := int64(180000)
	updated, err := job.RestoreJob(42, "Senior Engineer", &salary, nil, "acme")
	require.NoError(t, err)

	fixture.editJob.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.EditJobCommand) bool {
		value, ok := cmd.Fields()["salary"].(int64)
		return ok && value == 180000 && cmd.ID() == 42
	})).Return(updated, nil).Once()

	body := `{"title":"Senior Engineer","salary":180000}`

	// Act
	rec := fixture.request(t, http.MethodPatch, "/jobs/42", body, fixture.adminToken(t))

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	fixture.editJob.AssertExpectations(t)
}

func TestDeleteJob_AsAdmin_ReturnsDeletedID(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.remove.On("Handle", mock.Anything, mock.AnythingOfType("commands.RemoveJobCommand")).
		Return(nil).Once()

	// Act
	rec := fixture.request(t, http.MethodDelete, "/jobs/42", "", fixture.adminToken(t))

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":"42"}`, rec.Body.String())
	fixture.remove.AssertExpectations(t)
}

func TestDeleteJob_UnknownID_Returns404(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.remove.On("Handle", mock.Anything, mock.AnythingOfType("commands.RemoveJobCommand")).
		Return(errs.NewObjectNotFoundError("jobId", int64(424242))).Once()

	// Act
	rec := fixture.request(t, http.MethodDelete, "/jobs/424242", "", fixture.adminToken(t))

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
	fixture.remove.AssertExpectations(t)
}

func TestErrorResponder_UnclassifiedError_Returns500(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)
	fixture.findJobs.On("Handle", mock.Anything, mock.AnythingOfType("queries.FindJobsQuery")).
		Return(nil, assert.AnError).Once()

	// Act
	rec := fixture.request(t, http.MethodGet, "/jobs", "", "")

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	_, status := decodeError(t, rec)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestHealth_Returns200(t *testing.T) {
	// Arrange
	fixture := newServerFixture(t)

	// Act
	rec := fixture.request(t, http.MethodGet, "/health", "", "")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
}
