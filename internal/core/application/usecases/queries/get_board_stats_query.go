package queries

import (
	"context"
	"errors"

	"jobboard/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetBoardStatsQueryIsNotConstructed = errors.New(
	"GetBoardStatsQuery must be created via NewGetBoardStatsQuery",
)

// GetBoardStatsQuery retrieves posting and company counts for the periodic
// board digest.
type GetBoardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoardStatsQuery creates a parameterless stats query.
func NewGetBoardStatsQuery() GetBoardStatsQuery {
	return GetBoardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBoardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardStatsQueryIsNotConstructed)
}

// GetBoardStatsQueryResponse carries the board-wide counters.
type GetBoardStatsQueryResponse struct {
	Jobs            int64
	JobsWithEquity  int64
	Companies       int64
	RegisteredUsers int64
}

// GetBoardStatsQueryHandler computes the counters in one round trip.
type GetBoardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBoardStatsQueryHandler creates a handler for the stats query.
func NewGetBoardStatsQueryHandler(db *gorm.DB) GetBoardStatsQueryHandler {
	return GetBoardStatsQueryHandler{db: db}
}

// Handle executes the stats query.
func (h GetBoardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBoardStatsQuery,
) (GetBoardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBoardStatsQueryResponse{}, err
	}

	var response GetBoardStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE equity > 0),
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM users)
	`).Row()

	err := row.Scan(
		&response.Jobs,
		&response.JobsWithEquity,
		&response.Companies,
		&response.RegisteredUsers,
	)
	if err != nil {
		return GetBoardStatsQueryResponse{}, err
	}

	return response, nil
}
