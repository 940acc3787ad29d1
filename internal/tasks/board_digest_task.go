package tasks

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"jobboard/internal/core/application/usecases/queries"
)

// DefaultDigestSchedule runs the digest at the top of every hour.
const DefaultDigestSchedule = "0 0 * * * *"

// BoardDigestTask periodically logs board counters: postings, postings
// offering equity, companies and registered users.
type BoardDigestTask struct {
	handler  queries.GetBoardStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardDigestTask creates the digest task. An empty schedule falls back to
// DefaultDigestSchedule. The schedule uses six-field cron syntax (with
// seconds).
func NewBoardDigestTask(handler queries.GetBoardStatsQueryHandler, schedule string, logger *slog.Logger) *BoardDigestTask {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}
	return &BoardDigestTask{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_digest_task"),
	}
}

// Start schedules the digest.
func (t *BoardDigestTask) Start() error {
	_, err := t.cron.AddFunc(t.schedule, func() {
		ctx := context.Background()

		stats, err := t.handler.Handle(ctx, queries.NewGetBoardStatsQuery())
		if err != nil {
			t.logger.ErrorContext(ctx, "Board digest failed", "error", err)
			return
		}

		t.logger.InfoContext(ctx, "Board digest",
			"jobs", stats.Jobs,
			"jobsWithEquity", stats.JobsWithEquity,
			"companies", stats.Companies,
			"registeredUsers", stats.RegisteredUsers,
		)
	})

	if err != nil {
		return err
	}

	t.cron.Start()
	t.logger.InfoContext(context.Background(), "Board digest task started", "schedule", t.schedule)
	return nil
}

// Stop stops the digest task.
func (t *BoardDigestTask) Stop() {
	t.cron.Stop()
	t.logger.InfoContext(context.Background(), "Board digest task stopped")
}
