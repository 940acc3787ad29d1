package tasks

import (
	"fmt"
	"log/slog"

	"jobboard/internal/core/application/usecases/queries"
)

// TaskManager coordinates all scheduled tasks in the application.
type TaskManager struct {
	boardDigestTask *BoardDigestTask
}

// NewTaskManager creates a manager with all required tasks wired up.
func NewTaskManager(
	statsHandler queries.GetBoardStatsQueryHandler,
	digestSchedule string,
	logger *slog.Logger,
) *TaskManager {
	return &TaskManager{
		boardDigestTask: NewBoardDigestTask(statsHandler, digestSchedule, logger),
	}
}

// StartAll starts all scheduled tasks.
func (tm *TaskManager) StartAll() error {
	if err := tm.boardDigestTask.Start(); err != nil {
		return fmt.Errorf("failed to start board digest task: %w", err)
	}
	return nil
}

// StopAll stops all scheduled tasks gracefully.
func (tm *TaskManager) StopAll() {
	tm.boardDigestTask.Stop()
}
