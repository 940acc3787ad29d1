// Package tasks provides scheduled background work for the job board.
//
// Tasks are cron-based, built on github.com/robfig/cron/v3, and are managed
// through TaskManager which offers a unified start/stop interface:
//
//	taskManager := tasks.NewTaskManager(statsHandler, schedule, logger)
//	if err := taskManager.StartAll(); err != nil {
//		log.Fatal("Failed to start tasks:", err)
//	}
//	defer taskManager.StopAll()
//
// Currently one task exists: BoardDigestTask, which periodically logs board
// counters (postings, postings offering equity, companies, registered users)
// so operators can watch growth without querying the database by hand.
package tasks
