package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyReportJob *DailyReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(reader windowHistoryReader, dailyReportSchedule string, logger *slog.Logger) (*JobManager, error) {
	dailyReportJob, err := NewDailyReportJob(reader, dailyReportSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily report job: %w", err)
	}
	return &JobManager{dailyReportJob: dailyReportJob}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyReportJob.Stop()
}
