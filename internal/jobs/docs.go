// Package jobs provides scheduled background tasks for the café.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// a seconds field) and log through log/slog.
//
// # Available Jobs
//
// DailyReportJob reads the item history of the trailing 24 hours as the
// "system" manager and logs the number of orders and items per status.
// It runs daily at midnight unless DAILY_REPORT_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(windowHistoryHandler, cfg.DailyReportSchedule, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed report is logged and the next run is attempted on schedule.
package jobs
