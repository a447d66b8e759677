package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/kernel"
	"cafe/internal/core/domain/model/order"
	"cafe/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// DefaultDailyReportSchedule runs the report once a day at midnight.
const DefaultDailyReportSchedule = "0 0 0 * * *"

// SystemLogin is the manager account the report reads history as.
const SystemLogin = "system"

type windowHistoryReader interface {
	Handle(ctx context.Context, query queries.GetWindowHistoryQuery) ([]queries.HistoryEntry, error)
}

// DailyReport summarizes the item rows touched in the trailing day.
type DailyReport struct {
	From     time.Time
	To       time.Time
	Orders   int
	Items    int
	ByStatus map[order.Status]int
}

// DailyReportJob logs how many items of the last 24 hours are in each status.
type DailyReportJob struct {
	reader   windowHistoryReader
	schedule string
	session  user.Session
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewDailyReportJob creates the report job. An empty schedule means
// DefaultDailyReportSchedule; schedules use the six-field cron format.
func NewDailyReportJob(reader windowHistoryReader, schedule string, logger *slog.Logger) (*DailyReportJob, error) {
	if schedule == "" {
		schedule = DefaultDailyReportSchedule
	}

	login, err := kernel.NewLogin(SystemLogin)
	if err != nil {
		return nil, err
	}
	session, err := user.NewSession(login, user.Manager)
	if err != nil {
		return nil, err
	}

	return &DailyReportJob{
		reader:   reader,
		schedule: schedule,
		session:  session,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_report_job"),
		now:      time.Now,
	}, nil
}

// Start schedules the report.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the daily report job and waits for a running report to end.
func (j *DailyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

// Run builds and logs one report for the day ending now.
func (j *DailyReportJob) Run(ctx context.Context) (DailyReport, error) {
	now := j.now().UTC()
	query, err := queries.NewGetWindowHistoryQuery(j.session, now.Add(-queries.DefaultHistoryWindow), now, now)
	if err != nil {
		return DailyReport{}, err
	}

	entries, err := j.reader.Handle(ctx, query)
	if err != nil {
		return DailyReport{}, err
	}

	report := DailyReport{
		From:     query.From(),
		To:       query.To(),
		Items:    len(entries),
		ByStatus: make(map[order.Status]int),
	}
	orders := make(map[order.ID]struct{})
	for _, entry := range entries {
		orders[entry.OrderID] = struct{}{}
		report.ByStatus[entry.Status]++
	}
	report.Orders = len(orders)

	j.logger.InfoContext(ctx, "Daily report",
		"from", report.From,
		"to", report.To,
		"orders", report.Orders,
		"items", report.Items,
		"not_started", report.ByStatus[order.NotStarted],
		"started", report.ByStatus[order.Started],
		"finished", report.ByStatus[order.Finished],
	)
	return report, nil
}
