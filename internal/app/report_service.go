package app

import (
	"context"
	"fmt"
	"time"

	"customer_notification_planner/internal/domain/customer"

	"github.com/sirupsen/logrus"
)

// ScheduleWriter receives a projected schedule for display or serialization.
type ScheduleWriter interface {
	Write(days []DaySchedule) error
}

// ReportService builds the notification report for the report window.
type ReportService struct {
	source    customer.Source
	projector *Projector
	logger    *logrus.Entry
}

func NewReportService(src customer.Source, projector *Projector, logger *logrus.Entry) *ReportService {
	return &ReportService{
		source:    src,
		projector: projector,
		logger:    logger,
	}
}

// Build loads the customers and projects the report window starting at start.
func (s *ReportService) Build(ctx context.Context, start time.Time) ([]DaySchedule, error) {
	logCtx := s.logger.WithField("start_date", start.Format("2006-01-02"))

	records, err := customer.LoadRecords(ctx, s.source)
	if err != nil {
		logCtx.WithError(err).Error("Failed to load customer rows")
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	logCtx.WithField("records", len(records)).Debug("Customer rows normalized")

	days := s.projector.Project(start, records)
	logCtx.WithField("days", len(days)).Debug("Schedule projected")
	return days, nil
}

// Run builds the report and hands it to w.
func (s *ReportService) Run(ctx context.Context, start time.Time, w ScheduleWriter) error {
	days, err := s.Build(ctx, start)
	if err != nil {
		return err
	}
	if err := w.Write(days); err != nil {
		s.logger.WithError(err).Error("Failed to write schedule")
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	s.logger.Info("Schedule written")
	return nil
}
