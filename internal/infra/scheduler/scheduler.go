package scheduler

import (
	"context"
	"fmt"
	"time"

	"customer_notification_planner/internal/app" // For DigestService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const digestJobTimeout = 2 * time.Minute

// DigestScheduler sends the daily customer digest on a cron schedule.
type DigestScheduler struct {
	cronEngine     *cron.Cron
	digestService  app.DigestService
	logger         *logrus.Entry
	cronSpecDigest string
	now            func() time.Time
}

func NewDigestScheduler(
	digestService app.DigestService,
	logger *logrus.Entry,
	cronSpecDigest string, // e.g., "0 8 * * *" (8:00 AM daily)
) *DigestScheduler {
	return &DigestScheduler{
		cronEngine:     cron.New(cron.WithLocation(time.Local)), // Dates are local calendar dates
		digestService:  digestService,
		logger:         logger,
		cronSpecDigest: cronSpecDigest,
		now:            time.Now,
	}
}

// Start registers the digest job and starts the cron engine.
func (s *DigestScheduler) Start() error {
	s.logger.Info("Starting digest scheduler...")

	if _, err := s.cronEngine.AddFunc(s.cronSpecDigest, s.runDigest); err != nil {
		return fmt.Errorf("could not add daily digest cron job %q: %w", s.cronSpecDigest, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecDigest).Info("Digest scheduler started.")
	return nil
}

func (s *DigestScheduler) runDigest() {
	today := s.now()
	logCtx := s.logger.WithField("day", app.FormatDate(today))
	logCtx.Info("Cron job triggered for daily digest.")

	ctx, cancel := context.WithTimeout(context.Background(), digestJobTimeout)
	defer cancel()

	if err := s.digestService.SendDailyDigest(ctx, today); err != nil {
		logCtx.WithError(err).Error("Daily digest failed")
		return
	}
	logCtx.Info("Daily digest completed.")
}

// Stop stops the engine and waits for a running job to finish.
func (s *DigestScheduler) Stop() {
	s.logger.Info("Stopping digest scheduler...")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Digest scheduler gracefully stopped.")
}
