// internal/app/digest_service.go
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"customer_notification_planner/internal/domain/customer"
	domainTelegram "customer_notification_planner/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// ErrNoRecipient is returned when a digest is sent without a target chat configured.
var ErrNoRecipient = fmt.Errorf("digest recipient chat is not configured")

// DigestService defines the daily notification digest operations.
type DigestService interface {
	// SendDailyDigest sends the list of customers due on day to the manager chat.
	SendDailyDigest(ctx context.Context, day time.Time) error
	// Preview renders the digest for day without sending it.
	Preview(ctx context.Context, day time.Time) (string, error)
}

// DigestServiceImpl implements DigestService on top of a customer source and a Telegram client.
type DigestServiceImpl struct {
	source         customer.Source
	projector      *Projector
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	managerChatID  int64
}

func NewDigestServiceImpl(
	src customer.Source,
	projector *Projector,
	tc domainTelegram.Client,
	logger *logrus.Entry,
	managerChatID int64,
) *DigestServiceImpl {
	return &DigestServiceImpl{
		source:         src,
		projector:      projector,
		telegramClient: tc,
		logger:         logger,
		managerChatID:  managerChatID,
	}
}

// SendDailyDigest loads the customers fresh on every call so edits to the spreadsheet are picked up.
func (s *DigestServiceImpl) SendDailyDigest(ctx context.Context, day time.Time) error {
	logCtx := s.logger.WithField("day", FormatDate(day))

	if s.managerChatID == 0 || s.telegramClient == nil {
		logCtx.Warn("Digest requested but no recipient is configured")
		return ErrNoRecipient
	}

	schedule, err := s.today(ctx, day)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build digest")
		return err
	}

	if err := s.telegramClient.SendMessage(s.managerChatID, RenderDigest(schedule)); err != nil {
		logCtx.WithError(err).Error("Failed to send digest")
		return fmt.Errorf("failed to send digest to chat %d: %w", s.managerChatID, err)
	}

	logCtx.WithField("customers", len(schedule.Customers)).Info("Digest sent")
	return nil
}

func (s *DigestServiceImpl) Preview(ctx context.Context, day time.Time) (string, error) {
	schedule, err := s.today(ctx, day)
	if err != nil {
		return "", err
	}
	return RenderDigest(schedule), nil
}

func (s *DigestServiceImpl) today(ctx context.Context, day time.Time) (DaySchedule, error) {
	records, err := customer.LoadRecords(ctx, s.source)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("failed to load customers: %w", err)
	}
	return s.projector.ProjectDays(day, 1, records)[0], nil
}

// RenderDigest formats one day's schedule as a chat message.
func RenderDigest(d DaySchedule) string {
	if len(d.Customers) == 0 {
		return fmt.Sprintf("No customers to notify on %s.", d.Label())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customers to notify on %s:", d.Label())
	for _, name := range d.Customers {
		b.WriteString("\n• ")
		b.WriteString(name)
	}
	return b.String()
}
