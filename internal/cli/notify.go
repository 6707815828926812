package cli

import (
	"os/signal"
	"syscall"
	"time"

	"customer_notification_planner/internal/app"
	"customer_notification_planner/internal/infra/logger"
	"customer_notification_planner/internal/infra/scheduler"
	"customer_notification_planner/internal/infra/telegram"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"
)

func (r *runner) newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Run the daily digest scheduler and answer /today and /tomorrow in Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.For("notify")

			if err := r.cfg.ValidateNotifier(); err != nil {
				r.fail(cmd, "%v", err)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			src, closeSource, err := r.openSource(ctx)
			if err != nil {
				r.fail(cmd, "%v", err)
				return nil
			}
			defer closeSource()

			bot, err := telebot.NewBot(telebot.Settings{
				Token:  r.cfg.TelegramToken,
				Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
				OnError: func(err error, c telebot.Context) {
					entry := log.WithError(err)
					if c != nil && c.Chat() != nil {
						entry = entry.WithField("chat_id", c.Chat().ID)
					}
					entry.Error("Telegram handler error")
				},
			})
			if err != nil {
				r.fail(cmd, "could not create Telegram bot: %v", err)
				return nil
			}

			svc := app.NewDigestServiceImpl(src, app.NewProjector(), telegram.NewTelebotAdapter(bot), logger.For("digest"), r.cfg.ManagerChatID)
			telegram.RegisterBotCommands(ctx, bot, telegram.NewCommandHandler(svc, r.cfg.ManagerChatID, logger.For("bot")))

			digestScheduler := scheduler.NewDigestScheduler(svc, logger.For("scheduler"), r.cfg.CronSpecDigest)
			if err := digestScheduler.Start(); err != nil {
				r.fail(cmd, "%v", err)
				return nil
			}

			// Start bot in a goroutine so it doesn't block graceful shutdown handling
			go bot.Start()
			log.Info("Notifier running. Press Ctrl+C to stop.")

			<-ctx.Done()

			log.Info("Shutting down notifier...")
			digestScheduler.Stop()
			bot.Stop()
			log.Info("Notifier shut down gracefully.")
			return nil
		},
	}
}
