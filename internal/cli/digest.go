package cli

import (
	"fmt"

	"customer_notification_planner/internal/app"
	domainTelegram "customer_notification_planner/internal/domain/telegram"
	"customer_notification_planner/internal/infra/logger"
	"customer_notification_planner/internal/infra/telegram"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"
)

func (r *runner) newDigestCmd() *cobra.Command {
	var dryRun bool

	c := &cobra.Command{
		Use:   "digest [date]",
		Short: "Send the list of customers due on a day (default today) to the manager chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := r.now()
			if len(args) == 1 {
				d, err := ParseDate(args[0])
				if err != nil {
					r.warn(cmd, "could not parse %q as a date", args[0])
					return nil
				}
				day = d
			}

			var client domainTelegram.Client
			if !dryRun {
				if err := r.cfg.ValidateNotifier(); err != nil {
					r.fail(cmd, "%v", err)
					return nil
				}
				bot, err := telebot.NewBot(telebot.Settings{Token: r.cfg.TelegramToken, Offline: true})
				if err != nil {
					r.fail(cmd, "could not create Telegram bot: %v", err)
					return nil
				}
				client = telegram.NewTelebotAdapter(bot)
			}

			src, closeSource, err := r.openSource(cmd.Context())
			if err != nil {
				r.fail(cmd, "%v", err)
				return nil
			}
			defer closeSource()

			svc := app.NewDigestServiceImpl(src, app.NewProjector(), client, logger.For("digest"), r.cfg.ManagerChatID)

			if dryRun {
				msg, err := svc.Preview(cmd.Context(), day)
				if err != nil {
					r.fail(cmd, "%v", err)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			}

			if err := svc.SendDailyDigest(cmd.Context(), day); err != nil {
				r.fail(cmd, "%v", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Digest for %s sent.\n", app.FormatDate(day))
			return nil
		},
	}
	c.Flags().BoolVar(&dryRun, "dry-run", false, "print the digest instead of sending it")
	return c
}
