package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"customer_notification_planner/internal/app"
	"customer_notification_planner/internal/domain/customer"
	"customer_notification_planner/internal/infra/config"
	"customer_notification_planner/internal/infra/database"
	"customer_notification_planner/internal/infra/logger"
	"customer_notification_planner/internal/infra/output"
	"customer_notification_planner/internal/infra/spreadsheet"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const rootLong = `Reads the customer list and prints, for each of the 90 days starting at
start-date, the customers who asked to be notified on that day.

  planner                         show this help
  planner 2024-01-01              print the schedule to the console
  planner 2024-01-01 report.csv   write the schedule to a CSV file

Customers come from the spreadsheet at SPREADSHEET_PATH (xlsx or csv) or from
the customers table when CUSTOMER_SOURCE=postgres.`

// sourceFlags are the input selection flags shared by every command.
type sourceFlags struct {
	kind    string
	input   string
	sheet   string
	noColor bool
}

type runner struct {
	cfg   *config.AppConfig
	flags sourceFlags
	now   func() time.Time
}

// NewRootCmd builds the command tree for cfg.
func NewRootCmd(cfg *config.AppConfig) *cobra.Command {
	r := &runner{
		cfg: cfg,
		flags: sourceFlags{
			kind:  cfg.CustomerSource,
			input: cfg.SpreadsheetPath,
			sheet: cfg.SpreadsheetSheet,
		},
		now: time.Now,
	}

	root := &cobra.Command{
		Use:           "planner [start-date] [output-file]",
		Short:         "Plan which customers to notify on each of the next 90 days",
		Long:          rootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.runReport,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&r.flags.kind, "source", r.flags.kind, "customer source: xlsx, csv or postgres")
	pf.StringVar(&r.flags.input, "input", r.flags.input, "path of the customer spreadsheet")
	pf.StringVar(&r.flags.sheet, "sheet", r.flags.sheet, "worksheet name (default: first sheet)")
	pf.BoolVar(&r.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(r.newDigestCmd())
	root.AddCommand(r.newNotifyCmd())

	return root
}

// Execute loads the configuration and runs the CLI. Problems are reported as text;
// the process always exits normally.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		output.Error(os.Stderr, color.SupportColor(), "Configuration error: %v", err)
		return
	}
	logger.Init(cfg)

	if err := NewRootCmd(cfg).Execute(); err != nil {
		output.Error(os.Stderr, color.SupportColor(), "%v", err)
	}
}

func (r *runner) colored() bool {
	return !r.flags.noColor && color.SupportColor()
}

func (r *runner) warn(cmd *cobra.Command, format string, args ...any) {
	output.Warn(cmd.ErrOrStderr(), r.colored(), "WARNING: "+format, args...)
}

func (r *runner) fail(cmd *cobra.Command, format string, args ...any) {
	output.Error(cmd.ErrOrStderr(), r.colored(), "ERROR: "+format, args...)
}

func (r *runner) runReport(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return cmd.Help()
	case 1, 2:
	default:
		r.warn(cmd, "expected a start date and an optional output file, got %d arguments", len(args))
		return nil
	}

	start, err := ParseDate(args[0])
	if err != nil {
		r.warn(cmd, "could not parse %q as a start date", args[0])
		return nil
	}

	ctx := cmd.Context()
	src, closeSource, err := r.openSource(ctx)
	if err != nil {
		r.fail(cmd, "%v", err)
		return nil
	}
	defer closeSource()

	var w app.ScheduleWriter = output.NewConsoleWriter(cmd.OutOrStdout(), r.colored())
	if len(args) == 2 {
		w = output.NewCSVFileWriter(args[1])
	}

	svc := app.NewReportService(src, app.NewProjector(), logger.For("report"))
	if err := svc.Run(ctx, start, w); err != nil {
		r.fail(cmd, "%v", err)
		return nil
	}

	if len(args) == 2 {
		fmt.Fprintf(cmd.OutOrStdout(), "Schedule written to %s\n", args[1])
	}
	return nil
}

// openSource returns the configured customer source and a function releasing it.
func (r *runner) openSource(ctx context.Context) (customer.Source, func(), error) {
	noop := func() {}

	switch r.flags.kind {
	case config.SourcePostgres:
		if err := r.cfg.ValidateDatabase(); err != nil {
			return nil, noop, err
		}
		db, err := database.NewPostgresConnection(ctx, r.cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return database.NewPostgresCustomerRepository(db), func() { db.Close() }, nil
	case config.SourceCSV:
		return spreadsheet.NewCSVSource(r.flags.input), noop, nil
	case config.SourceXLSX:
		src, err := spreadsheet.Open(r.flags.input, r.flags.sheet)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown customer source %q (want xlsx, csv or postgres)", r.flags.kind)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "planner %s (commit=%s, built=%s)\n", Version, CommitSHA, BuildDate)
}
