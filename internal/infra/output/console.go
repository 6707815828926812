// Package output renders projected schedules to the console and to CSV files.
package output

import (
	"fmt"
	"io"
	"strings"

	"customer_notification_planner/internal/app"

	"github.com/gookit/color"
)

// ConsoleSeparator joins customer names on a console line.
const ConsoleSeparator = ", "

// ConsoleWriter prints one "<date> - <names>" line per day.
type ConsoleWriter struct {
	out     io.Writer
	colored bool
}

func NewConsoleWriter(out io.Writer, colored bool) *ConsoleWriter {
	return &ConsoleWriter{out: out, colored: colored}
}

func (w *ConsoleWriter) Write(days []app.DaySchedule) error {
	for _, d := range days {
		label := d.Label()
		if w.colored {
			label = color.Cyan.Sprint(label)
		}
		if _, err := fmt.Fprintf(w.out, "%s - %s\n", label, strings.Join(d.Customers, ConsoleSeparator)); err != nil {
			return fmt.Errorf("failed to write console line: %w", err)
		}
	}
	return nil
}

// Warn prints a warning line, in yellow when colored.
func Warn(out io.Writer, colored bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colored {
		msg = color.Warn.Sprint(msg)
	}
	fmt.Fprintln(out, msg)
}

// Error prints an error line, in red when colored.
func Error(out io.Writer, colored bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colored {
		msg = color.Error.Sprint(msg)
	}
	fmt.Fprintln(out, msg)
}
