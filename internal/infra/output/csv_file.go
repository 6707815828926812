package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"customer_notification_planner/internal/app"
)

// CSVHeader is the first line of every report file.
const CSVHeader = "Dates,CustomerNames"

// CSVFileWriter writes the schedule as CSV to a file, replacing any existing content.
// Each line is the quoted date followed by every customer name in its own quoted field.
type CSVFileWriter struct {
	path string
}

func NewCSVFileWriter(path string) *CSVFileWriter {
	return &CSVFileWriter{path: path}
}

func (w *CSVFileWriter) Write(days []app.DaySchedule) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", w.path, cerr)
		}
	}()

	if err := WriteCSV(f, days); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}

// WriteCSV renders days to out in the report file format.
func WriteCSV(out io.Writer, days []app.DaySchedule) error {
	bw := bufio.NewWriter(out)
	bw.WriteString(CSVHeader)
	bw.WriteString("\n")

	for _, d := range days {
		quoted := make([]string, len(d.Customers))
		for i, name := range d.Customers {
			quoted[i] = quote(name)
		}
		bw.WriteString(quote(d.Label()))
		bw.WriteString(",")
		bw.WriteString(strings.Join(quoted, ","))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// quote wraps v in double quotes, doubling embedded quotes.
func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
