// internal/app/projector.go
package app

import (
	"time"

	"customer_notification_planner/internal/domain/customer"
)

// ReportWindowDays is the number of consecutive days covered by a report.
const ReportWindowDays = 90

// DateLayout renders dates as e.g. "Mon 01-January-2024". Console and CSV consumers rely on this shape.
const DateLayout = "Mon 02-January-2006"

// DaySchedule holds the customers due for notification on one calendar day.
type DaySchedule struct {
	Date      time.Time
	Customers []string // In the order the customers appear in the source
}

// Label is the formatted date of the day.
func (d DaySchedule) Label() string {
	return FormatDate(d.Date)
}

// FormatDate formats a date using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Projector maps customer preferences onto a calendar window.
type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

// Project returns one entry for each of the ReportWindowDays days starting at start.
func (p *Projector) Project(start time.Time, records []customer.Record) []DaySchedule {
	return p.ProjectDays(start, ReportWindowDays, records)
}

// ProjectDays returns one entry per day for days consecutive days starting at start.
// The time of day of start is ignored.
func (p *Projector) ProjectDays(start time.Time, days int, records []customer.Record) []DaySchedule {
	if days <= 0 {
		return nil
	}
	first := truncateToDate(start)

	schedule := make([]DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		schedule = append(schedule, DaySchedule{
			Date:      day,
			Customers: dueOn(day, records),
		})
	}
	return schedule
}

func dueOn(day time.Time, records []customer.Record) []string {
	names := []string{}
	for _, rec := range records {
		if rec.DueOn(day) {
			names = append(names, rec.Name.String)
		}
	}
	return names
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
