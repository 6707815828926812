package customer

import (
	"database/sql"
	"time"
)

// Row is one raw customer line as read from a spreadsheet, CSV export or database table.
// A nil field means the cell was absent or empty.
type Row struct {
	CustomerName *string
	MonthDay     *float64
	Sunday       *string
	Monday       *string
	Tuesday      *string
	Wednesday    *string
	Thursday     *string
	Friday       *string
	Saturday     *string
	EveryDay     *string
	Never        *string
}

// WeekdayFlag returns the raw flag for the given day of the week.
func (r Row) WeekdayFlag(d time.Weekday) *string {
	switch d {
	case time.Sunday:
		return r.Sunday
	case time.Monday:
		return r.Monday
	case time.Tuesday:
		return r.Tuesday
	case time.Wednesday:
		return r.Wednesday
	case time.Thursday:
		return r.Thursday
	case time.Friday:
		return r.Friday
	case time.Saturday:
		return r.Saturday
	}
	return nil
}

// Record is a normalized customer. Records are built once per input row and never mutated.
type Record struct {
	Name       sql.NullString // Invalid when the row had no usable name
	Preference *Preference    // nil when no preference was recognized
}

// Notifiable reports whether the record can ever appear in a schedule.
func (r Record) Notifiable() bool {
	return r.Name.Valid && r.Preference != nil && r.Preference.Kind != KindNever
}

// DueOn reports whether the customer should be notified on date.
func (r Record) DueOn(date time.Time) bool {
	return r.Notifiable() && r.Preference.Matches(date)
}
