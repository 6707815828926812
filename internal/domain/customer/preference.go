// internal/domain/customer/preference.go
package customer

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which recurrence rule a Preference carries.
type Kind int

const (
	KindMonthDay Kind = iota + 1 // Fixed day of the month, e.g. the 15th
	KindWeekdays                 // One or more days of the week
	KindEveryDay
	KindNever // Opted out; matches nothing
)

func (k Kind) String() string {
	switch k {
	case KindMonthDay:
		return "MONTH_DAY"
	case KindWeekdays:
		return "WEEKDAYS"
	case KindEveryDay:
		return "EVERY_DAY"
	case KindNever:
		return "NEVER"
	default:
		return "UNKNOWN"
	}
}

// WeekdaySet is a bitmask over time.Weekday (Sunday=0 ... Saturday=6).
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given days.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns a copy of the set that also contains d.
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	if d < time.Sunday || d > time.Saturday {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// IsEmpty reports whether no day is set.
func (s WeekdaySet) IsEmpty() bool { return s == 0 }

// Days lists the members in weekday index order.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String()[:3])
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Preference is the recurrence rule deciding on which calendar days a customer is notified.
// Only the payload field matching Kind is meaningful.
type Preference struct {
	Kind     Kind
	MonthDay int        // KindMonthDay only
	Weekdays WeekdaySet // KindWeekdays only
}

func MonthDay(n int) Preference { return Preference{Kind: KindMonthDay, MonthDay: n} }

func Weekdays(set WeekdaySet) Preference { return Preference{Kind: KindWeekdays, Weekdays: set} }

func EveryDay() Preference { return Preference{Kind: KindEveryDay} }

func Never() Preference { return Preference{Kind: KindNever} }

// Matches reports whether a customer with this preference should be notified on date.
func (p Preference) Matches(date time.Time) bool {
	switch p.Kind {
	case KindEveryDay:
		return true
	case KindWeekdays:
		return p.Weekdays.Has(date.Weekday())
	case KindMonthDay:
		return date.Day() == p.MonthDay
	default:
		return false
	}
}

func (p Preference) String() string {
	switch p.Kind {
	case KindMonthDay:
		return fmt.Sprintf("%s(%d)", p.Kind, p.MonthDay)
	case KindWeekdays:
		return fmt.Sprintf("%s%s", p.Kind, p.Weekdays)
	default:
		return p.Kind.String()
	}
}
