// internal/domain/customer/normalize.go
package customer

import (
	"database/sql"
	"math"
	"strings"
	"time"
)

// rule proposes a candidate preference for a row. Rules are applied in order and
// every applicable rule overwrites the result of the previous ones.
type rule struct {
	name      string
	candidate func(Row) (Preference, bool)
}

// precedence lists the rules from least to most dominant.
// Never comes last, so an opted-out row stays opted out whatever else it sets.
var precedence = []rule{
	{name: "MonthDay", candidate: monthDayCandidate},
	{name: "Weekdays", candidate: weekdaysCandidate},
	{name: "EveryDay", candidate: flagCandidate(func(r Row) *string { return r.EveryDay }, EveryDay())},
	{name: "Never", candidate: flagCandidate(func(r Row) *string { return r.Never }, Never())},
}

// PrecedenceRules returns the rule names in application order.
func PrecedenceRules() []string {
	names := make([]string, len(precedence))
	for i, r := range precedence {
		names[i] = r.name
	}
	return names
}

// Normalize converts a raw row into a Record. It never fails: a malformed field
// simply contributes nothing.
func Normalize(row Row) Record {
	rec := Record{Name: normalizeName(row.CustomerName)}
	for _, r := range precedence {
		if p, ok := r.candidate(row); ok {
			rec.Preference = &p
		}
	}
	return rec
}

// NormalizeAll normalizes rows keeping their order.
func NormalizeAll(rows []Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Normalize(row))
	}
	return records
}

func normalizeName(name *string) sql.NullString {
	if name == nil || strings.TrimSpace(*name) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *name, Valid: true}
}

func monthDayCandidate(row Row) (Preference, bool) {
	if row.MonthDay == nil {
		return Preference{}, false
	}
	v := *row.MonthDay
	if !(v > 0) || math.IsInf(v, 1) {
		return Preference{}, false
	}
	return MonthDay(int(math.Floor(v))), true
}

func weekdaysCandidate(row Row) (Preference, bool) {
	var set WeekdaySet
	for d := time.Sunday; d <= time.Saturday; d++ {
		if isYes(row.WeekdayFlag(d)) {
			set = set.With(d)
		}
	}
	if set.IsEmpty() {
		return Preference{}, false
	}
	return Weekdays(set), true
}

func flagCandidate(field func(Row) *string, p Preference) func(Row) (Preference, bool) {
	return func(row Row) (Preference, bool) {
		return p, isYes(field(row))
	}
}

// isYes treats any value starting with "Y" or "y" as an affirmative flag ("Y", "yes", "Yep").
func isYes(v *string) bool {
	return v != nil && strings.HasPrefix(strings.ToUpper(*v), "Y")
}
