// Package spreadsheet reads customer rows from .xlsx workbooks and CSV exports.
//
// Both formats use the first row as a header. Columns are matched by name,
// ignoring case, spaces, underscores and dashes, so "Customer Name",
// "customer_name" and "CustomerName" are equivalent. Unknown columns are
// ignored and missing ones leave the corresponding field nil.
package spreadsheet

import (
	"strconv"
	"strings"

	"customer_notification_planner/internal/domain/customer"
)

type column int

const (
	colUnknown column = iota
	colCustomerName
	colMonthDay
	colSunday
	colMonday
	colTuesday
	colWednesday
	colThursday
	colFriday
	colSaturday
	colEveryDay
	colNever
)

var columnsByKey = map[string]column{
	"customername": colCustomerName,
	"monthday":     colMonthDay,
	"sunday":       colSunday,
	"monday":       colMonday,
	"tuesday":      colTuesday,
	"wednesday":    colWednesday,
	"thursday":     colThursday,
	"friday":       colFriday,
	"saturday":     colSaturday,
	"everyday":     colEveryDay,
	"never":        colNever,
}

var keyReplacer = strings.NewReplacer(" ", "", "_", "", "-", "")

func headerKey(h string) string {
	return keyReplacer.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// layout maps header cells to known columns by position.
type layout []column

func newLayout(header []string) layout {
	l := make(layout, len(header))
	for i, h := range header {
		l[i] = columnsByKey[headerKey(h)]
	}
	return l
}

// rowFrom builds a raw row from one line of cells. Cells beyond the header and
// empty cells are treated as absent.
func (l layout) rowFrom(cells []string) customer.Row {
	var row customer.Row
	for i, col := range l {
		if i >= len(cells) || cells[i] == "" {
			continue
		}
		v := cells[i]
		switch col {
		case colCustomerName:
			row.CustomerName = &v
		case colMonthDay:
			row.MonthDay = parseNumber(v)
		case colSunday:
			row.Sunday = &v
		case colMonday:
			row.Monday = &v
		case colTuesday:
			row.Tuesday = &v
		case colWednesday:
			row.Wednesday = &v
		case colThursday:
			row.Thursday = &v
		case colFriday:
			row.Friday = &v
		case colSaturday:
			row.Saturday = &v
		case colEveryDay:
			row.EveryDay = &v
		case colNever:
			row.Never = &v
		}
	}
	return row
}

func parseNumber(v string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &n
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
