package spreadsheet

import (
	"context"
	"fmt"

	"customer_notification_planner/internal/domain/customer"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = fmt.Errorf("workbook has no sheets")

// XLSXSource reads customer rows from an Excel workbook. The file is reopened on
// every call so edits made while a daemon is running are picked up.
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource returns a source for the named sheet; an empty sheet selects the first one.
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

func (s *XLSXSource) Rows(ctx context.Context) ([]customer.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheets
		}
		sheet = sheets[0]
	}

	// Raw values: a display format would round a fractional MonthDay or turn it into a date.
	cells, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rowsFromCells(cells), nil
}

func rowsFromCells(cells [][]string) []customer.Row {
	if len(cells) == 0 {
		return nil
	}
	l := newLayout(cells[0])

	rows := make([]customer.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		if isBlank(line) {
			continue
		}
		rows = append(rows, l.rowFrom(line))
	}
	return rows
}
