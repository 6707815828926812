package customer

import (
	"context"
)

// Source yields raw customer rows in their stored order.
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// LoadRecords reads every row from src and normalizes it, preserving order.
func LoadRecords(ctx context.Context, src Source) ([]Record, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return NormalizeAll(rows), nil
}
