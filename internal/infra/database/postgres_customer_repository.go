package database

import (
	"context"
	"database/sql"
	"fmt"

	"customer_notification_planner/internal/domain/customer"
)

const listCustomersQuery = `SELECT customer_name, month_day,
       monday, tuesday, wednesday, thursday, friday, saturday, sunday,
       every_day, never
FROM customers
ORDER BY id`

// PostgresCustomerRepository serves customer rows from the customers table, in id order.
// Expected columns: id, customer_name TEXT, month_day DOUBLE PRECISION, one TEXT
// column per weekday, every_day TEXT and never TEXT. NULL means "not set".
type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Rows(ctx context.Context) ([]customer.Row, error) {
	rows, err := r.db.QueryContext(ctx, listCustomersQuery)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	var result []customer.Row
	for rows.Next() {
		var (
			name, mon, tue, wed, thu, fri, sat, sun, every, never sql.NullString
			monthDay                                              sql.NullFloat64
		)
		if err := rows.Scan(&name, &monthDay, &mon, &tue, &wed, &thu, &fri, &sat, &sun, &every, &never); err != nil {
			return nil, fmt.Errorf("error scanning customer row: %w", err)
		}
		result = append(result, customer.Row{
			CustomerName: nullString(name),
			MonthDay:     nullFloat(monthDay),
			Monday:       nullString(mon),
			Tuesday:      nullString(tue),
			Wednesday:    nullString(wed),
			Thursday:     nullString(thu),
			Friday:       nullString(fri),
			Saturday:     nullString(sat),
			Sunday:       nullString(sun),
			EveryDay:     nullString(every),
			Never:        nullString(never),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return result, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
