package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.CurrencyTotal, error) {
	query := `
        SELECT currency, COALESCE(SUM(amount), 0), COUNT(*)
        FROM expenses
        WHERE date >= $1 AND date < $2
    `
	args := []any{from, to}
	if len(categoryIDs) > 0 {
		args = append(args, categoryIDs)
		query += fmt.Sprintf(" AND category_id = ANY($%d)", len(args))
	}
	query += ` GROUP BY currency;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CurrencyTotal{}
	for rows.Next() {
		var t domain.CurrencyTotal
		if err := rows.Scan(&t.Currency, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan currency total row: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating currency total rows: %w", rows.Err())
	}
	return totals, nil
}

func (r *PgxReportingRepository) GetMonthlyCurrencyTotals(ctx context.Context, from, to time.Time, categoryIDs []string) ([]domain.MonthlyCurrencyTotal, error) {
	query := `
        SELECT EXTRACT(YEAR FROM date)::int AS year,
               EXTRACT(MONTH FROM date)::int AS month,
               currency, COALESCE(SUM(amount), 0), COUNT(*)
        FROM expenses
        WHERE date >= $1 AND date < $2
    `
	args := []any{from, to}
	if len(categoryIDs) > 0 {
		args = append(args, categoryIDs)
		query += fmt.Sprintf(" AND category_id = ANY($%d)", len(args))
	}
	query += `
        GROUP BY year, month, currency
        ORDER BY year ASC, month ASC;
    `

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.MonthlyCurrencyTotal{}
	for rows.Next() {
		var t domain.MonthlyCurrencyTotal
		if err := rows.Scan(&t.Year, &t.Month, &t.Currency, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", rows.Err())
	}
	return totals, nil
}

func (r *PgxReportingRepository) GetCategoryCurrencyTotals(ctx context.Context, from, to time.Time) ([]domain.CategoryCurrencyTotal, error) {
	query := `
        SELECT e.category_id, COALESCE(c.name, ''), e.currency, COALESCE(SUM(e.amount), 0), COUNT(*)
        FROM expenses e
        LEFT JOIN categories c ON c.category_id = e.category_id
        WHERE e.date >= $1 AND e.date < $2
        GROUP BY e.category_id, c.name, e.currency;
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryCurrencyTotal{}
	for rows.Next() {
		var t domain.CategoryCurrencyTotal
		if err := rows.Scan(&t.CategoryID, &t.CategoryName, &t.Currency, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		totals = append(totals, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", rows.Err())
	}
	return totals, nil
}
