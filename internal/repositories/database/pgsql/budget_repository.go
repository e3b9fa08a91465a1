package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	"github.com/andridns/expense-tracker-backend/internal/models"
	"github.com/andridns/expense-tracker-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, category_id, amount, currency, period, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	db *pgxpool.Pool
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{db: db}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
        INSERT INTO budgets (` + budgetColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.CategoryID,
		modelBudget.Amount,
		modelBudget.Currency,
		modelBudget.Period,
		modelBudget.StartDate,
		modelBudget.EndDate,
		modelBudget.CreatedAt,
		modelBudget.CreatedBy,
		modelBudget.LastUpdatedAt,
		modelBudget.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	modelBudget, err := scanBudget(r.db.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	domainBudget := mapping.ToDomainBudget(*modelBudget)
	return &domainBudget, nil
}

func (r *PgxBudgetRepository) FindBudgets(ctx context.Context, periodFilter *domain.BudgetPeriod, categoryID *string) ([]domain.Budget, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + budgetColumns + ` FROM budgets`)

	conditions := []string{}
	args := []any{}
	if periodFilter != nil {
		args = append(args, string(*periodFilter))
		conditions = append(conditions, fmt.Sprintf("period = $%d", len(args)))
	}
	if categoryID != nil {
		args = append(args, *categoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY start_date DESC;")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	modelBudgets := []models.Budget{}
	for rows.Next() {
		modelBudget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		modelBudgets = append(modelBudgets, *modelBudget)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}

	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)
	query := `
        UPDATE budgets
        SET category_id = $1, amount = $2, currency = $3, period = $4, start_date = $5, end_date = $6,
            last_updated_at = $7, last_updated_by = $8
        WHERE budget_id = $9;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelBudget.CategoryID,
		modelBudget.Amount,
		modelBudget.Currency,
		modelBudget.Period,
		modelBudget.StartDate,
		modelBudget.EndDate,
		modelBudget.LastUpdatedAt,
		modelBudget.LastUpdatedBy,
		modelBudget.BudgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var modelBudget models.Budget
	err := row.Scan(
		&modelBudget.BudgetID,
		&modelBudget.CategoryID,
		&modelBudget.Amount,
		&modelBudget.Currency,
		&modelBudget.Period,
		&modelBudget.StartDate,
		&modelBudget.EndDate,
		&modelBudget.CreatedAt,
		&modelBudget.CreatedBy,
		&modelBudget.LastUpdatedAt,
		&modelBudget.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &modelBudget, nil
}
