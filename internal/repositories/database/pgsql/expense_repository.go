package pgsql

import (
	"context"
	"encoding/json"
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

const expenseColumns = `expense_id, amount, currency, description, category_id, date, tags, receipt_url, location, notes, is_recurring, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	tagsJSON, err := json.Marshal(modelExpense.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode expense tags: %w", err)
	}

	query := `
        INSERT INTO expenses (` + expenseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err = r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount,
		modelExpense.Currency,
		modelExpense.Description,
		modelExpense.CategoryID,
		modelExpense.Date,
		tagsJSON,
		modelExpense.ReceiptURL,
		modelExpense.Location,
		modelExpense.Notes,
		modelExpense.IsRecurring,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(*modelExpense)
	return &domainExpense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + expenseColumns + ` FROM expenses`)

	conditions := []string{}
	args := []any{}

	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		conditions = append(conditions, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date < $%d", len(args)))
	}
	if len(filter.Tags) > 0 {
		tagsJSON, err := json.Marshal(filter.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tag filter: %w", err)
		}
		args = append(args, tagsJSON)
		conditions = append(conditions, fmt.Sprintf("tags @> $%d::jsonb", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(description ILIKE $%d OR notes ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY date DESC, created_at DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
		}
	}
	sb.WriteString(";")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.Expense{}
	for rows.Next() {
		modelExpense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, *modelExpense)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) FindTags(ctx context.Context, query string, limit int) ([]string, error) {
	sql := `
        SELECT DISTINCT tag
        FROM expenses, jsonb_array_elements_text(tags) AS tag
        WHERE tag ILIKE '%' || $1 || '%'
        ORDER BY tag ASC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", rows.Err())
	}
	return tags, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)
	tagsJSON, err := json.Marshal(modelExpense.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode expense tags: %w", err)
	}

	query := `
        UPDATE expenses
        SET amount = $1, currency = $2, description = $3, category_id = $4, date = $5,
            tags = $6, receipt_url = $7, location = $8, notes = $9, is_recurring = $10,
            last_updated_at = $11, last_updated_by = $12
        WHERE expense_id = $13;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelExpense.Amount,
		modelExpense.Currency,
		modelExpense.Description,
		modelExpense.CategoryID,
		modelExpense.Date,
		tagsJSON,
		modelExpense.ReceiptURL,
		modelExpense.Location,
		modelExpense.Notes,
		modelExpense.IsRecurring,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
		modelExpense.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteExpense removes the expense and clears the expense reference on its
// audit entries. Both statements run in one transaction so a failure leaves
// the history attached.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE expense_history SET expense_id = NULL WHERE expense_id = $1;`, expenseID); err != nil {
			return fmt.Errorf("failed to detach history for expense %s: %w", expenseID, err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
		if err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
		}
		return nil
	})
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var modelExpense models.Expense
	var tagsJSON []byte
	err := row.Scan(
		&modelExpense.ExpenseID,
		&modelExpense.Amount,
		&modelExpense.Currency,
		&modelExpense.Description,
		&modelExpense.CategoryID,
		&modelExpense.Date,
		&tagsJSON,
		&modelExpense.ReceiptURL,
		&modelExpense.Location,
		&modelExpense.Notes,
		&modelExpense.IsRecurring,
		&modelExpense.CreatedAt,
		&modelExpense.CreatedBy,
		&modelExpense.LastUpdatedAt,
		&modelExpense.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &modelExpense.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode expense tags: %w", err)
		}
	}
	return &modelExpense, nil
}
