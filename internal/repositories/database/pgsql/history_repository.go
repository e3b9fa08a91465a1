package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	"github.com/andridns/expense-tracker-backend/internal/models"
	"github.com/andridns/expense-tracker-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const historyColumns = `history_id, expense_id, action, user_id, username, description, old_data, new_data, created_at`

type PgxHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{db: db}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) SaveHistory(ctx context.Context, history domain.ExpenseHistory) error {
	m := mapping.ToModelExpenseHistory(history)
	query := `
        INSERT INTO expense_history (` + historyColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.HistoryID,
		m.ExpenseID,
		m.Action,
		m.UserID,
		m.Username,
		m.Description,
		m.OldData,
		m.NewData,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) FindHistory(ctx context.Context, filter portsrepo.HistoryFilter) ([]domain.ExpenseHistory, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + historyColumns + ` FROM expense_history`)

	conditions := []string{}
	args := []any{}
	if filter.Action != nil {
		args = append(args, string(*filter.Action))
		conditions = append(conditions, fmt.Sprintf("action = $%d", len(args)))
	}
	if filter.Username != nil {
		args = append(args, *filter.Username)
		conditions = append(conditions, fmt.Sprintf("username = $%d", len(args)))
	}
	if filter.CreatedBefore != nil {
		args = append(args, *filter.CreatedBefore)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	sb.WriteString(";")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.ExpenseHistory{}
	for rows.Next() {
		m, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseHistorySlice(modelEntries), nil
}

func (r *PgxHistoryRepository) FindHistoryUsernames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT username FROM expense_history ORDER BY username ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history usernames: %w", err)
	}
	defer rows.Close()

	usernames := []string{}
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan username row: %w", err)
		}
		usernames = append(usernames, username)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating username rows: %w", rows.Err())
	}
	return usernames, nil
}

func scanHistory(row pgx.Row) (*models.ExpenseHistory, error) {
	var m models.ExpenseHistory
	err := row.Scan(
		&m.HistoryID,
		&m.ExpenseID,
		&m.Action,
		&m.UserID,
		&m.Username,
		&m.Description,
		&m.OldData,
		&m.NewData,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
