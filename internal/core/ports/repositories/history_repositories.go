package repositories

import (
	"context"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// HistoryFilter narrows an audit log listing.
type HistoryFilter struct {
	Action        *domain.HistoryAction
	Username      *string
	CreatedBefore *time.Time // cursor for keyset pagination over created_at desc
	Limit         int
}

// HistoryReader defines read operations for the expense audit log
type HistoryReader interface {
	// FindHistory retrieves audit entries matching the filter,
	// ordered by created_at descending.
	FindHistory(ctx context.Context, filter HistoryFilter) ([]domain.ExpenseHistory, error)

	// FindHistoryUsernames retrieves the distinct usernames present in the log.
	FindHistoryUsernames(ctx context.Context) ([]string, error)
}

// HistoryWriter defines write operations for the expense audit log
type HistoryWriter interface {
	// SaveHistory appends an audit entry.
	SaveHistory(ctx context.Context, history domain.ExpenseHistory) error
}

// HistoryRepositoryFacade combines all audit-log repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
