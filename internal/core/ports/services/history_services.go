package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// HistorySvcFacade defines read operations over the expense audit log.
type HistorySvcFacade interface {
	// ListHistory retrieves one page of audit entries, newest first, with an
	// opaque cursor for the next page.
	ListHistory(ctx context.Context, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error)

	// ListHistoryUsernames retrieves the distinct usernames in the log.
	ListHistoryUsernames(ctx context.Context) ([]string, error)
}
