package services

import (
	"context"
	"fmt"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/utils/pagination"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryReader
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// NewHistoryService creates a new history service.
func NewHistoryService(historyRepo portsrepo.HistoryReader) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) ListHistory(ctx context.Context, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	filter := portsrepo.HistoryFilter{
		Username: params.Username,
		// Fetch one extra row to know whether another page exists.
		Limit: limit + 1,
	}

	if params.Action != nil {
		action := domain.HistoryAction(*params.Action)
		switch action {
		case domain.HistoryCreate, domain.HistoryUpdate, domain.HistoryDelete:
			filter.Action = &action
		default:
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid history action %q", *params.Action))
		}
	}

	if params.NextToken != "" {
		before, err := pagination.DecodeDateBasedToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid pagination token")
		}
		filter.CreatedBefore = &before
	}

	entries, err := s.historyRepo.FindHistory(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense history")
		return nil, fmt.Errorf("failed to list expense history: %w", err)
	}

	nextToken := ""
	if len(entries) > limit {
		entries = entries[:limit]
		nextToken = pagination.EncodeDateBasedToken(entries[len(entries)-1].CreatedAt)
	}

	out := make([]dto.HistoryEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, dto.ToHistoryEntryResponse(&entries[i]))
	}

	return &dto.ListHistoryResponse{
		Entries:   out,
		NextToken: nextToken,
	}, nil
}

func (s *historyService) ListHistoryUsernames(ctx context.Context) ([]string, error) {
	usernames, err := s.historyRepo.FindHistoryUsernames(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list history usernames")
		return nil, fmt.Errorf("failed to list history usernames: %w", err)
	}
	return usernames, nil
}
