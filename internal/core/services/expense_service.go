package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultExpenseLimit = 100
	maxExpenseLimit     = 1000
	defaultTagLimit     = 20
)

type expenseService struct {
	BaseService
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	historyRepo     portsrepo.HistoryRepositoryFacade
	userReader      portsrepo.UserReader
	conversion      portssvc.ConversionSvcFacade
	defaultCurrency string
	dashboards      DashboardInvalidator
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// ExpenseServiceOption configures the expense service.
type ExpenseServiceOption func(*expenseService)

// WithExpenseDashboardInvalidator wires dashboard cache invalidation into
// expense mutations.
func WithExpenseDashboardInvalidator(inv DashboardInvalidator) ExpenseServiceOption {
	return func(s *expenseService) {
		s.dashboards = inv
	}
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	historyRepo portsrepo.HistoryRepositoryFacade,
	userReader portsrepo.UserReader,
	conversion portssvc.ConversionSvcFacade,
	defaultCurrency string,
	opts ...ExpenseServiceOption,
) portssvc.ExpenseSvcFacade {
	s := &expenseService{
		expenseRepo:     expenseRepo,
		historyRepo:     historyRepo,
		userReader:      userReader,
		conversion:      conversion,
		defaultCurrency: strings.ToUpper(defaultCurrency),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationError("expense amount must be positive")
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        req.Date,
		Tags:        tags,
		ReceiptURL:  req.ReceiptURL,
		Location:    req.Location,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.recordHistory(ctx, domain.HistoryCreate, creatorUserID, &expense.ExpenseID,
		fmt.Sprintf("Created expense %q", expense.Description), nil, &expense)
	s.invalidateDashboards()

	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultExpenseLimit
	}
	if limit > maxExpenseLimit {
		limit = maxExpenseLimit
	}

	filter := portsrepo.ExpenseFilter{
		CategoryIDs: params.CategoryIDs,
		StartDate:   params.StartDate,
		Tags:        params.Tags,
		Search:      params.Search,
	}
	if params.EndDate != nil {
		// The end date is inclusive, the repository bound is exclusive.
		end := inclusiveEnd(*params.EndDate)
		filter.EndDate = &end
	}

	boundedByAmount := params.MinAmount != nil || params.MaxAmount != nil
	if !boundedByAmount {
		filter.Limit = limit
		filter.Offset = params.Offset
	}

	expenses, err := s.expenseRepo.FindExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if !boundedByAmount {
		return expenses, nil
	}

	// Amount bounds compare against the amount converted into the default
	// currency, so filtering and paging happen after conversion.
	filtered := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		converted := s.conversion.Convert(ctx, e.Amount, e.Currency, s.defaultCurrency)
		if params.MinAmount != nil && converted.Amount.LessThan(*params.MinAmount) {
			continue
		}
		if params.MaxAmount != nil && converted.Amount.GreaterThan(*params.MaxAmount) {
			continue
		}
		filtered = append(filtered, e)
	}

	offset := params.Offset
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	before := *expense

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationError("expense amount must be positive")
		}
		expense.Amount = *req.Amount
	}
	if req.Currency != nil {
		expense.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.CategoryID != nil {
		expense.CategoryID = req.CategoryID
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Tags != nil {
		expense.Tags = req.Tags
	}
	if req.ReceiptURL != nil {
		expense.ReceiptURL = req.ReceiptURL
	}
	if req.Location != nil {
		expense.Location = req.Location
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}
	if req.IsRecurring != nil {
		expense.IsRecurring = *req.IsRecurring
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", "expense_id", expenseID)
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.recordHistory(ctx, domain.HistoryUpdate, updaterUserID, &expense.ExpenseID,
		fmt.Sprintf("Updated expense %q", expense.Description), &before, expense)
	s.invalidateDashboards()

	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return err
	}

	// The repository clears the expense reference on earlier audit entries
	// and removes the expense in one transaction; the snapshots survive.
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", "expense_id", expenseID)
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.recordHistory(ctx, domain.HistoryDelete, deleterUserID, nil,
		fmt.Sprintf("Deleted expense %q", expense.Description), expense, nil)
	s.invalidateDashboards()

	return nil
}

func (s *expenseService) SuggestTags(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultTagLimit
	}

	tags, err := s.expenseRepo.FindTags(ctx, query, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to find tags", "query", query)
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}

	// Prefix matches first, alphabetical within each group.
	lowered := strings.ToLower(query)
	prefix := make([]string, 0, len(tags))
	rest := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.HasPrefix(strings.ToLower(tag), lowered) {
			prefix = append(prefix, tag)
		} else {
			rest = append(rest, tag)
		}
	}
	return append(prefix, rest...), nil
}

func (s *expenseService) ExportExpensesCSV(ctx context.Context, params dto.ListExpensesParams, w io.Writer) error {
	if params.Limit <= 0 {
		params.Limit = maxExpenseLimit
	}
	expenses, err := s.ListExpenses(ctx, params)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	header := []string{"date", "description", "amount", "currency", "category_id", "tags", "location", "notes", "recurring"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range expenses {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Amount.String(),
			e.Currency,
			derefOrEmpty(e.CategoryID),
			strings.Join(e.Tags, ";"),
			derefOrEmpty(e.Location),
			derefOrEmpty(e.Notes),
			fmt.Sprintf("%t", e.IsRecurring),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// recordHistory appends an audit entry for a mutation. Failures are logged
// but never fail the mutation itself.
func (s *expenseService) recordHistory(ctx context.Context, action domain.HistoryAction, userID string, expenseID *string, description string, before, after *domain.Expense) {
	username := "unknown"
	if user, err := s.userReader.FindUserByID(ctx, userID); err == nil {
		username = user.Username
	}

	entry := domain.ExpenseHistory{
		HistoryID:   uuid.NewString(),
		ExpenseID:   expenseID,
		Action:      action,
		UserID:      &userID,
		Username:    username,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if before != nil {
		if data, err := json.Marshal(dto.ToExpenseResponse(before)); err == nil {
			entry.OldData = data
		}
	}
	if after != nil {
		if data, err := json.Marshal(dto.ToExpenseResponse(after)); err == nil {
			entry.NewData = data
		}
	}

	if err := s.historyRepo.SaveHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record expense history", "action", string(action))
	}
}

func (s *expenseService) invalidateDashboards() {
	if s.dashboards != nil {
		s.dashboards.InvalidateDashboard()
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
