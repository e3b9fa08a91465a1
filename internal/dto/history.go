package dto

import (
	"encoding/json"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// ListHistoryParams are the query parameters for listing audit entries.
// NextToken is an opaque cursor returned by a previous page.
type ListHistoryParams struct {
	Action    *string
	Username  *string
	Limit     int
	NextToken string
}

// HistoryEntryResponse is the API representation of one audit entry.
type HistoryEntryResponse struct {
	HistoryID   string          `json:"historyID"`
	ExpenseID   *string         `json:"expenseID,omitempty"`
	Action      string          `json:"action"`
	Username    string          `json:"username"`
	Description string          `json:"description"`
	OldData     json.RawMessage `json:"oldData,omitempty"`
	NewData     json.RawMessage `json:"newData,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListHistoryResponse is one page of the audit log.
type ListHistoryResponse struct {
	Entries   []HistoryEntryResponse `json:"entries"`
	NextToken string                 `json:"nextToken,omitempty"`
}

// ToHistoryEntryResponse converts a domain ExpenseHistory to its API representation.
func ToHistoryEntryResponse(h *domain.ExpenseHistory) HistoryEntryResponse {
	return HistoryEntryResponse{
		HistoryID:   h.HistoryID,
		ExpenseID:   h.ExpenseID,
		Action:      string(h.Action),
		Username:    h.Username,
		Description: h.Description,
		OldData:     h.OldData,
		NewData:     h.NewData,
		CreatedAt:   h.CreatedAt,
	}
}
