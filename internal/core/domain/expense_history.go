package domain

import (
	"encoding/json"
	"time"
)

// HistoryAction is the kind of expense mutation an audit row records.
type HistoryAction string

const (
	HistoryCreate HistoryAction = "create"
	HistoryUpdate HistoryAction = "update"
	HistoryDelete HistoryAction = "delete"
)

// ExpenseHistory is one audit log entry for an expense mutation.
// ExpenseID is nil once the underlying expense has been deleted; the
// snapshots remain.
type ExpenseHistory struct {
	HistoryID   string          `json:"historyID"`
	ExpenseID   *string         `json:"expenseID,omitempty"`
	Action      HistoryAction   `json:"action"`
	UserID      *string         `json:"userID,omitempty"`
	Username    string          `json:"username"`
	Description string          `json:"description"`
	OldData     json.RawMessage `json:"oldData,omitempty"`
	NewData     json.RawMessage `json:"newData,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
