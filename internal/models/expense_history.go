package models

import (
	"encoding/json"
	"time"
)

// ExpenseHistory represents one audit log row for an expense mutation.
// ExpenseID is nil once the underlying expense has been deleted.
type ExpenseHistory struct {
	HistoryID   string          `db:"history_id"`
	ExpenseID   *string         `db:"expense_id"`
	Action      string          `db:"action"`
	UserID      *string         `db:"user_id"`
	Username    string          `db:"username"`
	Description string          `db:"description"`
	OldData     json.RawMessage `db:"old_data"`
	NewData     json.RawMessage `db:"new_data"`
	CreatedAt   time.Time       `db:"created_at"`
}
