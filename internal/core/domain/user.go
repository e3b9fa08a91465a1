package domain

// User represents a user of the expense tracker.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	Email        *string `json:"email,omitempty"`
	PasswordHash string  `json:"-"`
	IsActive     bool    `json:"isActive"`
	AuditFields
}
