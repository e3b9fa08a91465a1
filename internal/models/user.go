package models

// User represents a user row in the database.
type User struct {
	UserID       string  `db:"user_id"`
	Username     string  `db:"username"`
	Email        *string `db:"email"`
	PasswordHash string  `db:"password_hash"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}
