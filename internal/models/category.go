package models

// Category represents an expense category row in the database.
type Category struct {
	CategoryID string  `db:"category_id"`
	Name       string  `db:"name"`
	Icon       *string `db:"icon"`
	Color      string  `db:"color"`
	IsDefault  bool    `db:"is_default"`
	AuditFields
}
