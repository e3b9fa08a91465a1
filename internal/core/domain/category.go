package domain

// Category represents an expense category.
// Default categories are seeded at migration time and cannot be deleted.
type Category struct {
	CategoryID string  `json:"categoryID"`
	Name       string  `json:"name"`
	Icon       *string `json:"icon,omitempty"`
	Color      string  `json:"color"`
	IsDefault  bool    `json:"isDefault"`
	AuditFields
}
