package mapping

import (
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/models"
)

// ToModelExpenseHistory converts a domain ExpenseHistory to a model ExpenseHistory
func ToModelExpenseHistory(d domain.ExpenseHistory) models.ExpenseHistory {
	return models.ExpenseHistory{
		HistoryID:   d.HistoryID,
		ExpenseID:   d.ExpenseID,
		Action:      string(d.Action),
		UserID:      d.UserID,
		Username:    d.Username,
		Description: d.Description,
		OldData:     d.OldData,
		NewData:     d.NewData,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainExpenseHistory converts a model ExpenseHistory to a domain ExpenseHistory
func ToDomainExpenseHistory(m models.ExpenseHistory) domain.ExpenseHistory {
	return domain.ExpenseHistory{
		HistoryID:   m.HistoryID,
		ExpenseID:   m.ExpenseID,
		Action:      domain.HistoryAction(m.Action),
		UserID:      m.UserID,
		Username:    m.Username,
		Description: m.Description,
		OldData:     m.OldData,
		NewData:     m.NewData,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainExpenseHistorySlice converts a slice of model ExpenseHistory to domain ExpenseHistory
func ToDomainExpenseHistorySlice(ms []models.ExpenseHistory) []domain.ExpenseHistory {
	ds := make([]domain.ExpenseHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseHistory(m)
	}
	return ds
}
