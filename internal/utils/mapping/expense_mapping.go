package mapping

import (
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Description: d.Description,
		CategoryID:  d.CategoryID,
		Date:        d.Date,
		Tags:        d.Tags,
		ReceiptURL:  d.ReceiptURL,
		Location:    d.Location,
		Notes:       d.Notes,
		IsRecurring: d.IsRecurring,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		CategoryID:  m.CategoryID,
		Date:        m.Date,
		Tags:        tags,
		ReceiptURL:  m.ReceiptURL,
		Location:    m.Location,
		Notes:       m.Notes,
		IsRecurring: m.IsRecurring,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
