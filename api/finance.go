package api

import (
	"context"
	"net/http"
)

// FinanceService covers invoices and expenses.
type FinanceService struct {
	core *core
}

// Invoices lists the workspace's invoices.
func (s *FinanceService) Invoices(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	if err := s.core.do(ctx, http.MethodGet, "/finance/invoices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInvoice creates a draft invoice. The server assigns the number
// and computes the total from the items.
func (s *FinanceService) CreateInvoice(ctx context.Context, in InvoiceInput) (*Invoice, error) {
	var out Invoice
	if err := s.core.do(ctx, http.MethodPost, "/finance/invoices", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Expenses lists expenses. Non-management callers see only their own
// submissions.
func (s *FinanceService) Expenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	if err := s.core.do(ctx, http.MethodGet, "/finance/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitExpense submits an expense, which starts pending.
func (s *FinanceService) SubmitExpense(ctx context.Context, in ExpenseInput) (*Expense, error) {
	var out Expense
	if err := s.core.do(ctx, http.MethodPost, "/finance/expenses", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
