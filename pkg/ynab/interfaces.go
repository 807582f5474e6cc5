package ynab

import "context"

// BudgetService handles budget-level operations
type BudgetService interface {
	// List retrieves all budgets the token has access to
	List(ctx context.Context, includeAccounts bool) ([]*BudgetSummary, error)

	// Get retrieves a single budget with its related entities.
	// budgetID may be "last-used" for the most recently accessed budget.
	Get(ctx context.Context, budgetID string) (*BudgetDetail, error)
}

// AccountService handles account operations within a budget
type AccountService interface {
	// List retrieves all accounts in a budget
	List(ctx context.Context, budgetID string) ([]*Account, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, budgetID, accountID string) (*Account, error)
}

// CategoryService handles category operations within a budget
type CategoryService interface {
	// List retrieves all category groups with their categories
	List(ctx context.Context, budgetID string) ([]*CategoryGroup, error)

	// Get retrieves a single category including goal info
	Get(ctx context.Context, budgetID, categoryID string) (*Category, error)

	// UpdateMonthBudgeted sets the budgeted amount (milliunits) for a
	// category in the given month (YYYY-MM-DD, first of month). Returns the
	// server's canonical category.
	UpdateMonthBudgeted(ctx context.Context, budgetID, month, categoryID string, budgeted int64) (*Category, error)
}

// PayeeService handles payee operations within a budget
type PayeeService interface {
	// List retrieves all payees in a budget
	List(ctx context.Context, budgetID string) ([]*Payee, error)
}

// TransactionService handles transaction operations within a budget
type TransactionService interface {
	// List retrieves transactions, optionally narrowed by filters
	List(ctx context.Context, budgetID string, filters *TransactionFilters) ([]*Transaction, error)

	// Get retrieves a single transaction
	Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error)

	// Create creates a transaction and returns the server's canonical copy
	Create(ctx context.Context, budgetID string, params *SaveTransactionParams) (*Transaction, error)

	// Update updates a transaction and returns the server's canonical copy
	Update(ctx context.Context, budgetID, transactionID string, params *SaveTransactionParams) (*Transaction, error)
}

// MonthService handles budget month operations
type MonthService interface {
	// Get retrieves a single budget month (YYYY-MM-DD first of month, or
	// "current")
	Get(ctx context.Context, budgetID, month string) (*Month, error)
}

// ScheduledService handles scheduled (recurring) transactions
type ScheduledService interface {
	// List retrieves all scheduled transactions in a budget
	List(ctx context.Context, budgetID string) ([]*ScheduledTransaction, error)

	// Create creates a scheduled transaction and returns the server's
	// canonical copy
	Create(ctx context.Context, budgetID string, params *SaveScheduledTransactionParams) (*ScheduledTransaction, error)
}

// UserService exposes the authenticated user
type UserService interface {
	// Get retrieves the user the token belongs to
	Get(ctx context.Context) (*User, error)
}
