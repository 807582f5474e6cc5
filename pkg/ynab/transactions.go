package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// List retrieves transactions, optionally narrowed by filters. The endpoint
// is selected by the first ID filter present (account, then category, then
// payee); since_date is passed through as a query parameter.
func (s *transactionService) List(ctx context.Context, budgetID string, filters *TransactionFilters) ([]*Transaction, error) {
	if filters == nil {
		filters = &TransactionFilters{}
	}

	budget := url.PathEscape(budgetID)
	var path string
	switch {
	case filters.AccountID != "":
		path = fmt.Sprintf("/budgets/%s/accounts/%s/transactions", budget, url.PathEscape(filters.AccountID))
	case filters.CategoryID != "":
		path = fmt.Sprintf("/budgets/%s/categories/%s/transactions", budget, url.PathEscape(filters.CategoryID))
	case filters.PayeeID != "":
		path = fmt.Sprintf("/budgets/%s/payees/%s/transactions", budget, url.PathEscape(filters.PayeeID))
	default:
		path = fmt.Sprintf("/budgets/%s/transactions", budget)
	}

	query := url.Values{}
	if filters.SinceDate != "" {
		query.Set("since_date", filters.SinceDate)
	}

	var result struct {
		Transactions    []*Transaction `json:"transactions"`
		ServerKnowledge int64          `json:"server_knowledge"`
	}

	if err := s.client.do(ctx, "GET", path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	return result.Transactions, nil
}

// Get retrieves a single transaction by ID
func (s *transactionService) Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error) {
	var result struct {
		Transaction *Transaction `json:"transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/%s", url.PathEscape(budgetID), url.PathEscape(transactionID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	if result.Transaction == nil {
		return nil, ErrNotFound
	}

	return result.Transaction, nil
}

// Create creates a new transaction
func (s *transactionService) Create(ctx context.Context, budgetID string, params *SaveTransactionParams) (*Transaction, error) {
	body := map[string]interface{}{
		"transaction": params,
	}

	var result struct {
		Transaction        *Transaction `json:"transaction"`
		TransactionIDs     []string     `json:"transaction_ids"`
		DuplicateImportIDs []string     `json:"duplicate_import_ids"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "POST", path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	if result.Transaction == nil {
		return nil, errors.New("no transaction returned from creation")
	}

	return result.Transaction, nil
}

// Update updates an existing transaction
func (s *transactionService) Update(ctx context.Context, budgetID, transactionID string, params *SaveTransactionParams) (*Transaction, error) {
	body := map[string]interface{}{
		"transaction": params,
	}

	var result struct {
		Transaction *Transaction `json:"transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/%s", url.PathEscape(budgetID), url.PathEscape(transactionID))
	if err := s.client.do(ctx, "PUT", path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	if result.Transaction == nil {
		return nil, errors.New("no transaction returned from update")
	}

	return result.Transaction, nil
}
