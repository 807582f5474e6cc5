package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves all budgets
func (s *budgetService) List(ctx context.Context, includeAccounts bool) ([]*BudgetSummary, error) {
	query := url.Values{}
	if includeAccounts {
		query.Set("include_accounts", "true")
	}

	var result struct {
		Budgets       []*BudgetSummary `json:"budgets"`
		DefaultBudget *BudgetSummary   `json:"default_budget"`
	}

	if err := s.client.do(ctx, "GET", "/budgets", query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return result.Budgets, nil
}

// Get retrieves a single budget by ID
func (s *budgetService) Get(ctx context.Context, budgetID string) (*BudgetDetail, error) {
	var result struct {
		Budget          *BudgetDetail `json:"budget"`
		ServerKnowledge int64         `json:"server_knowledge"`
	}

	path := fmt.Sprintf("/budgets/%s", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budget")
	}

	if result.Budget == nil {
		return nil, ErrNotFound
	}

	return result.Budget, nil
}
