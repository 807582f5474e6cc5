package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves all category groups with their categories
func (s *categoryService) List(ctx context.Context, budgetID string) ([]*CategoryGroup, error) {
	var result struct {
		CategoryGroups  []*CategoryGroup `json:"category_groups"`
		ServerKnowledge int64            `json:"server_knowledge"`
	}

	path := fmt.Sprintf("/budgets/%s/categories", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	return result.CategoryGroups, nil
}

// Get retrieves a single category by ID
func (s *categoryService) Get(ctx context.Context, budgetID, categoryID string) (*Category, error) {
	var result struct {
		Category *Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/categories/%s", url.PathEscape(budgetID), url.PathEscape(categoryID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	if result.Category == nil {
		return nil, ErrNotFound
	}

	return result.Category, nil
}

// UpdateMonthBudgeted sets a category's budgeted amount for a month
func (s *categoryService) UpdateMonthBudgeted(ctx context.Context, budgetID, month, categoryID string, budgeted int64) (*Category, error) {
	body := map[string]interface{}{
		"category": map[string]interface{}{
			"budgeted": budgeted,
		},
	}

	var result struct {
		Category *Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/months/%s/categories/%s",
		url.PathEscape(budgetID), url.PathEscape(month), url.PathEscape(categoryID))
	if err := s.client.do(ctx, "PATCH", path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update category budget")
	}

	if result.Category == nil {
		return nil, errors.New("no category returned from update")
	}

	return result.Category, nil
}
