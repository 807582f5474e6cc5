package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// monthService implements the MonthService interface
type monthService struct {
	client *Client
}

// Get retrieves a single budget month
func (s *monthService) Get(ctx context.Context, budgetID, month string) (*Month, error) {
	var result struct {
		Month *Month `json:"month"`
	}

	path := fmt.Sprintf("/budgets/%s/months/%s", url.PathEscape(budgetID), url.PathEscape(month))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get month")
	}

	if result.Month == nil {
		return nil, ErrNotFound
	}

	return result.Month, nil
}
