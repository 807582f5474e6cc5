package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// payeeService implements the PayeeService interface
type payeeService struct {
	client *Client
}

// List retrieves all payees in a budget
func (s *payeeService) List(ctx context.Context, budgetID string) ([]*Payee, error) {
	var result struct {
		Payees          []*Payee `json:"payees"`
		ServerKnowledge int64    `json:"server_knowledge"`
	}

	path := fmt.Sprintf("/budgets/%s/payees", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payees")
	}

	return result.Payees, nil
}
