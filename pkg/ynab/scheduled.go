package ynab

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// scheduledService implements the ScheduledService interface
type scheduledService struct {
	client *Client
}

// List retrieves all scheduled transactions in a budget
func (s *scheduledService) List(ctx context.Context, budgetID string) ([]*ScheduledTransaction, error) {
	var result struct {
		ScheduledTransactions []*ScheduledTransaction `json:"scheduled_transactions"`
		ServerKnowledge       int64                   `json:"server_knowledge"`
	}

	path := fmt.Sprintf("/budgets/%s/scheduled_transactions", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "GET", path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get scheduled transactions")
	}

	return result.ScheduledTransactions, nil
}

// Create creates a new scheduled transaction
func (s *scheduledService) Create(ctx context.Context, budgetID string, params *SaveScheduledTransactionParams) (*ScheduledTransaction, error) {
	body := map[string]interface{}{
		"scheduled_transaction": params,
	}

	var result struct {
		ScheduledTransaction *ScheduledTransaction `json:"scheduled_transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/scheduled_transactions", url.PathEscape(budgetID))
	if err := s.client.do(ctx, "POST", path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create scheduled transaction")
	}

	if result.ScheduledTransaction == nil {
		return nil, errors.New("no scheduled transaction returned from creation")
	}

	return result.ScheduledTransaction, nil
}
