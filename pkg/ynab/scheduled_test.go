package ynab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduledService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"scheduled_transactions": [
			{
				"id": "sched-1",
				"date_first": "2024-01-01",
				"date_next": "2024-04-01",
				"frequency": "monthly",
				"amount": -1200000,
				"payee_name": "Landlord",
				"account_id": "acc-1"
			}
		]
	}`

	mockTransport.On("Do",
		mock.Anything, "GET", "/budgets/budget-1/scheduled_transactions", mock.Anything, nil, mock.Anything,
	).Return(mockResponse, nil)

	scheduled, err := client.Scheduled.List(context.Background(), "budget-1")
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "monthly", scheduled[0].Frequency)
	assert.Equal(t, "2024-04-01", scheduled[0].DateNext.String())
	assert.Equal(t, int64(-1200000), scheduled[0].Amount)

	mockTransport.AssertExpectations(t)
}

func TestScheduledService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	amount := int64(-99000)
	params := &SaveScheduledTransactionParams{
		AccountID: "acc-1",
		Date:      "2024-05-01",
		Frequency: "monthly",
		Amount:    &amount,
	}

	mockResponse := `{
		"scheduled_transaction": {
			"id": "sched-new",
			"date_first": "2024-05-01",
			"date_next": "2024-05-01",
			"frequency": "monthly",
			"amount": -99000,
			"account_id": "acc-1"
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		"POST",
		"/budgets/budget-1/scheduled_transactions",
		mock.Anything,
		mock.MatchedBy(func(body map[string]interface{}) bool {
			p, ok := body["scheduled_transaction"].(*SaveScheduledTransactionParams)
			return ok && p.Frequency == "monthly" && *p.Amount == -99000
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	scheduled, err := client.Scheduled.Create(context.Background(), "budget-1", params)
	require.NoError(t, err)
	assert.Equal(t, "sched-new", scheduled.ID)

	mockTransport.AssertExpectations(t)
}
