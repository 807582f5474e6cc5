package ynab

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"accounts": [
			{
				"id": "acc-1",
				"name": "Checking",
				"type": "checking",
				"on_budget": true,
				"balance": 1500000,
				"cleared_balance": 1400000,
				"uncleared_balance": 100000
			},
			{
				"id": "acc-2",
				"name": "Old Savings",
				"type": "savings",
				"closed": true,
				"balance": 0
			}
		]
	}`

	mockTransport.On("Do",
		mock.Anything, "GET", "/budgets/budget-1/accounts", mock.Anything, nil, mock.Anything,
	).Return(mockResponse, nil)

	accounts, err := client.Accounts.List(context.Background(), "budget-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, int64(1500000), accounts[0].Balance)
	assert.Equal(t, int64(1400000), accounts[0].ClearedBalance)
	assert.True(t, accounts[1].Closed)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"account": {
			"id": "acc-1",
			"name": "Checking",
			"type": "checking",
			"on_budget": true,
			"balance": 1500000
		}
	}`

	mockTransport.On("Do",
		mock.Anything, "GET", "/budgets/budget-1/accounts/acc-1", mock.Anything, nil, mock.Anything,
	).Return(mockResponse, nil)

	account, err := client.Accounts.Get(context.Background(), "budget-1", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)
	assert.Equal(t, int64(1500000), account.Balance)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_List_TransportError(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything, "GET", "/budgets/budget-1/accounts", mock.Anything, nil, mock.Anything,
	).Return(nil, ErrUnauthorized)

	_, err := client.Accounts.List(context.Background(), "budget-1")
	require.Error(t, err)

	// The sentinel survives the wrapping added by the service layer
	assert.True(t, errors.Is(err, ErrUnauthorized))

	mockTransport.AssertExpectations(t)
}
