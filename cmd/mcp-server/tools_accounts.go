package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetAccounts tool - lists all accounts in a budget
type GetAccountsInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetAccountsOutput struct {
	Accounts []AccountEntry `json:"accounts" jsonschema:"List of accounts"`
	Count    int            `json:"count" jsonschema:"Number of accounts"`
}

func (t *ynabTools) GetAccounts(ctx context.Context, req *mcp.CallToolRequest, input GetAccountsInput) (*mcp.CallToolResult, GetAccountsOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetAccountsOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetAccountsOutput{}, err
	}

	accounts, err := t.client.Accounts.List(ctx, input.BudgetID)
	if err != nil {
		return nil, GetAccountsOutput{}, toolError(err)
	}

	entries := make([]AccountEntry, 0, len(accounts))
	for _, acc := range accounts {
		entries = append(entries, accountEntry(acc))
	}

	if format == formatMarkdown {
		return textResult(renderAccounts(entries)), GetAccountsOutput{}, nil
	}

	return nil, GetAccountsOutput{Accounts: entries, Count: len(entries)}, nil
}

// GetAccount tool - single account detail
type GetAccountInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	AccountID      string `json:"account_id" jsonschema:"The account ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' or 'json' (default)"`
}

type GetAccountOutput struct {
	Account AccountEntry `json:"account" jsonschema:"The account"`
}

func (t *ynabTools) GetAccount(ctx context.Context, req *mcp.CallToolRequest, input GetAccountInput) (*mcp.CallToolResult, GetAccountOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetAccountOutput{}, err
	}
	if err := requireField("account_id", input.AccountID); err != nil {
		return nil, GetAccountOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatJSON)
	if err != nil {
		return nil, GetAccountOutput{}, err
	}

	account, err := t.client.Accounts.Get(ctx, input.BudgetID, input.AccountID)
	if err != nil {
		return nil, GetAccountOutput{}, toolError(err)
	}

	entry := accountEntry(account)

	if format == formatMarkdown {
		return textResult(renderAccount(entry)), GetAccountOutput{}, nil
	}

	return nil, GetAccountOutput{Account: entry}, nil
}
