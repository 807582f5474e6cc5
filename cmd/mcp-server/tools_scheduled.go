package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// GetScheduledTransactions tool - lists recurring transactions
type GetScheduledTransactionsInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetScheduledTransactionsOutput struct {
	ScheduledTransactions []ScheduledTransactionEntry `json:"scheduled_transactions" jsonschema:"List of scheduled transactions"`
	Count                 int                         `json:"count" jsonschema:"Number of scheduled transactions"`
}

func (t *ynabTools) GetScheduledTransactions(ctx context.Context, req *mcp.CallToolRequest, input GetScheduledTransactionsInput) (*mcp.CallToolResult, GetScheduledTransactionsOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetScheduledTransactionsOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetScheduledTransactionsOutput{}, err
	}

	scheduled, err := t.client.Scheduled.List(ctx, input.BudgetID)
	if err != nil {
		return nil, GetScheduledTransactionsOutput{}, toolError(err)
	}

	entries := make([]ScheduledTransactionEntry, 0, len(scheduled))
	for _, s := range scheduled {
		entries = append(entries, scheduledEntry(s))
	}

	if format == formatMarkdown {
		return textResult(renderScheduled(entries)), GetScheduledTransactionsOutput{}, nil
	}

	return nil, GetScheduledTransactionsOutput{ScheduledTransactions: entries, Count: len(entries)}, nil
}

// CreateScheduledTransaction tool
type CreateScheduledTransactionInput struct {
	BudgetID         string   `json:"budget_id" jsonschema:"The budget ID"`
	AccountID        string   `json:"account_id" jsonschema:"The account the transaction belongs to"`
	Date             string   `json:"date" jsonschema:"First occurrence date (YYYY-MM-DD), must be in the future"`
	Frequency        string   `json:"frequency" jsonschema:"Recurrence frequency (e.g. monthly, weekly, yearly)"`
	AmountMilliunits *int64   `json:"amount_milliunits,omitempty" jsonschema:"RECOMMENDED. Amount in milliunits (negative = outflow). Mutually exclusive with amount_dollars."`
	AmountDollars    *float64 `json:"amount_dollars,omitempty" jsonschema:"Amount in dollars (negative = outflow). Mutually exclusive with amount_milliunits; use amount_milliunits for precision."`
	PayeeID          string   `json:"payee_id,omitempty" jsonschema:"Existing payee ID"`
	PayeeName        string   `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID       string   `json:"category_id,omitempty" jsonschema:"Category ID"`
	Memo             string   `json:"memo,omitempty" jsonschema:"Memo, at most 200 characters"`
	FlagColor        string   `json:"flag_color,omitempty" jsonschema:"Flag color (red, orange, yellow, green, blue, purple)"`
}

type CreateScheduledTransactionOutput struct {
	Success              bool                      `json:"success" jsonschema:"Whether the create succeeded"`
	ScheduledTransaction ScheduledTransactionEntry `json:"scheduled_transaction" jsonschema:"The scheduled transaction as stored by the server"`
}

func (t *ynabTools) CreateScheduledTransaction(ctx context.Context, req *mcp.CallToolRequest, input CreateScheduledTransactionInput) (*mcp.CallToolResult, CreateScheduledTransactionOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}
	if err := requireField("account_id", input.AccountID); err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}
	if err := requireDate("date", input.Date); err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}
	if err := requireFrequency(input.Frequency); err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}
	amount, err := resolveAmount(input.AmountMilliunits, input.AmountDollars, true)
	if err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}
	if err := optionalMemo(input.Memo); err != nil {
		return nil, CreateScheduledTransactionOutput{}, err
	}

	params := &ynab.SaveScheduledTransactionParams{
		AccountID:  input.AccountID,
		Date:       input.Date,
		Frequency:  input.Frequency,
		Amount:     amount,
		PayeeID:    optionalString(input.PayeeID),
		PayeeName:  optionalString(input.PayeeName),
		CategoryID: optionalString(input.CategoryID),
		Memo:       optionalString(input.Memo),
		FlagColor:  optionalString(input.FlagColor),
	}

	scheduled, err := t.client.Scheduled.Create(ctx, input.BudgetID, params)
	if err != nil {
		return nil, CreateScheduledTransactionOutput{}, toolError(err)
	}

	return nil, CreateScheduledTransactionOutput{Success: true, ScheduledTransaction: scheduledEntry(scheduled)}, nil
}
