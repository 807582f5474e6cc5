package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetPayees tool - lists all payees in a budget
type GetPayeesInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetPayeesOutput struct {
	Payees []PayeeEntry `json:"payees" jsonschema:"List of payees"`
	Count  int          `json:"count" jsonschema:"Number of payees"`
}

func (t *ynabTools) GetPayees(ctx context.Context, req *mcp.CallToolRequest, input GetPayeesInput) (*mcp.CallToolResult, GetPayeesOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetPayeesOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetPayeesOutput{}, err
	}

	payees, err := t.client.Payees.List(ctx, input.BudgetID)
	if err != nil {
		return nil, GetPayeesOutput{}, toolError(err)
	}

	entries := make([]PayeeEntry, 0, len(payees))
	for _, p := range payees {
		entries = append(entries, payeeEntry(p))
	}

	if format == formatMarkdown {
		return textResult(renderPayees(entries)), GetPayeesOutput{}, nil
	}

	return nil, GetPayeesOutput{Payees: entries, Count: len(entries)}, nil
}
