package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetMonthBudget tool - one month's budget with category allocations
type GetMonthBudgetInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	Month          string `json:"month" jsonschema:"The budget month in ISO format (YYYY-MM-DD, use first of month), or 'current'"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetMonthBudgetOutput struct {
	Month MonthEntry `json:"month" jsonschema:"The budget month"`
}

func (t *ynabTools) GetMonthBudget(ctx context.Context, req *mcp.CallToolRequest, input GetMonthBudgetInput) (*mcp.CallToolResult, GetMonthBudgetOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetMonthBudgetOutput{}, err
	}
	// "current" is an alias the API resolves server side
	if input.Month != "current" {
		if err := requireDate("month", input.Month); err != nil {
			return nil, GetMonthBudgetOutput{}, err
		}
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetMonthBudgetOutput{}, err
	}

	month, err := t.client.Months.Get(ctx, input.BudgetID, input.Month)
	if err != nil {
		return nil, GetMonthBudgetOutput{}, toolError(err)
	}

	entry := monthEntry(month)

	if format == formatMarkdown {
		return textResult(renderMonth(entry)), GetMonthBudgetOutput{}, nil
	}

	return nil, GetMonthBudgetOutput{Month: entry}, nil
}
