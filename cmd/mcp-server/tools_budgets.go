package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// GetBudgets tool - lists all budgets the token can access
type GetBudgetsInput struct {
	IncludeAccounts bool   `json:"include_accounts,omitempty" jsonschema:"Include account info in the response"`
	ResponseFormat  string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetBudgetsOutput struct {
	Budgets []BudgetEntry `json:"budgets" jsonschema:"List of budgets"`
	Count   int           `json:"count" jsonschema:"Number of budgets"`
}

func (t *ynabTools) GetBudgets(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetsInput) (*mcp.CallToolResult, GetBudgetsOutput, error) {
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetBudgetsOutput{}, err
	}

	budgets, err := t.client.Budgets.List(ctx, input.IncludeAccounts)
	if err != nil {
		return nil, GetBudgetsOutput{}, toolError(err)
	}

	entries := make([]BudgetEntry, 0, len(budgets))
	for _, b := range budgets {
		entries = append(entries, budgetEntry(b, input.IncludeAccounts))
	}

	if format == formatMarkdown {
		return textResult(renderBudgets(entries, input.IncludeAccounts)), GetBudgetsOutput{}, nil
	}

	return nil, GetBudgetsOutput{Budgets: entries, Count: len(entries)}, nil
}

// GetBudgetSummary tool - curated overview of a single budget
type GetBudgetSummaryInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID. Use 'last-used' for the most recently accessed budget."`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type CategoryGroupSummary struct {
	ID         string   `json:"id" jsonschema:"Category group ID"`
	Name       string   `json:"name" jsonschema:"Category group name"`
	Hidden     bool     `json:"hidden" jsonschema:"Whether the group is hidden"`
	Categories []string `json:"categories" jsonschema:"Category names in this group"`
}

type GetBudgetSummaryOutput struct {
	ID             string                 `json:"id" jsonschema:"Budget ID"`
	Name           string                 `json:"name" jsonschema:"Budget name"`
	LastModifiedOn string                 `json:"last_modified_on,omitempty" jsonschema:"Last modification timestamp"`
	CurrencyFormat *ynab.CurrencyFormat   `json:"currency_format,omitempty" jsonschema:"Budget currency settings"`
	Accounts       []AccountEntry         `json:"accounts" jsonschema:"Accounts in the budget"`
	CategoryGroups []CategoryGroupSummary `json:"category_groups" jsonschema:"Category groups with category names"`
}

func (t *ynabTools) GetBudgetSummary(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetSummaryInput) (*mcp.CallToolResult, GetBudgetSummaryOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetBudgetSummaryOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetBudgetSummaryOutput{}, err
	}

	budget, err := t.client.Budgets.Get(ctx, input.BudgetID)
	if err != nil {
		return nil, GetBudgetSummaryOutput{}, toolError(err)
	}

	// Group category names by their owning group
	categoriesByGroup := make(map[string][]string)
	for _, c := range budget.Categories {
		categoriesByGroup[c.CategoryGroupID] = append(categoriesByGroup[c.CategoryGroupID], c.Name)
	}

	summary := GetBudgetSummaryOutput{
		ID:             budget.ID,
		Name:           budget.Name,
		LastModifiedOn: budget.LastModifiedOn,
		CurrencyFormat: budget.CurrencyFormat,
	}

	for _, acc := range budget.Accounts {
		summary.Accounts = append(summary.Accounts, accountEntry(acc))
	}

	for _, cg := range budget.CategoryGroups {
		summary.CategoryGroups = append(summary.CategoryGroups, CategoryGroupSummary{
			ID:         cg.ID,
			Name:       cg.Name,
			Hidden:     cg.Hidden,
			Categories: categoriesByGroup[cg.ID],
		})
	}

	if format == formatMarkdown {
		return textResult(renderBudgetSummary(summary)), GetBudgetSummaryOutput{}, nil
	}

	return nil, summary, nil
}
