package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetCategories tool - lists categories grouped by category group
type GetCategoriesInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' (default) or 'json'"`
}

type GetCategoriesOutput struct {
	CategoryGroups []CategoryGroupEntry `json:"category_groups" jsonschema:"Category groups with their categories"`
	Count          int                  `json:"count" jsonschema:"Number of category groups"`
}

func (t *ynabTools) GetCategories(ctx context.Context, req *mcp.CallToolRequest, input GetCategoriesInput) (*mcp.CallToolResult, GetCategoriesOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetCategoriesOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatMarkdown)
	if err != nil {
		return nil, GetCategoriesOutput{}, err
	}

	groups, err := t.client.Categories.List(ctx, input.BudgetID)
	if err != nil {
		return nil, GetCategoriesOutput{}, toolError(err)
	}

	entries := make([]CategoryGroupEntry, 0, len(groups))
	for _, g := range groups {
		group := CategoryGroupEntry{
			ID:         g.ID,
			Name:       g.Name,
			Hidden:     g.Hidden,
			Categories: make([]CategoryEntry, 0, len(g.Categories)),
		}
		for _, c := range g.Categories {
			group.Categories = append(group.Categories, categoryEntry(c))
		}
		entries = append(entries, group)
	}

	if format == formatMarkdown {
		return textResult(renderCategories(entries)), GetCategoriesOutput{}, nil
	}

	return nil, GetCategoriesOutput{CategoryGroups: entries, Count: len(entries)}, nil
}

// GetCategory tool - single category detail including goal info
type GetCategoryInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	CategoryID     string `json:"category_id" jsonschema:"The category ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' or 'json' (default)"`
}

type GetCategoryOutput struct {
	Category CategoryEntry `json:"category" jsonschema:"The category"`
}

func (t *ynabTools) GetCategory(ctx context.Context, req *mcp.CallToolRequest, input GetCategoryInput) (*mcp.CallToolResult, GetCategoryOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetCategoryOutput{}, err
	}
	if err := requireField("category_id", input.CategoryID); err != nil {
		return nil, GetCategoryOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatJSON)
	if err != nil {
		return nil, GetCategoryOutput{}, err
	}

	category, err := t.client.Categories.Get(ctx, input.BudgetID, input.CategoryID)
	if err != nil {
		return nil, GetCategoryOutput{}, toolError(err)
	}

	entry := categoryEntry(category)

	if format == formatMarkdown {
		return textResult(renderCategory(entry)), GetCategoryOutput{}, nil
	}

	return nil, GetCategoryOutput{Category: entry}, nil
}

// UpdateCategoryBudget tool - sets the budgeted amount for a month
type UpdateCategoryBudgetInput struct {
	BudgetID         string   `json:"budget_id" jsonschema:"The budget ID"`
	CategoryID       string   `json:"category_id" jsonschema:"The category ID"`
	Month            string   `json:"month" jsonschema:"The budget month in ISO format (YYYY-MM-DD, use first of month)"`
	AmountMilliunits *int64   `json:"amount_milliunits,omitempty" jsonschema:"RECOMMENDED. Budgeted amount in milliunits (1000 = $1.00). Mutually exclusive with amount_dollars."`
	AmountDollars    *float64 `json:"amount_dollars,omitempty" jsonschema:"Budgeted amount in dollars. Mutually exclusive with amount_milliunits; use amount_milliunits for precision."`
}

type UpdateCategoryBudgetOutput struct {
	Success  bool          `json:"success" jsonschema:"Whether the update succeeded"`
	Category CategoryEntry `json:"category" jsonschema:"The category as stored by the server"`
}

func (t *ynabTools) UpdateCategoryBudget(ctx context.Context, req *mcp.CallToolRequest, input UpdateCategoryBudgetInput) (*mcp.CallToolResult, UpdateCategoryBudgetOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, UpdateCategoryBudgetOutput{}, err
	}
	if err := requireField("category_id", input.CategoryID); err != nil {
		return nil, UpdateCategoryBudgetOutput{}, err
	}
	if err := requireDate("month", input.Month); err != nil {
		return nil, UpdateCategoryBudgetOutput{}, err
	}
	amount, err := resolveAmount(input.AmountMilliunits, input.AmountDollars, true)
	if err != nil {
		return nil, UpdateCategoryBudgetOutput{}, err
	}

	category, err := t.client.Categories.UpdateMonthBudgeted(ctx, input.BudgetID, input.Month, input.CategoryID, *amount)
	if err != nil {
		return nil, UpdateCategoryBudgetOutput{}, toolError(err)
	}

	return nil, UpdateCategoryBudgetOutput{Success: true, Category: categoryEntry(category)}, nil
}
