package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"
	"github.com/spendwell/ynab-go/internal/money"
	"github.com/spendwell/ynab-go/internal/spool"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// Response formats accepted by the read tools
const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// ynabTools holds the YNAB client and spooler and implements all tool handlers
type ynabTools struct {
	client  *ynab.Client
	spooler *spool.Spooler
}

func registerTools(server *mcp.Server, client *ynab.Client, spooler *spool.Spooler) {
	tools := &ynabTools{client: client, spooler: spooler}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_budgets",
		Description: "List all budgets the user has access to. Returns budget names and IDs. Use the budget_id in other tools.",
	}, tools.GetBudgets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_budget_summary",
		Description: "Get a summary of a budget including accounts and category groups. Returns a curated overview, not the full budget export.",
	}, tools.GetBudgetSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_accounts",
		Description: "List all accounts in a budget with balances.",
	}, tools.GetAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_account",
		Description: "Get details for a single account.",
	}, tools.GetAccount)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_categories",
		Description: "List all categories in a budget grouped by category group.",
	}, tools.GetCategories)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_category",
		Description: "Get details for a single category including goal info.",
	}, tools.GetCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_update_category_budget",
		Description: "Update the budgeted amount for a category in a specific month.",
	}, tools.UpdateCategoryBudget)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_payees",
		Description: "List all payees in a budget.",
	}, tools.GetPayees)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_transactions",
		Description: "Get transactions from a budget with optional filters. Can return large amounts of data; defaults to file output to avoid clogging context. Use since_date and filters to limit results.",
	}, tools.GetTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_transaction",
		Description: "Get details for a single transaction.",
	}, tools.GetTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_create_transaction",
		Description: "Create a new transaction in YNAB.",
	}, tools.CreateTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_update_transaction",
		Description: "Update an existing transaction.",
	}, tools.UpdateTransaction)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_search_transactions",
		Description: "Search transactions by payee name or memo. Fetches transactions and filters locally; use since_date to limit scope.",
	}, tools.SearchTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_month_budget",
		Description: "Get budget details for a specific month including category allocations and activity.",
	}, tools.GetMonthBudget)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_get_scheduled_transactions",
		Description: "List all scheduled (recurring) transactions in a budget.",
	}, tools.GetScheduledTransactions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ynab_create_scheduled_transaction",
		Description: "Create a new scheduled (recurring) transaction.",
	}, tools.CreateScheduledTransaction)
}

// textResult wraps markdown output in an explicit tool result
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// toolError translates internal errors into the messages surfaced to the
// caller. Validation errors pass through untouched.
func toolError(err error) error {
	var validationErr *ynab.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}

	var writeErr *spool.WriteError
	if errors.As(err, &writeErr) {
		return fmt.Errorf("output write failed: %v", writeErr)
	}

	switch {
	case errors.Is(err, ynab.ErrUnauthorized):
		return errors.New("invalid API key: check the YNAB_API_KEY environment variable")
	case errors.Is(err, ynab.ErrForbidden):
		return errors.New("access forbidden: you don't have permission for this resource")
	case errors.Is(err, ynab.ErrNotFound):
		return errors.New("resource not found: check the ID is correct")
	case errors.Is(err, ynab.ErrRateLimited):
		return errors.New("rate limit exceeded: wait before making more requests")
	}

	var apiErr *ynab.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("YNAB API error %d: %s", apiErr.StatusCode, apiErr.Message)
	}

	return err
}

// requireField rejects empty required string arguments
func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ynab.ValidationError{Field: field, Message: "required"}
	}
	return nil
}

// requireDate rejects dates not in YYYY-MM-DD form
func requireDate(field, value string) error {
	if err := requireField(field, value); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return &ynab.ValidationError{Field: field, Message: "expected an ISO date (YYYY-MM-DD)", Value: value}
	}
	return nil
}

// optionalDate is requireDate for arguments that may be omitted
func optionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	return requireDate(field, value)
}

// optionalFormat validates a response_format argument, defaulting when empty
func optionalFormat(value, fallback string) (string, error) {
	switch value {
	case "":
		return fallback, nil
	case formatMarkdown, formatJSON:
		return value, nil
	default:
		return "", &ynab.ValidationError{Field: "response_format", Message: "must be 'markdown' or 'json'", Value: value}
	}
}

// optionalCleared validates a cleared status argument
func optionalCleared(value string) error {
	switch value {
	case "", ynab.ClearedCleared, ynab.ClearedUncleared, ynab.ClearedReconciled:
		return nil
	default:
		return &ynab.ValidationError{Field: "cleared", Message: "must be 'cleared', 'uncleared' or 'reconciled'", Value: value}
	}
}

// requireFrequency validates a scheduled transaction frequency
func requireFrequency(value string) error {
	if err := requireField("frequency", value); err != nil {
		return err
	}
	if !slices.Contains(ynab.ScheduledFrequencies, value) {
		return &ynab.ValidationError{Field: "frequency", Message: "not a valid frequency", Value: value}
	}
	return nil
}

// optionalMemo enforces the memo length cap
func optionalMemo(value string) error {
	if len(value) > 200 {
		return &ynab.ValidationError{Field: "memo", Message: "must be at most 200 characters"}
	}
	return nil
}

// resolveAmount picks the milliunit amount from the mutually exclusive
// amount_milliunits/amount_dollars pair. With required set, exactly one must
// be present; otherwise at most one.
func resolveAmount(milliunits *int64, dollars *float64, required bool) (*int64, error) {
	hasMilli := milliunits != nil
	hasDollars := dollars != nil

	if hasMilli && hasDollars {
		return nil, &ynab.ValidationError{
			Field:   "amount",
			Message: "provide only one of amount_milliunits or amount_dollars",
		}
	}
	if !hasMilli && !hasDollars {
		if required {
			return nil, &ynab.ValidationError{
				Field:   "amount",
				Message: "provide exactly one of amount_milliunits or amount_dollars",
			}
		}
		return nil, nil
	}
	if hasMilli {
		return milliunits, nil
	}
	v := money.DollarsToMilliunits(*dollars)
	return &v, nil
}

// outputToFile resolves the output_to_file flag, which defaults to true
func outputToFile(v *bool) bool {
	return v == nil || *v
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
