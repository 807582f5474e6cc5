package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spendwell/ynab-go/internal/filter"
	"github.com/spendwell/ynab-go/internal/money"
	"github.com/spendwell/ynab-go/internal/spool"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// GetTransactions tool - the workhorse. Result sets can be large, so the
// default is to spool them to a file and return the path.
type GetTransactionsInput struct {
	BudgetID     string `json:"budget_id" jsonschema:"The budget ID"`
	AccountID    string `json:"account_id,omitempty" jsonschema:"Filter by account ID"`
	CategoryID   string `json:"category_id,omitempty" jsonschema:"Filter by category ID"`
	PayeeID      string `json:"payee_id,omitempty" jsonschema:"Filter by payee ID"`
	SinceDate    string `json:"since_date,omitempty" jsonschema:"Only transactions on or after this date (YYYY-MM-DD)"`
	Cleared      string `json:"cleared,omitempty" jsonschema:"Filter by cleared status: 'cleared', 'uncleared' or 'reconciled'"`
	OutputToFile *bool  `json:"output_to_file,omitempty" jsonschema:"Write results to a file and return the path instead of inline data. Defaults to true."`
	OutputPath   string `json:"output_path,omitempty" jsonschema:"Explicit output file path; a name is generated when omitted"`
	SummaryOnly  bool   `json:"summary_only,omitempty" jsonschema:"Return only the count and total, skipping serialization entirely"`
}

type GetTransactionsOutput struct {
	Count           int                `json:"count" jsonschema:"Number of matching transactions"`
	TotalMilliunits int64              `json:"total_milliunits" jsonschema:"Sum of amounts in milliunits"`
	Total           string             `json:"total" jsonschema:"Sum of amounts as a display string"`
	OutputFile      string             `json:"output_file,omitempty" jsonschema:"Path of the written result file, when file output was used"`
	Message         string             `json:"message,omitempty" jsonschema:"Human-readable note about where the results went"`
	Transactions    []TransactionEntry `json:"transactions,omitempty" jsonschema:"Inline transactions, when file output was disabled"`
}

func (t *ynabTools) GetTransactions(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionsInput) (*mcp.CallToolResult, GetTransactionsOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetTransactionsOutput{}, err
	}
	if err := optionalDate("since_date", input.SinceDate); err != nil {
		return nil, GetTransactionsOutput{}, err
	}
	if err := optionalCleared(input.Cleared); err != nil {
		return nil, GetTransactionsOutput{}, err
	}

	txns, err := t.client.Transactions.List(ctx, input.BudgetID, &ynab.TransactionFilters{
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		PayeeID:    input.PayeeID,
		SinceDate:  input.SinceDate,
	})
	if err != nil {
		return nil, GetTransactionsOutput{}, toolError(err)
	}

	// The listing endpoint honors at most one ID filter (account wins over
	// category over payee); the rest apply here.
	var preds []filter.Predicate
	switch {
	case input.AccountID != "":
		preds = append(preds, filter.Category(input.CategoryID), filter.Payee(input.PayeeID))
	case input.CategoryID != "":
		preds = append(preds, filter.Payee(input.PayeeID))
	}
	preds = append(preds, filter.Cleared(input.Cleared))
	txns = filter.Apply(txns, preds...)

	return t.materialize(txns, spool.Request{
		OutputToFile: outputToFile(input.OutputToFile),
		OutputPath:   input.OutputPath,
		SummaryOnly:  input.SummaryOnly,
	}, "transactions")
}

// materialize runs the spooler and shapes the shared transaction output
func (t *ynabTools) materialize(txns []*ynab.Transaction, req spool.Request, prefix string) (*mcp.CallToolResult, GetTransactionsOutput, error) {
	result, err := t.spooler.Materialize(txns, req, prefix)
	if err != nil {
		return nil, GetTransactionsOutput{}, toolError(err)
	}

	total := spool.TotalMilliunits(txns)
	out := GetTransactionsOutput{
		Count:           len(txns),
		TotalMilliunits: total,
		Total:           money.FormatMilliunits(total),
	}

	switch result.Mode() {
	case spool.ModeSummary:
		out.Message = fmt.Sprintf("%d transactions totaling %s", out.Count, out.Total)
	case spool.ModeFile:
		ref := result.File()
		out.OutputFile = ref.Path
		out.Message = fmt.Sprintf("Wrote %d transactions to %s", ref.RecordCount, ref.Path)
	case spool.ModeInline:
		out.Transactions = transactionEntries(result.Inline())
	}

	return nil, out, nil
}

// GetTransaction tool - single transaction detail
type GetTransactionInput struct {
	BudgetID       string `json:"budget_id" jsonschema:"The budget ID"`
	TransactionID  string `json:"transaction_id" jsonschema:"The transaction ID"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"Output format: 'markdown' or 'json' (default)"`
}

type GetTransactionOutput struct {
	Transaction TransactionEntry `json:"transaction" jsonschema:"The transaction"`
}

func (t *ynabTools) GetTransaction(ctx context.Context, req *mcp.CallToolRequest, input GetTransactionInput) (*mcp.CallToolResult, GetTransactionOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, GetTransactionOutput{}, err
	}
	if err := requireField("transaction_id", input.TransactionID); err != nil {
		return nil, GetTransactionOutput{}, err
	}
	format, err := optionalFormat(input.ResponseFormat, formatJSON)
	if err != nil {
		return nil, GetTransactionOutput{}, err
	}

	txn, err := t.client.Transactions.Get(ctx, input.BudgetID, input.TransactionID)
	if err != nil {
		return nil, GetTransactionOutput{}, toolError(err)
	}

	entry := transactionEntry(txn)

	if format == formatMarkdown {
		return textResult(renderTransaction(entry)), GetTransactionOutput{}, nil
	}

	return nil, GetTransactionOutput{Transaction: entry}, nil
}

// CreateTransaction tool
type CreateTransactionInput struct {
	BudgetID         string   `json:"budget_id" jsonschema:"The budget ID"`
	AccountID        string   `json:"account_id" jsonschema:"The account the transaction belongs to"`
	Date             string   `json:"date" jsonschema:"Transaction date (YYYY-MM-DD)"`
	AmountMilliunits *int64   `json:"amount_milliunits,omitempty" jsonschema:"RECOMMENDED. Amount in milliunits (negative = outflow, 1000 = $1.00). Mutually exclusive with amount_dollars."`
	AmountDollars    *float64 `json:"amount_dollars,omitempty" jsonschema:"Amount in dollars (negative = outflow). Mutually exclusive with amount_milliunits; use amount_milliunits for precision."`
	PayeeID          string   `json:"payee_id,omitempty" jsonschema:"Existing payee ID"`
	PayeeName        string   `json:"payee_name,omitempty" jsonschema:"Payee name; creates the payee if it doesn't exist"`
	CategoryID       string   `json:"category_id,omitempty" jsonschema:"Category ID"`
	Memo             string   `json:"memo,omitempty" jsonschema:"Memo, at most 200 characters"`
	Cleared          string   `json:"cleared,omitempty" jsonschema:"Cleared status: 'cleared', 'uncleared' or 'reconciled'"`
	Approved         *bool    `json:"approved,omitempty" jsonschema:"Whether the transaction is approved"`
	FlagColor        string   `json:"flag_color,omitempty" jsonschema:"Flag color (red, orange, yellow, green, blue, purple)"`
}

type CreateTransactionOutput struct {
	Success     bool             `json:"success" jsonschema:"Whether the create succeeded"`
	Transaction TransactionEntry `json:"transaction" jsonschema:"The transaction as stored by the server"`
}

func (t *ynabTools) CreateTransaction(ctx context.Context, req *mcp.CallToolRequest, input CreateTransactionInput) (*mcp.CallToolResult, CreateTransactionOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, CreateTransactionOutput{}, err
	}
	if err := requireField("account_id", input.AccountID); err != nil {
		return nil, CreateTransactionOutput{}, err
	}
	if err := requireDate("date", input.Date); err != nil {
		return nil, CreateTransactionOutput{}, err
	}
	amount, err := resolveAmount(input.AmountMilliunits, input.AmountDollars, true)
	if err != nil {
		return nil, CreateTransactionOutput{}, err
	}
	if err := optionalCleared(input.Cleared); err != nil {
		return nil, CreateTransactionOutput{}, err
	}
	if err := optionalMemo(input.Memo); err != nil {
		return nil, CreateTransactionOutput{}, err
	}

	params := &ynab.SaveTransactionParams{
		AccountID:  input.AccountID,
		Date:       input.Date,
		Amount:     amount,
		PayeeID:    optionalString(input.PayeeID),
		PayeeName:  optionalString(input.PayeeName),
		CategoryID: optionalString(input.CategoryID),
		Memo:       optionalString(input.Memo),
		Cleared:    input.Cleared,
		Approved:   input.Approved,
		FlagColor:  optionalString(input.FlagColor),
	}

	txn, err := t.client.Transactions.Create(ctx, input.BudgetID, params)
	if err != nil {
		return nil, CreateTransactionOutput{}, toolError(err)
	}

	return nil, CreateTransactionOutput{Success: true, Transaction: transactionEntry(txn)}, nil
}

// UpdateTransaction tool - partial update; only provided fields change
type UpdateTransactionInput struct {
	BudgetID         string   `json:"budget_id" jsonschema:"The budget ID"`
	TransactionID    string   `json:"transaction_id" jsonschema:"The transaction ID"`
	AccountID        string   `json:"account_id,omitempty" jsonschema:"Move the transaction to this account"`
	Date             string   `json:"date,omitempty" jsonschema:"New transaction date (YYYY-MM-DD)"`
	AmountMilliunits *int64   `json:"amount_milliunits,omitempty" jsonschema:"New amount in milliunits. Mutually exclusive with amount_dollars."`
	AmountDollars    *float64 `json:"amount_dollars,omitempty" jsonschema:"New amount in dollars. Mutually exclusive with amount_milliunits."`
	PayeeID          string   `json:"payee_id,omitempty" jsonschema:"New payee ID"`
	PayeeName        string   `json:"payee_name,omitempty" jsonschema:"New payee name"`
	CategoryID       string   `json:"category_id,omitempty" jsonschema:"New category ID"`
	Memo             string   `json:"memo,omitempty" jsonschema:"New memo, at most 200 characters"`
	Cleared          string   `json:"cleared,omitempty" jsonschema:"New cleared status"`
	Approved         *bool    `json:"approved,omitempty" jsonschema:"New approved flag"`
	FlagColor        string   `json:"flag_color,omitempty" jsonschema:"New flag color"`
}

type UpdateTransactionOutput struct {
	Success     bool             `json:"success" jsonschema:"Whether the update succeeded"`
	Transaction TransactionEntry `json:"transaction" jsonschema:"The transaction as stored by the server"`
}

func (t *ynabTools) UpdateTransaction(ctx context.Context, req *mcp.CallToolRequest, input UpdateTransactionInput) (*mcp.CallToolResult, UpdateTransactionOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, UpdateTransactionOutput{}, err
	}
	if err := requireField("transaction_id", input.TransactionID); err != nil {
		return nil, UpdateTransactionOutput{}, err
	}
	if err := optionalDate("date", input.Date); err != nil {
		return nil, UpdateTransactionOutput{}, err
	}
	amount, err := resolveAmount(input.AmountMilliunits, input.AmountDollars, false)
	if err != nil {
		return nil, UpdateTransactionOutput{}, err
	}
	if err := optionalCleared(input.Cleared); err != nil {
		return nil, UpdateTransactionOutput{}, err
	}
	if err := optionalMemo(input.Memo); err != nil {
		return nil, UpdateTransactionOutput{}, err
	}

	params := &ynab.SaveTransactionParams{
		AccountID:  input.AccountID,
		Date:       input.Date,
		Amount:     amount,
		PayeeID:    optionalString(input.PayeeID),
		PayeeName:  optionalString(input.PayeeName),
		CategoryID: optionalString(input.CategoryID),
		Memo:       optionalString(input.Memo),
		Cleared:    input.Cleared,
		Approved:   input.Approved,
		FlagColor:  optionalString(input.FlagColor),
	}
	if *params == (ynab.SaveTransactionParams{}) {
		return nil, UpdateTransactionOutput{}, &ynab.ValidationError{
			Field:   "transaction",
			Message: "no fields to update",
		}
	}

	txn, err := t.client.Transactions.Update(ctx, input.BudgetID, input.TransactionID, params)
	if err != nil {
		return nil, UpdateTransactionOutput{}, toolError(err)
	}

	return nil, UpdateTransactionOutput{Success: true, Transaction: transactionEntry(txn)}, nil
}

// SearchTransactions tool - fetches then matches payee name or memo locally,
// since the API has no search endpoint
type SearchTransactionsInput struct {
	BudgetID     string `json:"budget_id" jsonschema:"The budget ID"`
	Query        string `json:"query" jsonschema:"Text to match against payee names and memos (case-insensitive)"`
	AccountID    string `json:"account_id,omitempty" jsonschema:"Restrict the search to one account"`
	SinceDate    string `json:"since_date,omitempty" jsonschema:"Only search transactions on or after this date (YYYY-MM-DD)"`
	OutputToFile *bool  `json:"output_to_file,omitempty" jsonschema:"Write results to a file and return the path instead of inline data. Defaults to true."`
	OutputPath   string `json:"output_path,omitempty" jsonschema:"Explicit output file path; a name is generated when omitted"`
	SummaryOnly  bool   `json:"summary_only,omitempty" jsonschema:"Return only the count and total"`
}

type SearchTransactionsOutput struct {
	Query           string             `json:"query" jsonschema:"The search query"`
	Count           int                `json:"count" jsonschema:"Number of matching transactions"`
	TotalMilliunits int64              `json:"total_milliunits" jsonschema:"Sum of matching amounts in milliunits"`
	Total           string             `json:"total" jsonschema:"Sum of matching amounts as a display string"`
	OutputFile      string             `json:"output_file,omitempty" jsonschema:"Path of the written result file, when file output was used"`
	Message         string             `json:"message,omitempty" jsonschema:"Human-readable note about where the results went"`
	Transactions    []TransactionEntry `json:"transactions,omitempty" jsonschema:"Inline matches, when file output was disabled"`
}

func (t *ynabTools) SearchTransactions(ctx context.Context, req *mcp.CallToolRequest, input SearchTransactionsInput) (*mcp.CallToolResult, SearchTransactionsOutput, error) {
	if err := requireField("budget_id", input.BudgetID); err != nil {
		return nil, SearchTransactionsOutput{}, err
	}
	if err := requireField("query", input.Query); err != nil {
		return nil, SearchTransactionsOutput{}, err
	}
	if err := optionalDate("since_date", input.SinceDate); err != nil {
		return nil, SearchTransactionsOutput{}, err
	}

	txns, err := t.client.Transactions.List(ctx, input.BudgetID, &ynab.TransactionFilters{
		AccountID: input.AccountID,
		SinceDate: input.SinceDate,
	})
	if err != nil {
		return nil, SearchTransactionsOutput{}, toolError(err)
	}

	txns = filter.Apply(txns, filter.Matches(input.Query))

	_, out, err := t.materialize(txns, spool.Request{
		OutputToFile: outputToFile(input.OutputToFile),
		OutputPath:   input.OutputPath,
		SummaryOnly:  input.SummaryOnly,
	}, "search_transactions")
	if err != nil {
		return nil, SearchTransactionsOutput{}, err
	}

	return nil, SearchTransactionsOutput{
		Query:           input.Query,
		Count:           out.Count,
		TotalMilliunits: out.TotalMilliunits,
		Total:           out.Total,
		OutputFile:      out.OutputFile,
		Message:         out.Message,
		Transactions:    out.Transactions,
	}, nil
}
