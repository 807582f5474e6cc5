package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/spendwell/ynab-go/internal/spool"
	"github.com/spendwell/ynab-go/pkg/ynab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTools builds a ynabTools backed by an httptest server and a spool
// directory under t.TempDir. Returns the tools and the spool directory.
func newTestTools(t *testing.T, handler http.HandlerFunc) (*ynabTools, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:   "test-token",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	return &ynabTools{client: client, spooler: spool.New(dir)}, dir
}

// noCallHandler fails the test if any request reaches the API
func noCallHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API call: %s %s", r.Method, r.URL.Path)
	}
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)

	var validationErr *ynab.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, field, validationErr.Field)
}

func boolPtr(v bool) *bool { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestGetAccounts_MissingBudgetID(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.GetAccounts(context.Background(), nil, GetAccountsInput{})
	requireValidationError(t, err, "budget_id")
}

func TestGetBudgets_InvalidFormat(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.GetBudgets(context.Background(), nil, GetBudgetsInput{ResponseFormat: "yaml"})
	requireValidationError(t, err, "response_format")
}

func TestGetTransactions_InvalidSinceDate(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.GetTransactions(context.Background(), nil, GetTransactionsInput{
		BudgetID:  "budget-1",
		SinceDate: "01/15/2024",
	})
	requireValidationError(t, err, "since_date")
}

func TestGetTransactions_InvalidCleared(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.GetTransactions(context.Background(), nil, GetTransactionsInput{
		BudgetID: "budget-1",
		Cleared:  "pending",
	})
	requireValidationError(t, err, "cleared")
}

func TestUpdateCategoryBudget_AmountValidation(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	base := UpdateCategoryBudgetInput{
		BudgetID:   "budget-1",
		CategoryID: "cat-1",
		Month:      "2024-03-01",
	}

	// Neither amount form provided
	_, _, err := tools.UpdateCategoryBudget(context.Background(), nil, base)
	requireValidationError(t, err, "amount")

	// Both amount forms provided
	both := base
	both.AmountMilliunits = int64Ptr(150000)
	both.AmountDollars = floatPtr(150)
	_, _, err = tools.UpdateCategoryBudget(context.Background(), nil, both)
	requireValidationError(t, err, "amount")
}

func TestCreateTransaction_Validation(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	base := CreateTransactionInput{
		BudgetID:         "budget-1",
		AccountID:        "acc-1",
		Date:             "2024-03-01",
		AmountMilliunits: int64Ptr(-42500),
	}

	missingDate := base
	missingDate.Date = ""
	_, _, err := tools.CreateTransaction(context.Background(), nil, missingDate)
	requireValidationError(t, err, "date")

	longMemo := base
	for len(longMemo.Memo) <= 200 {
		longMemo.Memo += "0123456789"
	}
	_, _, err = tools.CreateTransaction(context.Background(), nil, longMemo)
	requireValidationError(t, err, "memo")

	badCleared := base
	badCleared.Cleared = "maybe"
	_, _, err = tools.CreateTransaction(context.Background(), nil, badCleared)
	requireValidationError(t, err, "cleared")
}

func TestUpdateTransaction_NoFields(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.UpdateTransaction(context.Background(), nil, UpdateTransactionInput{
		BudgetID:      "budget-1",
		TransactionID: "txn-1",
	})
	requireValidationError(t, err, "transaction")
}

func TestCreateScheduledTransaction_InvalidFrequency(t *testing.T) {
	tools, _ := newTestTools(t, noCallHandler(t))

	_, _, err := tools.CreateScheduledTransaction(context.Background(), nil, CreateScheduledTransactionInput{
		BudgetID:         "budget-1",
		AccountID:        "acc-1",
		Date:             "2025-01-01",
		Frequency:        "fortnightly",
		AmountMilliunits: int64Ptr(-99000),
	})
	requireValidationError(t, err, "frequency")
}

const transactionsFixture = `{
	"data": {
		"transactions": [
			{"id": "t1", "date": "2024-03-01", "amount": -50000, "payee_name": "Grocery Depot", "cleared": "cleared"},
			{"id": "t2", "date": "2024-03-02", "amount": -12000, "payee_name": "Gas Station", "memo": "grocery run fuel", "cleared": "cleared"},
			{"id": "t3", "date": "2024-03-03", "amount": -8000, "payee_name": "Coffee Shop", "cleared": "uncleared"},
			{"id": "t4", "date": "2024-03-04", "amount": -30000, "payee_name": "Corner Grocery", "cleared": "cleared"},
			{"id": "t5", "date": "2024-03-05", "amount": 250000, "payee_name": "Employer", "cleared": "cleared"}
		]
	}
}`

func TestSearchTransactions_InlineMatches(t *testing.T) {
	tools, _ := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets/budget-1/transactions", r.URL.Path)
		w.Write([]byte(transactionsFixture))
	})

	_, out, err := tools.SearchTransactions(context.Background(), nil, SearchTransactionsInput{
		BudgetID:     "budget-1",
		Query:        "grocery",
		OutputToFile: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "grocery", out.Query)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, int64(-92000), out.TotalMilliunits)
	assert.Equal(t, "-$92.00", out.Total)
	assert.Empty(t, out.OutputFile)
	require.Len(t, out.Transactions, 3)
	assert.Equal(t, "t1", out.Transactions[0].ID)
	assert.Equal(t, "t2", out.Transactions[1].ID)
	assert.Equal(t, "t4", out.Transactions[2].ID)
}

func TestGetTransactions_SummaryOnly(t *testing.T) {
	tools, dir := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(transactionsFixture))
	})

	_, out, err := tools.GetTransactions(context.Background(), nil, GetTransactionsInput{
		BudgetID:    "budget-1",
		SummaryOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Count)
	assert.Equal(t, int64(150000), out.TotalMilliunits)
	assert.Equal(t, "$150.00", out.Total)
	assert.Empty(t, out.Transactions)
	assert.Empty(t, out.OutputFile)

	// Summary mode must not create spool files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetTransactions_DefaultsToFile(t *testing.T) {
	tools, _ := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(transactionsFixture))
	})

	_, out, err := tools.GetTransactions(context.Background(), nil, GetTransactionsInput{
		BudgetID: "budget-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Count)
	require.NotEmpty(t, out.OutputFile)
	assert.Contains(t, out.Message, out.OutputFile)
	assert.Empty(t, out.Transactions)

	_, err = os.Stat(out.OutputFile)
	require.NoError(t, err)
}

func TestGetTransactions_LocalFilters(t *testing.T) {
	tools, _ := newTestTools(t, func(w http.ResponseWriter, r *http.Request) {
		// The account filter selects the endpoint; cleared filters locally
		assert.Equal(t, "/budgets/budget-1/accounts/acc-1/transactions", r.URL.Path)
		w.Write([]byte(transactionsFixture))
	})

	_, out, err := tools.GetTransactions(context.Background(), nil, GetTransactionsInput{
		BudgetID:     "budget-1",
		AccountID:    "acc-1",
		Cleared:      "uncleared",
		OutputToFile: boolPtr(false),
	})
	require.NoError(t, err)

	require.Len(t, out.Transactions, 1)
	assert.Equal(t, "t3", out.Transactions[0].ID)
}

func TestToolError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"unauthorized", ynab.ErrUnauthorized, "invalid API key"},
		{"wrapped unauthorized", errors.Wrap(ynab.ErrUnauthorized, "failed to get budgets"), "invalid API key"},
		{"forbidden", ynab.ErrForbidden, "access forbidden"},
		{"not found", ynab.ErrNotFound, "resource not found"},
		{"rate limited", ynab.ErrRateLimited, "rate limit exceeded"},
		{"write error", &spool.WriteError{Path: "/tmp/x.json", Err: errors.New("disk full")}, "output write failed"},
		{"api error", &ynab.Error{Code: "bad_request", Message: "bad month", StatusCode: 400}, "YNAB API error 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toolError(tt.err)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestToolError_PassesValidationThrough(t *testing.T) {
	original := &ynab.ValidationError{Field: "budget_id", Message: "required"}
	assert.Equal(t, error(original), toolError(original))
}
