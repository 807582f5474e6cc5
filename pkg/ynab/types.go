package ynab

// All monetary amounts are milliunits: 1000 milliunits equal one unit of the
// budget's currency.

// Cleared status values accepted by the API
const (
	ClearedCleared    = "cleared"
	ClearedUncleared  = "uncleared"
	ClearedReconciled = "reconciled"
)

// ScheduledFrequencies lists the frequency values accepted for scheduled
// transactions.
var ScheduledFrequencies = []string{
	"never", "daily", "weekly", "everyOtherWeek", "twiceAMonth",
	"every4Weeks", "monthly", "everyOtherMonth", "every3Months",
	"every4Months", "twiceAYear", "yearly", "everyOtherYear",
}

// CurrencyFormat describes how a budget renders amounts
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// DateFormat describes a budget's date rendering
type DateFormat struct {
	Format string `json:"format"`
}

// BudgetSummary is the listing form of a budget
type BudgetSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on,omitempty"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	DateFormat     *DateFormat     `json:"date_format,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format,omitempty"`

	// Accounts is only populated when the listing requests it
	Accounts []*Account `json:"accounts,omitempty"`
}

// BudgetDetail is the full single-budget payload
type BudgetDetail struct {
	BudgetSummary

	Payees         []*Payee         `json:"payees,omitempty"`
	CategoryGroups []*CategoryGroup `json:"category_groups,omitempty"`
	Categories     []*Category      `json:"categories,omitempty"`
	Months         []*Month         `json:"months,omitempty"`
}

// Account represents a budget account
type Account struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	OnBudget            bool   `json:"on_budget"`
	Closed              bool   `json:"closed"`
	Note                string `json:"note,omitempty"`
	Balance             int64  `json:"balance"`
	ClearedBalance      int64  `json:"cleared_balance"`
	UnclearedBalance    int64  `json:"uncleared_balance"`
	TransferPayeeID     string `json:"transfer_payee_id,omitempty"`
	LastReconciledAt    string `json:"last_reconciled_at,omitempty"`
	DirectImportLinked  bool   `json:"direct_import_linked,omitempty"`
	DirectImportInError bool   `json:"direct_import_in_error,omitempty"`
	Deleted             bool   `json:"deleted"`
}

// CategoryGroup groups related categories
type CategoryGroup struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Hidden  bool   `json:"hidden"`
	Deleted bool   `json:"deleted"`

	// Categories is populated by the categories listing endpoint
	Categories []*Category `json:"categories,omitempty"`
}

// Category represents a budget category, including goal data when present
type Category struct {
	ID                     string `json:"id"`
	CategoryGroupID        string `json:"category_group_id"`
	CategoryGroupName      string `json:"category_group_name,omitempty"`
	Name                   string `json:"name"`
	Hidden                 bool   `json:"hidden"`
	Note                   string `json:"note,omitempty"`
	Budgeted               int64  `json:"budgeted"`
	Activity               int64  `json:"activity"`
	Balance                int64  `json:"balance"`
	GoalType               string `json:"goal_type,omitempty"`
	GoalTarget             int64  `json:"goal_target,omitempty"`
	GoalTargetMonth        string `json:"goal_target_month,omitempty"`
	GoalPercentageComplete *int   `json:"goal_percentage_complete,omitempty"`
	GoalOverallLeft        int64  `json:"goal_overall_left,omitempty"`
	Deleted                bool   `json:"deleted"`
}

// Payee represents a payee
type Payee struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	TransferAccountID string `json:"transfer_account_id,omitempty"`
	Deleted           bool   `json:"deleted"`
}

// Subtransaction is a split line within a transaction
type Subtransaction struct {
	ID                    string `json:"id"`
	TransactionID         string `json:"transaction_id"`
	Amount                int64  `json:"amount"`
	Memo                  string `json:"memo,omitempty"`
	PayeeID               string `json:"payee_id,omitempty"`
	PayeeName             string `json:"payee_name,omitempty"`
	CategoryID            string `json:"category_id,omitempty"`
	CategoryName          string `json:"category_name,omitempty"`
	TransferAccountID     string `json:"transfer_account_id,omitempty"`
	TransferTransactionID string `json:"transfer_transaction_id,omitempty"`
	Deleted               bool   `json:"deleted"`
}

// Transaction represents a single transaction. Immutable once fetched;
// mutations round-trip through the API.
type Transaction struct {
	ID                    string            `json:"id"`
	Date                  Date              `json:"date"`
	Amount                int64             `json:"amount"`
	Memo                  string            `json:"memo,omitempty"`
	Cleared               string            `json:"cleared"`
	Approved              bool              `json:"approved"`
	FlagColor             string            `json:"flag_color,omitempty"`
	AccountID             string            `json:"account_id"`
	AccountName           string            `json:"account_name,omitempty"`
	PayeeID               string            `json:"payee_id,omitempty"`
	PayeeName             string            `json:"payee_name,omitempty"`
	CategoryID            string            `json:"category_id,omitempty"`
	CategoryName          string            `json:"category_name,omitempty"`
	TransferAccountID     string            `json:"transfer_account_id,omitempty"`
	TransferTransactionID string            `json:"transfer_transaction_id,omitempty"`
	ImportID              string            `json:"import_id,omitempty"`
	Subtransactions       []*Subtransaction `json:"subtransactions,omitempty"`
	Deleted               bool              `json:"deleted"`
}

// ScheduledTransaction represents a recurring transaction
type ScheduledTransaction struct {
	ID           string `json:"id"`
	DateFirst    Date   `json:"date_first"`
	DateNext     Date   `json:"date_next"`
	Frequency    string `json:"frequency"`
	Amount       int64  `json:"amount"`
	Memo         string `json:"memo,omitempty"`
	FlagColor    string `json:"flag_color,omitempty"`
	AccountID    string `json:"account_id"`
	AccountName  string `json:"account_name,omitempty"`
	PayeeID      string `json:"payee_id,omitempty"`
	PayeeName    string `json:"payee_name,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	Deleted      bool   `json:"deleted"`
}

// Month is a single budget month with its category allocations
type Month struct {
	Month        string      `json:"month"`
	Note         string      `json:"note,omitempty"`
	Income       int64       `json:"income"`
	Budgeted     int64       `json:"budgeted"`
	Activity     int64       `json:"activity"`
	ToBeBudgeted int64       `json:"to_be_budgeted"`
	AgeOfMoney   *int        `json:"age_of_money,omitempty"`
	Deleted      bool        `json:"deleted"`
	Categories   []*Category `json:"categories,omitempty"`
}

// User identifies the authenticated user
type User struct {
	ID string `json:"id"`
}

// TransactionFilters narrows a transactions listing. At most one of the ID
// filters selects the upstream endpoint (account takes precedence over
// category over payee, matching the API's per-resource listings); the rest
// are applied client side.
type TransactionFilters struct {
	AccountID  string
	CategoryID string
	PayeeID    string

	// SinceDate limits results to transactions on or after this date
	// (YYYY-MM-DD), inclusive.
	SinceDate string
}

// SaveTransactionParams carries transaction fields for create and update
// calls. Optional fields are pointers so zero values can be expressed.
type SaveTransactionParams struct {
	AccountID  string  `json:"account_id,omitempty"`
	Date       string  `json:"date,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   *bool   `json:"approved,omitempty"`
	FlagColor  *string `json:"flag_color,omitempty"`
}

// SaveScheduledTransactionParams carries scheduled transaction fields for
// create calls
type SaveScheduledTransactionParams struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Frequency  string  `json:"frequency,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	FlagColor  *string `json:"flag_color,omitempty"`
}
