package main

import (
	"github.com/spendwell/ynab-go/internal/money"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// Response entry types. Every monetary field appears twice: the exact
// milliunit integer and a display string.

type BudgetEntry struct {
	ID             string         `json:"id" jsonschema:"Budget ID"`
	Name           string         `json:"name" jsonschema:"Budget name"`
	LastModifiedOn string         `json:"last_modified_on,omitempty" jsonschema:"Last modification timestamp"`
	FirstMonth     string         `json:"first_month,omitempty" jsonschema:"First budget month"`
	LastMonth      string         `json:"last_month,omitempty" jsonschema:"Last budget month"`
	Accounts       []AccountEntry `json:"accounts,omitempty" jsonschema:"Accounts, when include_accounts is set"`
}

type AccountEntry struct {
	ID                         string `json:"id" jsonschema:"Account ID"`
	Name                       string `json:"name" jsonschema:"Account name"`
	Type                       string `json:"type" jsonschema:"Account type (e.g. checking, savings, creditCard)"`
	OnBudget                   bool   `json:"on_budget" jsonschema:"Whether the account is on budget"`
	Closed                     bool   `json:"closed" jsonschema:"Whether the account is closed"`
	Balance                    string `json:"balance" jsonschema:"Current balance as a display string"`
	BalanceMilliunits          int64  `json:"balance_milliunits" jsonschema:"Current balance in milliunits"`
	ClearedBalance             string `json:"cleared_balance" jsonschema:"Cleared balance as a display string"`
	ClearedBalanceMilliunits   int64  `json:"cleared_balance_milliunits" jsonschema:"Cleared balance in milliunits"`
	UnclearedBalance           string `json:"uncleared_balance" jsonschema:"Uncleared balance as a display string"`
	UnclearedBalanceMilliunits int64  `json:"uncleared_balance_milliunits" jsonschema:"Uncleared balance in milliunits"`
}

type CategoryEntry struct {
	ID                     string `json:"id" jsonschema:"Category ID"`
	CategoryGroupID        string `json:"category_group_id,omitempty" jsonschema:"Owning category group ID"`
	Name                   string `json:"name" jsonschema:"Category name"`
	Hidden                 bool   `json:"hidden" jsonschema:"Whether the category is hidden"`
	Budgeted               string `json:"budgeted" jsonschema:"Budgeted amount as a display string"`
	BudgetedMilliunits     int64  `json:"budgeted_milliunits" jsonschema:"Budgeted amount in milliunits"`
	Activity               string `json:"activity" jsonschema:"Activity as a display string"`
	ActivityMilliunits     int64  `json:"activity_milliunits" jsonschema:"Activity in milliunits"`
	Balance                string `json:"balance" jsonschema:"Balance as a display string"`
	BalanceMilliunits      int64  `json:"balance_milliunits" jsonschema:"Balance in milliunits"`
	GoalType               string `json:"goal_type,omitempty" jsonschema:"Goal type, if a goal is set"`
	GoalTarget             string `json:"goal_target,omitempty" jsonschema:"Goal target as a display string"`
	GoalTargetMilliunits   int64  `json:"goal_target_milliunits,omitempty" jsonschema:"Goal target in milliunits"`
	GoalPercentageComplete *int   `json:"goal_percentage_complete,omitempty" jsonschema:"Goal completion percentage"`
}

type CategoryGroupEntry struct {
	ID         string          `json:"id" jsonschema:"Category group ID"`
	Name       string          `json:"name" jsonschema:"Category group name"`
	Hidden     bool            `json:"hidden" jsonschema:"Whether the group is hidden"`
	Categories []CategoryEntry `json:"categories" jsonschema:"Categories in this group"`
}

type PayeeEntry struct {
	ID                string `json:"id" jsonschema:"Payee ID"`
	Name              string `json:"name" jsonschema:"Payee name"`
	TransferAccountID string `json:"transfer_account_id,omitempty" jsonschema:"Transfer account ID for transfer payees"`
}

type TransactionEntry struct {
	ID               string `json:"id" jsonschema:"Transaction ID"`
	Date             string `json:"date" jsonschema:"Transaction date (YYYY-MM-DD)"`
	Amount           string `json:"amount" jsonschema:"Amount as a display string (negative = outflow)"`
	AmountMilliunits int64  `json:"amount_milliunits" jsonschema:"Amount in milliunits (negative = outflow)"`
	PayeeID          string `json:"payee_id,omitempty" jsonschema:"Payee ID"`
	PayeeName        string `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID       string `json:"category_id,omitempty" jsonschema:"Category ID"`
	CategoryName     string `json:"category_name,omitempty" jsonschema:"Category name"`
	AccountID        string `json:"account_id,omitempty" jsonschema:"Account ID"`
	AccountName      string `json:"account_name,omitempty" jsonschema:"Account name"`
	Memo             string `json:"memo,omitempty" jsonschema:"Transaction memo"`
	Cleared          string `json:"cleared,omitempty" jsonschema:"Cleared status"`
	Approved         bool   `json:"approved" jsonschema:"Whether the transaction is approved"`
}

type ScheduledTransactionEntry struct {
	ID               string `json:"id" jsonschema:"Scheduled transaction ID"`
	DateFirst        string `json:"date_first" jsonschema:"First occurrence date"`
	DateNext         string `json:"date_next" jsonschema:"Next occurrence date"`
	Frequency        string `json:"frequency" jsonschema:"Recurrence frequency"`
	Amount           string `json:"amount" jsonschema:"Amount as a display string"`
	AmountMilliunits int64  `json:"amount_milliunits" jsonschema:"Amount in milliunits"`
	PayeeID          string `json:"payee_id,omitempty" jsonschema:"Payee ID"`
	PayeeName        string `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID       string `json:"category_id,omitempty" jsonschema:"Category ID"`
	CategoryName     string `json:"category_name,omitempty" jsonschema:"Category name"`
	AccountID        string `json:"account_id,omitempty" jsonschema:"Account ID"`
	AccountName      string `json:"account_name,omitempty" jsonschema:"Account name"`
	Memo             string `json:"memo,omitempty" jsonschema:"Memo"`
}

type MonthEntry struct {
	Month                    string          `json:"month" jsonschema:"Budget month (YYYY-MM-DD)"`
	Income                   string          `json:"income" jsonschema:"Income as a display string"`
	IncomeMilliunits         int64           `json:"income_milliunits" jsonschema:"Income in milliunits"`
	Budgeted                 string          `json:"budgeted" jsonschema:"Budgeted as a display string"`
	BudgetedMilliunits       int64           `json:"budgeted_milliunits" jsonschema:"Budgeted in milliunits"`
	Activity                 string          `json:"activity" jsonschema:"Activity as a display string"`
	ActivityMilliunits       int64           `json:"activity_milliunits" jsonschema:"Activity in milliunits"`
	ToBeBudgeted             string          `json:"to_be_budgeted" jsonschema:"To be budgeted as a display string"`
	ToBeBudgetedMilliunits   int64           `json:"to_be_budgeted_milliunits" jsonschema:"To be budgeted in milliunits"`
	AgeOfMoney               *int            `json:"age_of_money,omitempty" jsonschema:"Age of money in days"`
	Categories               []CategoryEntry `json:"categories,omitempty" jsonschema:"Category allocations for this month"`
}

func budgetEntry(b *ynab.BudgetSummary, includeAccounts bool) BudgetEntry {
	entry := BudgetEntry{
		ID:             b.ID,
		Name:           b.Name,
		LastModifiedOn: b.LastModifiedOn,
		FirstMonth:     b.FirstMonth,
		LastMonth:      b.LastMonth,
	}
	if includeAccounts {
		for _, acc := range b.Accounts {
			entry.Accounts = append(entry.Accounts, accountEntry(acc))
		}
	}
	return entry
}

func accountEntry(a *ynab.Account) AccountEntry {
	return AccountEntry{
		ID:                         a.ID,
		Name:                       a.Name,
		Type:                       a.Type,
		OnBudget:                   a.OnBudget,
		Closed:                     a.Closed,
		Balance:                    money.FormatMilliunits(a.Balance),
		BalanceMilliunits:          a.Balance,
		ClearedBalance:             money.FormatMilliunits(a.ClearedBalance),
		ClearedBalanceMilliunits:   a.ClearedBalance,
		UnclearedBalance:           money.FormatMilliunits(a.UnclearedBalance),
		UnclearedBalanceMilliunits: a.UnclearedBalance,
	}
}

func categoryEntry(c *ynab.Category) CategoryEntry {
	entry := CategoryEntry{
		ID:                 c.ID,
		CategoryGroupID:    c.CategoryGroupID,
		Name:               c.Name,
		Hidden:             c.Hidden,
		Budgeted:           money.FormatMilliunits(c.Budgeted),
		BudgetedMilliunits: c.Budgeted,
		Activity:           money.FormatMilliunits(c.Activity),
		ActivityMilliunits: c.Activity,
		Balance:            money.FormatMilliunits(c.Balance),
		BalanceMilliunits:  c.Balance,
	}
	if c.GoalType != "" {
		entry.GoalType = c.GoalType
		entry.GoalTarget = money.FormatMilliunits(c.GoalTarget)
		entry.GoalTargetMilliunits = c.GoalTarget
		entry.GoalPercentageComplete = c.GoalPercentageComplete
	}
	return entry
}

func payeeEntry(p *ynab.Payee) PayeeEntry {
	return PayeeEntry{
		ID:                p.ID,
		Name:              p.Name,
		TransferAccountID: p.TransferAccountID,
	}
}

func transactionEntry(t *ynab.Transaction) TransactionEntry {
	return TransactionEntry{
		ID:               t.ID,
		Date:             t.Date.String(),
		Amount:           money.FormatMilliunits(t.Amount),
		AmountMilliunits: t.Amount,
		PayeeID:          t.PayeeID,
		PayeeName:        t.PayeeName,
		CategoryID:       t.CategoryID,
		CategoryName:     t.CategoryName,
		AccountID:        t.AccountID,
		AccountName:      t.AccountName,
		Memo:             t.Memo,
		Cleared:          t.Cleared,
		Approved:         t.Approved,
	}
}

func scheduledEntry(s *ynab.ScheduledTransaction) ScheduledTransactionEntry {
	return ScheduledTransactionEntry{
		ID:               s.ID,
		DateFirst:        s.DateFirst.String(),
		DateNext:         s.DateNext.String(),
		Frequency:        s.Frequency,
		Amount:           money.FormatMilliunits(s.Amount),
		AmountMilliunits: s.Amount,
		PayeeID:          s.PayeeID,
		PayeeName:        s.PayeeName,
		CategoryID:       s.CategoryID,
		CategoryName:     s.CategoryName,
		AccountID:        s.AccountID,
		AccountName:      s.AccountName,
		Memo:             s.Memo,
	}
}

func monthEntry(m *ynab.Month) MonthEntry {
	entry := MonthEntry{
		Month:                  m.Month,
		Income:                 money.FormatMilliunits(m.Income),
		IncomeMilliunits:       m.Income,
		Budgeted:               money.FormatMilliunits(m.Budgeted),
		BudgetedMilliunits:     m.Budgeted,
		Activity:               money.FormatMilliunits(m.Activity),
		ActivityMilliunits:     m.Activity,
		ToBeBudgeted:           money.FormatMilliunits(m.ToBeBudgeted),
		ToBeBudgetedMilliunits: m.ToBeBudgeted,
		AgeOfMoney:             m.AgeOfMoney,
	}
	for _, c := range m.Categories {
		entry.Categories = append(entry.Categories, categoryEntry(c))
	}
	return entry
}

func transactionEntries(txns []*ynab.Transaction) []TransactionEntry {
	entries := make([]TransactionEntry, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, transactionEntry(t))
	}
	return entries
}
