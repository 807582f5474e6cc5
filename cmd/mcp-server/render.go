package main

import (
	"fmt"
	"strings"
)

// Markdown renderers for the response_format=markdown paths. Monetary values
// are already formatted by the entry converters.

func renderBudgets(budgets []BudgetEntry, includeAccounts bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets (%d)\n\n", len(budgets))
	for _, budget := range budgets {
		fmt.Fprintf(&b, "## %s\n", budget.Name)
		fmt.Fprintf(&b, "- ID: `%s`\n", budget.ID)
		if budget.FirstMonth != "" {
			fmt.Fprintf(&b, "- Months: %s to %s\n", budget.FirstMonth, budget.LastMonth)
		}
		if budget.LastModifiedOn != "" {
			fmt.Fprintf(&b, "- Last modified: %s\n", budget.LastModifiedOn)
		}
		if includeAccounts && len(budget.Accounts) > 0 {
			b.WriteString("- Accounts:\n")
			for _, acc := range budget.Accounts {
				fmt.Fprintf(&b, "  - %s (%s): %s\n", acc.Name, acc.Type, acc.Balance)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBudgetSummary(summary GetBudgetSummaryOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget: %s\n\n", summary.Name)
	fmt.Fprintf(&b, "- ID: `%s`\n", summary.ID)
	if summary.LastModifiedOn != "" {
		fmt.Fprintf(&b, "- Last modified: %s\n", summary.LastModifiedOn)
	}
	if summary.CurrencyFormat != nil {
		fmt.Fprintf(&b, "- Currency: %s\n", summary.CurrencyFormat.ISOCode)
	}

	fmt.Fprintf(&b, "\n## Accounts (%d)\n", len(summary.Accounts))
	for _, acc := range summary.Accounts {
		status := ""
		if acc.Closed {
			status = " [closed]"
		}
		fmt.Fprintf(&b, "- %s (%s)%s: %s\n", acc.Name, acc.Type, status, acc.Balance)
	}

	fmt.Fprintf(&b, "\n## Category Groups (%d)\n", len(summary.CategoryGroups))
	for _, group := range summary.CategoryGroups {
		if group.Hidden {
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", group.Name, strings.Join(group.Categories, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAccounts(accounts []AccountEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts (%d)\n\n", len(accounts))
	for _, acc := range accounts {
		status := ""
		if acc.Closed {
			status = " [closed]"
		}
		fmt.Fprintf(&b, "## %s%s\n", acc.Name, status)
		fmt.Fprintf(&b, "- ID: `%s`\n", acc.ID)
		fmt.Fprintf(&b, "- Type: %s\n", acc.Type)
		fmt.Fprintf(&b, "- On budget: %t\n", acc.OnBudget)
		fmt.Fprintf(&b, "- Balance: %s (cleared %s, uncleared %s)\n\n",
			acc.Balance, acc.ClearedBalance, acc.UnclearedBalance)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAccount(acc AccountEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Account: %s\n\n", acc.Name)
	fmt.Fprintf(&b, "- ID: `%s`\n", acc.ID)
	fmt.Fprintf(&b, "- Type: %s\n", acc.Type)
	fmt.Fprintf(&b, "- On budget: %t\n", acc.OnBudget)
	fmt.Fprintf(&b, "- Closed: %t\n", acc.Closed)
	fmt.Fprintf(&b, "- Balance: %s\n", acc.Balance)
	fmt.Fprintf(&b, "- Cleared balance: %s\n", acc.ClearedBalance)
	fmt.Fprintf(&b, "- Uncleared balance: %s", acc.UnclearedBalance)
	return b.String()
}

func renderCategories(groups []CategoryGroupEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Categories (%d groups)\n\n", len(groups))
	for _, group := range groups {
		if group.Hidden {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", group.Name)
		for _, c := range group.Categories {
			if c.Hidden {
				continue
			}
			fmt.Fprintf(&b, "- %s: budgeted %s, activity %s, balance %s (`%s`)\n",
				c.Name, c.Budgeted, c.Activity, c.Balance, c.ID)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCategory(c CategoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Category: %s\n\n", c.Name)
	fmt.Fprintf(&b, "- ID: `%s`\n", c.ID)
	fmt.Fprintf(&b, "- Budgeted: %s\n", c.Budgeted)
	fmt.Fprintf(&b, "- Activity: %s\n", c.Activity)
	fmt.Fprintf(&b, "- Balance: %s\n", c.Balance)
	if c.GoalType != "" {
		fmt.Fprintf(&b, "- Goal: %s, target %s", c.GoalType, c.GoalTarget)
		if c.GoalPercentageComplete != nil {
			fmt.Fprintf(&b, " (%d%% complete)", *c.GoalPercentageComplete)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPayees(payees []PayeeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Payees (%d)\n\n", len(payees))
	for _, p := range payees {
		fmt.Fprintf(&b, "- %s (`%s`)", p.Name, p.ID)
		if p.TransferAccountID != "" {
			b.WriteString(" [transfer]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTransaction(t TransactionEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction %s\n\n", t.ID)
	fmt.Fprintf(&b, "- Date: %s\n", t.Date)
	fmt.Fprintf(&b, "- Amount: %s\n", t.Amount)
	if t.PayeeName != "" {
		fmt.Fprintf(&b, "- Payee: %s\n", t.PayeeName)
	}
	if t.CategoryName != "" {
		fmt.Fprintf(&b, "- Category: %s\n", t.CategoryName)
	}
	if t.AccountName != "" {
		fmt.Fprintf(&b, "- Account: %s\n", t.AccountName)
	}
	if t.Memo != "" {
		fmt.Fprintf(&b, "- Memo: %s\n", t.Memo)
	}
	fmt.Fprintf(&b, "- Cleared: %s\n", t.Cleared)
	fmt.Fprintf(&b, "- Approved: %t", t.Approved)
	return b.String()
}

func renderMonth(m MonthEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget Month: %s\n\n", m.Month)
	fmt.Fprintf(&b, "- Income: %s\n", m.Income)
	fmt.Fprintf(&b, "- Budgeted: %s\n", m.Budgeted)
	fmt.Fprintf(&b, "- Activity: %s\n", m.Activity)
	fmt.Fprintf(&b, "- To be budgeted: %s\n", m.ToBeBudgeted)
	if m.AgeOfMoney != nil {
		fmt.Fprintf(&b, "- Age of money: %d days\n", *m.AgeOfMoney)
	}
	if len(m.Categories) > 0 {
		fmt.Fprintf(&b, "\n## Categories (%d)\n", len(m.Categories))
		for _, c := range m.Categories {
			if c.Hidden {
				continue
			}
			fmt.Fprintf(&b, "- %s: budgeted %s, activity %s, balance %s\n",
				c.Name, c.Budgeted, c.Activity, c.Balance)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderScheduled(scheduled []ScheduledTransactionEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scheduled Transactions (%d)\n\n", len(scheduled))
	for _, s := range scheduled {
		payee := s.PayeeName
		if payee == "" {
			payee = "(no payee)"
		}
		fmt.Fprintf(&b, "## %s: %s\n", payee, s.Amount)
		fmt.Fprintf(&b, "- Next: %s (%s)\n", s.DateNext, s.Frequency)
		if s.CategoryName != "" {
			fmt.Fprintf(&b, "- Category: %s\n", s.CategoryName)
		}
		if s.AccountName != "" {
			fmt.Fprintf(&b, "- Account: %s\n", s.AccountName)
		}
		if s.Memo != "" {
			fmt.Fprintf(&b, "- Memo: %s\n", s.Memo)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
