// Package filter applies optional predicates to transaction sequences,
// preserving input order. Omitted filters (empty values) match everything.
package filter

import (
	"strings"
	"time"

	"github.com/spendwell/ynab-go/pkg/ynab"
)

// Predicate reports whether a transaction should be kept
type Predicate func(*ynab.Transaction) bool

// Apply returns the subsequence of txns for which every predicate holds.
// Input order is preserved, so applying the same predicates twice is a no-op.
func Apply(txns []*ynab.Transaction, preds ...Predicate) []*ynab.Transaction {
	if len(preds) == 0 {
		return txns
	}

	out := make([]*ynab.Transaction, 0, len(txns))
	for _, txn := range txns {
		keep := true
		for _, pred := range preds {
			if !pred(txn) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, txn)
		}
	}
	return out
}

// Since keeps transactions dated on or after date (inclusive)
func Since(date time.Time) Predicate {
	return func(txn *ynab.Transaction) bool {
		return !txn.Date.Time.Before(date)
	}
}

// Account keeps transactions belonging to the given account
func Account(accountID string) Predicate {
	if accountID == "" {
		return matchAll
	}
	return func(txn *ynab.Transaction) bool {
		return txn.AccountID == accountID
	}
}

// Category keeps transactions in the given category
func Category(categoryID string) Predicate {
	if categoryID == "" {
		return matchAll
	}
	return func(txn *ynab.Transaction) bool {
		return txn.CategoryID == categoryID
	}
}

// Payee keeps transactions with the given payee
func Payee(payeeID string) Predicate {
	if payeeID == "" {
		return matchAll
	}
	return func(txn *ynab.Transaction) bool {
		return txn.PayeeID == payeeID
	}
}

// Matches keeps transactions whose payee name or memo contains query,
// case-insensitively
func Matches(query string) Predicate {
	if query == "" {
		return matchAll
	}
	q := strings.ToLower(query)
	return func(txn *ynab.Transaction) bool {
		return strings.Contains(strings.ToLower(txn.PayeeName), q) ||
			strings.Contains(strings.ToLower(txn.Memo), q)
	}
}

// Cleared keeps transactions with the given cleared status
func Cleared(status string) Predicate {
	if status == "" {
		return matchAll
	}
	return func(txn *ynab.Transaction) bool {
		return txn.Cleared == status
	}
}

func matchAll(*ynab.Transaction) bool { return true }
