package filter

import (
	"testing"
	"time"

	"github.com/spendwell/ynab-go/pkg/ynab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id, date, accountID, categoryID, payeeID, payeeName, memo, cleared string) *ynab.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return &ynab.Transaction{
		ID:         id,
		Date:       ynab.NewDate(d),
		AccountID:  accountID,
		CategoryID: categoryID,
		PayeeID:    payeeID,
		PayeeName:  payeeName,
		Memo:       memo,
		Cleared:    cleared,
	}
}

func ids(txns []*ynab.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func TestApply_NoPredicates(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-01", "", "", "", "", "", ""),
		txn("b", "2024-01-02", "", "", "", "", "", ""),
	}

	assert.Equal(t, txns, Apply(txns))
}

func TestApply_PreservesOrder(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-03", "acc-1", "", "", "", "", ""),
		txn("b", "2024-01-01", "acc-2", "", "", "", "", ""),
		txn("c", "2024-01-02", "acc-1", "", "", "", "", ""),
	}

	got := Apply(txns, Account("acc-1"))
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestApply_Idempotent(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-01", "acc-1", "", "", "", "", ""),
		txn("b", "2024-01-02", "acc-2", "", "", "", "", ""),
		txn("c", "2024-01-03", "acc-1", "", "", "", "", ""),
	}

	once := Apply(txns, Account("acc-1"))
	twice := Apply(once, Account("acc-1"))
	assert.Equal(t, once, twice)
}

func TestSince_Inclusive(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("before", "2024-01-14", "", "", "", "", "", ""),
		txn("on", "2024-01-15", "", "", "", "", "", ""),
		txn("after", "2024-01-16", "", "", "", "", "", ""),
	}

	cutoff := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	got := Apply(txns, Since(cutoff))
	assert.Equal(t, []string{"on", "after"}, ids(got))
}

func TestEmptyValues_MatchEverything(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-01", "acc-1", "cat-1", "pay-1", "", "", "cleared"),
		txn("b", "2024-01-02", "acc-2", "cat-2", "pay-2", "", "", "uncleared"),
	}

	got := Apply(txns, Account(""), Category(""), Payee(""), Matches(""), Cleared(""))
	assert.Equal(t, txns, got)
}

func TestMatches_CaseInsensitive(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-01", "", "", "", "Whole Foods Market", "", ""),
		txn("b", "2024-01-02", "", "", "", "Shell", "stopped for FOOD on the road", ""),
		txn("c", "2024-01-03", "", "", "", "Landlord", "rent", ""),
	}

	got := Apply(txns, Matches("food"))
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestCleared(t *testing.T) {
	txns := []*ynab.Transaction{
		txn("a", "2024-01-01", "", "", "", "", "", "cleared"),
		txn("b", "2024-01-02", "", "", "", "", "", "uncleared"),
		txn("c", "2024-01-03", "", "", "", "", "", "reconciled"),
	}

	got := Apply(txns, Cleared("uncleared"))
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestApply_CombinedPredicates(t *testing.T) {
	cutoff := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	txns := []*ynab.Transaction{
		txn("a", "2024-02-05", "acc-1", "", "", "Grocery Depot", "", ""),
		txn("b", "2024-02-06", "acc-2", "", "", "Grocery Depot", "", ""),
		txn("c", "2024-01-20", "acc-1", "", "", "Grocery Depot", "", ""),
		txn("d", "2024-02-07", "acc-1", "", "", "Gas Station", "", ""),
	}

	got := Apply(txns, Account("acc-1"), Since(cutoff), Matches("grocery"))
	assert.Equal(t, []string{"a"}, ids(got))
}
