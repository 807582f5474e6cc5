package spool

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/spendwell/ynab-go/pkg/ynab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTxns() []*ynab.Transaction {
	d1, _ := time.Parse("2006-01-02", "2024-03-01")
	d2, _ := time.Parse("2006-01-02", "2024-03-02")
	return []*ynab.Transaction{
		{ID: "t1", Date: ynab.NewDate(d1), Amount: -1500, PayeeName: "Coffee Shop"},
		{ID: "t2", Date: ynab.NewDate(d2), Amount: 125000, PayeeName: "Employer"},
	}
}

func TestMaterialize_SummaryOnly(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	result, err := s.Materialize(sampleTxns(), Request{SummaryOnly: true, OutputToFile: true}, "transactions")
	require.NoError(t, err)

	assert.Equal(t, ModeSummary, result.Mode())
	summary := result.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, int64(123500), summary.TotalMilliunits)
	assert.Equal(t, "$123.50", summary.Total)

	// Summary mode never touches the filesystem, even with OutputToFile set
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterialize_EmptySummary(t *testing.T) {
	s := New(t.TempDir())

	result, err := s.Materialize(nil, Request{SummaryOnly: true}, "transactions")
	require.NoError(t, err)

	summary := result.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, int64(0), summary.TotalMilliunits)
	assert.Equal(t, "$0.00", summary.Total)
}

func TestMaterialize_Inline(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	txns := sampleTxns()

	result, err := s.Materialize(txns, Request{OutputToFile: false}, "transactions")
	require.NoError(t, err)

	assert.Equal(t, ModeInline, result.Mode())
	assert.Equal(t, txns, result.Inline())

	// Inline mode creates no files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMaterialize_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	txns := sampleTxns()

	result, err := s.Materialize(txns, Request{OutputToFile: true}, "transactions")
	require.NoError(t, err)

	assert.Equal(t, ModeFile, result.Mode())
	ref := result.File()
	require.NotNil(t, ref)
	assert.Equal(t, 2, ref.RecordCount)
	assert.True(t, filepath.IsAbs(ref.Path))

	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, int64(123500), doc.TotalMilliunits)
	assert.Equal(t, "$123.50", doc.Total)
	require.Len(t, doc.Transactions, 2)
	assert.Equal(t, "t1", doc.Transactions[0].ID)
	assert.Equal(t, int64(-1500), doc.Transactions[0].Amount)
	assert.Equal(t, "t2", doc.Transactions[1].ID)
}

func TestMaterialize_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	// Parent directories of an explicit path are created on demand
	target := filepath.Join(dir, "nested", "out", "results.json")
	result, err := s.Materialize(sampleTxns(), Request{OutputToFile: true, OutputPath: target}, "transactions")
	require.NoError(t, err)

	ref := result.File()
	require.NotNil(t, ref)
	assert.Equal(t, target, ref.Path)

	_, err = os.Stat(target)
	require.NoError(t, err)
}

func TestMaterialize_WriteError(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	// Use a regular file as a path component so the write must fail
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := s.Materialize(sampleTxns(), Request{
		OutputToFile: true,
		OutputPath:   filepath.Join(blocker, "out.json"),
	}, "transactions")
	require.Error(t, err)

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestGenerateName(t *testing.T) {
	s := New(t.TempDir())
	s.now = func() time.Time {
		return time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	}

	name := s.generateName("search_transactions")
	assert.Regexp(t, regexp.MustCompile(`^search_transactions_20240315_093045_[0-9a-f]{8}\.json$`), name)

	// The uuid suffix keeps same-second names distinct
	assert.NotEqual(t, name, s.generateName("search_transactions"))
}
