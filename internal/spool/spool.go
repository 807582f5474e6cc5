// Package spool decides how a transaction result set is represented: inline,
// as an aggregate summary, or written to a file with a reference returned.
package spool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spendwell/ynab-go/internal/money"
	"github.com/spendwell/ynab-go/pkg/ynab"
)

// Mode identifies which shape a Result carries
type Mode int

const (
	// ModeInline returns the transactions directly
	ModeInline Mode = iota

	// ModeFile returns a reference to a file holding the transactions
	ModeFile

	// ModeSummary returns only count and total
	ModeSummary
)

// Request holds the output directives for one materialization
type Request struct {
	// OutputToFile writes the full result set to disk and returns a
	// reference instead of inline data
	OutputToFile bool

	// OutputPath overrides the generated spool path
	OutputPath string

	// SummaryOnly short-circuits serialization and returns only count and
	// total; it takes precedence over OutputToFile and never touches the
	// filesystem
	SummaryOnly bool
}

// Summary is the aggregate shape
type Summary struct {
	Count           int    `json:"count"`
	TotalMilliunits int64  `json:"total_milliunits"`
	Total           string `json:"total"`
}

// FileRef points at a written spool file
type FileRef struct {
	Path        string `json:"output_file"`
	RecordCount int    `json:"count"`
}

// Result is a tagged variant: exactly one of the three shapes is populated.
// The fields are unexported so a Result can only be built by Materialize,
// which guarantees the invariant.
type Result struct {
	mode    Mode
	inline  []*ynab.Transaction
	file    *FileRef
	summary *Summary
}

// Mode reports which shape the result carries
func (r *Result) Mode() Mode { return r.mode }

// Inline returns the inline transactions (ModeInline only)
func (r *Result) Inline() []*ynab.Transaction { return r.inline }

// File returns the file reference (ModeFile only)
func (r *Result) File() *FileRef { return r.file }

// Summary returns the aggregate (ModeSummary only)
func (r *Result) Summary() *Summary { return r.summary }

// WriteError reports a failed spool write. Write failures surface to the
// caller; falling back to an inline response would silently break the
// caller's expectation about response size.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("spool write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error { return e.Err }

// document is the on-disk spool format
type document struct {
	Count           int                 `json:"count"`
	TotalMilliunits int64               `json:"total_milliunits"`
	Total           string              `json:"total"`
	Transactions    []*ynab.Transaction `json:"transactions"`
}

// Spooler materializes result sets under a base output directory
type Spooler struct {
	dir string
	now func() time.Time
}

// New creates a Spooler writing generated files under dir
func New(dir string) *Spooler {
	return &Spooler{dir: dir, now: time.Now}
}

// Materialize produces the result representation for txns under the given
// request. prefix names generated spool files (typically the tool name).
func (s *Spooler) Materialize(txns []*ynab.Transaction, req Request, prefix string) (*Result, error) {
	total := TotalMilliunits(txns)

	if req.SummaryOnly {
		return &Result{
			mode: ModeSummary,
			summary: &Summary{
				Count:           len(txns),
				TotalMilliunits: total,
				Total:           money.FormatMilliunits(total),
			},
		}, nil
	}

	if req.OutputToFile {
		path, err := s.write(txns, total, req.OutputPath, prefix)
		if err != nil {
			return nil, err
		}
		return &Result{
			mode: ModeFile,
			file: &FileRef{Path: path, RecordCount: len(txns)},
		}, nil
	}

	return &Result{mode: ModeInline, inline: txns}, nil
}

// TotalMilliunits sums the signed amounts of txns
func TotalMilliunits(txns []*ynab.Transaction) int64 {
	var total int64
	for _, txn := range txns {
		total += txn.Amount
	}
	return total
}

// write serializes txns to outputPath, or to a generated path under the
// spool directory, and returns the absolute path written.
func (s *Spooler) write(txns []*ynab.Transaction, total int64, outputPath, prefix string) (string, error) {
	var path string
	if outputPath != "" {
		path = outputPath
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", &WriteError{Path: path, Err: err}
			}
		}
	} else {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", &WriteError{Path: s.dir, Err: err}
		}
		path = filepath.Join(s.dir, s.generateName(prefix))
	}

	doc := document{
		Count:           len(txns),
		TotalMilliunits: total,
		Total:           money.FormatMilliunits(total),
		Transactions:    txns,
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(doc)
	closeErr := f.Close()

	if encErr != nil {
		return "", &WriteError{Path: path, Err: encErr}
	}
	if closeErr != nil {
		return "", &WriteError{Path: path, Err: closeErr}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return abs, nil
}

// generateName builds a collision-resistant spool filename. Timestamps keep
// files sortable; the uuid suffix keeps concurrent calls from colliding.
func (s *Spooler) generateName(prefix string) string {
	stamp := s.now().UTC().Format("20060102_150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s.json", prefix, stamp, suffix)
}
