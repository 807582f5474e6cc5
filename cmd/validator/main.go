// Command validator runs read-only checks against the live YNAB API to
// verify the client works end to end with a real token. It never mutates
// budget data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spendwell/ynab-go/pkg/ynab"
)

// ValidatorConfig holds configuration for the validator
type ValidatorConfig struct {
	Token       string
	BudgetID    string
	OutputDir   string
	Verbose     bool
	ChecksToRun []string
}

// ValidationResult represents the result of a single check
type ValidationResult struct {
	Check    string        `json:"check"`
	Passed   bool          `json:"passed"`
	Detail   string        `json:"detail,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// ValidationReport represents the full validation report
type ValidationReport struct {
	Timestamp   time.Time          `json:"timestamp"`
	TotalChecks int                `json:"total_checks"`
	Passed      int                `json:"passed"`
	Failed      int                `json:"failed"`
	SuccessRate float64            `json:"success_rate"`
	Results     []ValidationResult `json:"results"`
}

func main() {
	config := parseFlags()

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	validator := NewValidator(config)
	report, err := validator.Run()
	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}

	reportPath := filepath.Join(config.OutputDir, fmt.Sprintf("validation_report_%d.json", time.Now().Unix()))
	if err := saveReport(report, reportPath); err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}

	printSummary(report, reportPath)

	if report.Failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() *ValidatorConfig {
	config := &ValidatorConfig{}

	flag.StringVar(&config.Token, "token", os.Getenv("YNAB_API_KEY"), "YNAB personal access token")
	flag.StringVar(&config.BudgetID, "budget", "last-used", "Budget ID to check against")
	flag.StringVar(&config.OutputDir, "output", "./validation_results", "Output directory for results")
	flag.BoolVar(&config.Verbose, "verbose", false, "Verbose output")

	checkList := flag.String("checks", "", "Comma-separated list of checks to run (empty for all)")

	flag.Parse()

	if *checkList != "" {
		config.ChecksToRun = strings.Split(*checkList, ",")
	} else {
		config.ChecksToRun = []string{
			"get_user",
			"get_budgets",
			"get_accounts",
			"get_categories",
			"get_payees",
			"get_scheduled_transactions",
			"get_month",
		}
	}

	return config
}

// Validator handles the validation process
type Validator struct {
	config *ValidatorConfig
	client *ynab.Client
}

// NewValidator creates a new validator
func NewValidator(config *ValidatorConfig) *Validator {
	client, err := ynab.NewClientWithToken(config.Token)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	return &Validator{
		config: config,
		client: client,
	}
}

// Run executes the validation checks
func (v *Validator) Run() (*ValidationReport, error) {
	report := &ValidationReport{
		Timestamp: time.Now(),
		Results:   make([]ValidationResult, 0),
	}

	ctx := context.Background()

	for _, check := range v.config.ChecksToRun {
		if v.config.Verbose {
			fmt.Printf("Running %s...\n", check)
		}

		result := v.runCheck(ctx, check)
		report.Results = append(report.Results, result)

		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	report.TotalChecks = len(report.Results)
	if report.TotalChecks > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.TotalChecks) * 100
	}

	return report, nil
}

// runCheck runs a single check
func (v *Validator) runCheck(ctx context.Context, check string) ValidationResult {
	start := time.Now()
	result := ValidationResult{
		Check: check,
	}

	detail, err := v.executeCheck(ctx, check)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		if v.config.Verbose {
			fmt.Printf("  %s failed: %v\n", check, err)
		}
		return result
	}

	result.Passed = true
	result.Detail = detail
	return result
}

// executeCheck dispatches a named check against the API
func (v *Validator) executeCheck(ctx context.Context, check string) (string, error) {
	switch check {
	case "get_user":
		user, err := v.client.User.Get(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("authenticated as %s", user.ID), nil

	case "get_budgets":
		budgets, err := v.client.Budgets.List(ctx, false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d budgets", len(budgets)), nil

	case "get_accounts":
		accounts, err := v.client.Accounts.List(ctx, v.config.BudgetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d accounts", len(accounts)), nil

	case "get_categories":
		groups, err := v.client.Categories.List(ctx, v.config.BudgetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d category groups", len(groups)), nil

	case "get_payees":
		payees, err := v.client.Payees.List(ctx, v.config.BudgetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d payees", len(payees)), nil

	case "get_scheduled_transactions":
		scheduled, err := v.client.Scheduled.List(ctx, v.config.BudgetID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d scheduled transactions", len(scheduled)), nil

	case "get_month":
		month, err := v.client.Months.Get(ctx, v.config.BudgetID, "current")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("month %s, %d categories", month.Month, len(month.Categories)), nil

	default:
		return "", fmt.Errorf("unknown check: %s", check)
	}
}

func saveReport(report *ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(report *ValidationReport, reportPath string) {
	fmt.Println("\n=== Validation Report ===")
	fmt.Printf("Total Checks: %d\n", report.TotalChecks)
	fmt.Printf("Passed: %d\n", report.Passed)
	fmt.Printf("Failed: %d\n", report.Failed)
	fmt.Printf("Success Rate: %.1f%%\n", report.SuccessRate)

	if report.Failed > 0 {
		fmt.Println("\nFailed Checks:")
		for _, result := range report.Results {
			if !result.Passed {
				fmt.Printf("  - %s: %s\n", result.Check, result.Error)
			}
		}
	}

	fmt.Printf("\nReport saved to: %s\n", reportPath)
}
