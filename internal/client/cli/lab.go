package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) listLabTests(ctx context.Context) error {
	tests, err := a.remote.GetLabTests(ctx)
	if err != nil {
		return err
	}

	if len(tests) == 0 {
		fmt.Println("No lab tests")
		return nil
	}
	for _, test := range tests {
		fmt.Printf("#%d  %s", test.ID, test.Name)
		if test.Status != "" {
			fmt.Printf("  [%s]", test.Status)
		}
		if test.Description != "" {
			fmt.Printf("  %s", test.Description)
		}
		fmt.Println()
	}
	return nil
}

// updateTestStatus sets a lab test's status.
// Usage: teststatus <id> <status>
func (a *App) updateTestStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: teststatus <id> <status>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid test id %q", args[0])
	}

	test, err := a.remote.UpdateTestStatus(ctx, id, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Test #%d status set to %s\n", test.ID, test.Status)
	return nil
}

// generateTestReport produces a report for a completed lab test.
// Usage: report <id>
func (a *App) generateTestReport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: report <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid test id %q", args[0])
	}

	report, err := a.remote.GenerateTestReport(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("Report ready: %s\n", report.ReportURL)
	return nil
}
