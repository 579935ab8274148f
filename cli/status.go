package cli

// This file contains the status command for displaying the most recent
// test run record.

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hackreality/botops/supervisor"
)

func (a *App) status(ctx *cli.Context) error {
	sup := supervisor.New(a.logger, ".")

	rec := sup.ReadLastResult()
	if rec == nil {
		fmt.Println("No test results found")
		return nil
	}

	status := "✓"
	if !rec.Success {
		status = "✗"
	}

	fmt.Printf("%s  %s  [%.2fs]  exit=%d\n",
		status, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.DurationSeconds, rec.ReturnCode)
	fmt.Printf("   Passed: %d  Failed: %d\n", rec.TestCount, rec.FailureCount)
	if !rec.Success && rec.Stderr != "" {
		fmt.Printf("   Stderr: %s\n", firstLine(rec.Stderr))
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
