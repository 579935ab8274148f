package model

import "time"

// RunRecord represents the outcome of a single test suite execution.
// Exactly one record is produced per invocation attempt; timeout and
// launch failures get a synthesized record with zero counts.
type RunRecord struct {
	// Timestamp when the run started
	Timestamp time.Time `json:"timestamp"`
	// Duration of the run in seconds
	DurationSeconds float64 `json:"duration_seconds"`
	// Exit code of the test process (-1 for timeout or launch failure)
	ReturnCode int `json:"return_code"`
	// Captured standard output of the test process
	Stdout string `json:"stdout"`
	// Captured standard error of the test process
	Stderr string `json:"stderr"`
	// Whether the run succeeded (exit code zero)
	Success bool `json:"success"`
	// Number of passed test cases parsed from the output
	TestCount int `json:"test_count"`
	// Number of failed test cases parsed from the output
	FailureCount int `json:"failure_count"`
}
