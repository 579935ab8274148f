package supervisor

import (
	"testing"
)

func TestParseCounts(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantPassed int
		wantFailed int
	}{
		{
			name:       "empty output",
			output:     "",
			wantPassed: 0,
			wantFailed: 0,
		},
		{
			name:       "pytest summary with both counts",
			output:     "12 passed, 3 failed in 1.2s",
			wantPassed: 12,
			wantFailed: 3,
		},
		{
			name:       "pytest banner line",
			output:     "==== 2 failed, 10 passed in 4.50s ====",
			wantPassed: 10,
			wantFailed: 2,
		},
		{
			name:       "passed only line is skipped",
			output:     "12 passed",
			wantPassed: 0,
			wantFailed: 0,
		},
		{
			name:       "failed only line is skipped",
			output:     "3 failed in 0.5s",
			wantPassed: 0,
			wantFailed: 0,
		},
		{
			name:       "summary after verbose test lines",
			output:     "tests/test_database.py::test_insert PASSED\ntests/test_database.py::test_delete FAILED\n\n1 passed, 1 failed in 0.8s\n",
			wantPassed: 1,
			wantFailed: 1,
		},
		{
			name:       "first matching line wins",
			output:     "5 passed, 1 failed in 2s\n7 passed, 2 failed in 3s",
			wantPassed: 5,
			wantFailed: 1,
		},
		{
			name:       "non-numeric tokens default to zero",
			output:     "some passed, some failed",
			wantPassed: 0,
			wantFailed: 0,
		},
		{
			name:       "keyword at line start has no preceding token",
			output:     "passed and failed",
			wantPassed: 0,
			wantFailed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, failed := parseCounts(tt.output)
			if passed != tt.wantPassed {
				t.Errorf("parseCounts() passed = %d, want %d", passed, tt.wantPassed)
			}
			if failed != tt.wantFailed {
				t.Errorf("parseCounts() failed = %d, want %d", failed, tt.wantFailed)
			}
		})
	}
}
