package results

// This file contains persistence for the latest test run record.
// There is no history: each run overwrites the previous record.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hackreality/botops/model"
)

const (
	// ResultsFile holds the full record of the most recent run.
	ResultsFile = "test_results.json"
	// LastRunFile holds only the start timestamp of the most recent run.
	LastRunFile = "last_test_run.txt"
)

// Save writes the run record and the last-run marker into dir.
func Save(dir string, rec *model.RunRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ResultsFile), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ResultsFile, err)
	}

	stamp := rec.Timestamp.Format(time.RFC3339Nano)
	if err := os.WriteFile(filepath.Join(dir, LastRunFile), []byte(stamp), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", LastRunFile, err)
	}
	return nil
}

// Load reads the most recent run record from dir.
func Load(dir string) (*model.RunRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, ResultsFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ResultsFile, err)
	}
	var rec model.RunRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ResultsFile, err)
	}
	return &rec, nil
}
