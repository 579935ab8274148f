package supervisor

// This file contains the test supervisor: it runs the external test
// command to completion or timeout, classifies the outcome into a run
// record, persists it, and optionally repeats on a fixed schedule.

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog"

	"github.com/hackreality/botops/model"
	"github.com/hackreality/botops/results"
)

const (
	// DefaultTimeout bounds a single test run.
	DefaultTimeout = 5 * time.Minute
	// DefaultInterval is the pause between continuous runs.
	DefaultInterval = 30 * time.Minute
)

// Supervisor launches, bounds, and records one test run at a time.
// It never overlaps runs, so the persisted record has a single writer.
type Supervisor struct {
	logger  zerolog.Logger
	dir     string
	command []string
	timeout time.Duration
}

func New(logger zerolog.Logger, dir string) *Supervisor {
	return &Supervisor{
		logger:  logger,
		dir:     dir,
		command: testCommand(),
		timeout: DefaultTimeout,
	}
}

// testCommand is the fixed pytest invocation: verbose, short tracebacks,
// coverage over the two instrumented areas, JSON/HTML coverage reports,
// and a JUnit XML result report.
func testCommand() []string {
	return []string{
		"python3", "-m", "pytest",
		"tests/",
		"-v",
		"--tb=short",
		"--cov=modules",
		"--cov=main",
		"--cov-report=json:coverage.json",
		"--cov-report=html:htmlcov",
		"--junitxml=test_results.xml",
	}
}

// ExecuteOnce runs the test command and returns its run record. All
// failure kinds (timeout, launch failure, failing tests) are absorbed
// into the record; the record is persisted before returning, and a
// persistence failure never alters the returned record.
func (s *Supervisor) ExecuteOnce() *model.RunRecord {
	start := time.Now()
	s.logger.Info().Msg("Starting test run")
	s.logger.Debug().
		Str("command", shellescape.QuoteCommand(s.command)).
		Str("dir", s.dir).
		Msg("Running test command")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command[0], s.command[1:]...)
	cmd.Dir = s.dir
	// Make sure the child does not linger past the deadline.
	cmd.WaitDelay = 10 * time.Second

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	rec := &model.RunRecord{Timestamp: start}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		// The child is killed at the deadline; partial output is discarded.
		rec.DurationSeconds = s.timeout.Seconds()
		rec.ReturnCode = -1
		rec.Stderr = "test run timed out"
		s.logger.Error().
			Dur("timeout", s.timeout).
			Msg("Test run timed out")

	case err != nil && !isExitError(err):
		rec.ReturnCode = -1
		rec.Stderr = err.Error()
		s.logger.Error().Err(err).Msg("Error running tests")

	default:
		rec.DurationSeconds = time.Since(start).Seconds()
		rec.ReturnCode = cmd.ProcessState.ExitCode()
		rec.Stdout = stdoutBuf.String()
		rec.Stderr = stderrBuf.String()
		rec.Success = rec.ReturnCode == 0
		rec.TestCount, rec.FailureCount = parseCounts(rec.Stdout)

		if rec.Success {
			s.logger.Info().
				Float64("duration_s", rec.DurationSeconds).
				Int("tests", rec.TestCount).
				Msg("Tests PASSED")
		} else {
			s.logger.Error().
				Float64("duration_s", rec.DurationSeconds).
				Int("failures", rec.FailureCount).
				Msg("Tests FAILED")
			if rec.Stderr != "" {
				s.logger.Error().Str("stderr", rec.Stderr).Msg("Error output")
			}
		}
	}

	if err := results.Save(s.dir, rec); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save test results")
	} else {
		s.logger.Info().Str("file", results.ResultsFile).Msg("Test results saved")
	}

	return rec
}

// RunForever runs the suite on a fixed interval until ctx is cancelled.
// There is no catch-up or overlap: an overrunning run simply delays the
// next one. An in-flight run is not interrupted short of its timeout.
func (s *Supervisor) RunForever(ctx context.Context, interval time.Duration) {
	s.logger.Info().
		Dur("interval", interval).
		Msg("Starting continuous test runs")

	for {
		s.logger.Info().Msg("Starting scheduled test run")
		rec := s.ExecuteOnce()
		if !rec.Success {
			s.logger.Warn().Msg("Tests failed, consider investigating")
		}

		s.logger.Info().Dur("interval", interval).Msg("Sleeping until next run")
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Continuous testing stopped")
			return
		case <-time.After(interval):
		}
	}
}

// ReadLastResult returns the most recently persisted record, or nil if
// none exists or the file cannot be parsed. It never fails.
func (s *Supervisor) ReadLastResult() *model.RunRecord {
	rec, err := results.Load(s.dir)
	if err != nil {
		s.logger.Debug().Err(err).Msg("No previous test results")
		return nil
	}
	return rec
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
