package supervisor

// This file contains the heuristic extraction of pass/fail counts from
// pytest's free-form summary output.

import (
	"strconv"
	"strings"
)

// parseCounts scans output for the first line containing both "passed"
// and "failed" and returns the integer tokens immediately preceding each
// keyword, e.g. "12 passed, 3 failed in 1.2s" yields (12, 3).
//
// This is best-effort over free-form text: a line mentioning only one of
// the keywords is skipped, so an all-passing summary reports (0, 0).
// Any token that fails to parse leaves its count at zero.
func parseCounts(output string) (passed, failed int) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "passed") || !strings.Contains(line, "failed") {
			continue
		}

		fields := strings.Fields(line)
		for i, field := range fields {
			if i == 0 {
				continue
			}
			switch strings.Trim(field, ",.") {
			case "passed":
				if n, err := strconv.Atoi(fields[i-1]); err == nil {
					passed = n
				}
			case "failed":
				if n, err := strconv.Atoi(fields[i-1]); err == nil {
					failed = n
				}
			}
		}
		return passed, failed
	}
	return 0, 0
}
