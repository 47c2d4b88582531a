package main

import (
	"fmt"
	"strings"
	"time"
)

// timedResult is one line of the benchmark report: an operation name, how
// long it took, and how many units of work it covered.
type timedResult struct {
	op      string
	elapsed time.Duration
	opCount int
}

func (r timedResult) String() string {
	if r.opCount == 0 {
		return fmt.Sprintf("%-20s %v", r.op, r.elapsed)
	}
	perOp := r.elapsed / time.Duration(r.opCount)
	return fmt.Sprintf("%-20s %v total, %v/op, %d ops", r.op, r.elapsed, perOp, r.opCount)
}

// formatReport renders a full run's results as a human-readable block,
// newline-terminated between entries but not at the end.
func formatReport(results []timedResult) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// equalityVerdict renders the PASS/FAIL line comparing the tree's key set
// against the google/btree reference after a bulk load.
func equalityVerdict(match bool, treeLen, refLen int) string {
	if match {
		return fmt.Sprintf("PASS: tree and reference agree on %d keys", treeLen)
	}
	return fmt.Sprintf("FAIL: tree has %d keys, reference has %d keys", treeLen, refLen)
}
