package jailrun

import (
	"fmt"
	"strings"
	"time"
)

// Result is one sandbox execution outcome.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	TimedOut bool
}

// Summary renders the human-readable block shown to the operator.
func (r *Result) Summary() string {
	lines := []string{
		"Sandbox Execution Summary",
		"--------------------------",
		fmt.Sprintf("Return code : %d", r.ExitCode),
		fmt.Sprintf("Duration    : %.3f seconds", r.Duration.Seconds()),
	}
	if r.Stdout != "" {
		lines = append(lines, "", "Echoed Output:", strings.Trim(r.Stdout, "\n"))
	}
	if r.Stderr != "" {
		lines = append(lines, "", "Diagnostic Output:", strings.Trim(r.Stderr, "\n"))
	}
	return strings.Join(lines, "\n")
}
