package jailrun

import (
	"strings"
	"testing"
	"time"
)

func TestSummary(t *testing.T) {
	r := &Result{
		Stdout:   "echoed line\n",
		Stderr:   "[sandboxed_echo] input classified as boring\n",
		ExitCode: 0,
		Duration: 123 * time.Millisecond,
	}
	got := r.Summary()
	for _, want := range []string{
		"Sandbox Execution Summary",
		"Return code : 0",
		"Duration    : 0.123 seconds",
		"Echoed Output:\necho",
		"Diagnostic Output:\n[sandboxed_echo]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryOmitsEmptyStreams(t *testing.T) {
	r := &Result{ExitCode: 1, Duration: time.Second}
	got := r.Summary()
	if strings.Contains(got, "Echoed Output") || strings.Contains(got, "Diagnostic Output") {
		t.Errorf("Summary includes empty stream sections:\n%s", got)
	}
	if !strings.Contains(got, "Return code : 1") {
		t.Errorf("Summary missing return code:\n%s", got)
	}
}
