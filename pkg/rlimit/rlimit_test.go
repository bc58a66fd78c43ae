package rlimit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
)

func TestPrepareRLimit(t *testing.T) {
	r := RLimits{
		CPU:         2,
		FileSize:    1 << 20,
		DisableCore: true,
	}
	want := []RLimit{
		{Res: unix.RLIMIT_CPU, Rlim: unix.Rlimit{Cur: 2, Max: 3}},
		{Res: unix.RLIMIT_FSIZE, Rlim: unix.Rlimit{Cur: 1 << 20, Max: 1 << 20}},
		{Res: unix.RLIMIT_CORE, Rlim: unix.Rlimit{Cur: 0, Max: 0}},
	}
	if diff := cmp.Diff(want, r.PrepareRLimit()); diff != "" {
		t.Errorf("PrepareRLimit mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareRLimitEmpty(t *testing.T) {
	var r RLimits
	if got := r.PrepareRLimit(); len(got) != 0 {
		t.Errorf("PrepareRLimit() = %v, want none", got)
	}
}

func TestRLimitsString(t *testing.T) {
	r := RLimits{CPU: 1, DisableCore: true}
	want := "RLimits[CPU[1 s:2 s],Core[0:0]]"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
